// Copyright © 2021 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package circuit

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/chainwayxyz/garbled-snark-verifier/internal/obs"
)

// LogGateTypeCounts logs the fragment's gate-kind histogram at Debug level.
// This is the structured-logging equivalent of the reference
// implementation's print_gate_type_counts diagnostic.
func (c *Circuit) LogGateTypeCounts() {
	counts := c.GateTypeCounts()
	kvs := make([]interface{}, 0, 2*len(counts)+2)
	kvs = append(kvs, "gates", len(c.Gates))
	for _, k := range []Kind{AND, XOR, NOT, OR, NAND, NOR, XNOR} {
		if n, ok := counts[k]; ok {
			kvs = append(kvs, k.String(), n)
		}
	}
	obs.Logger().Debug("gate type counts", kvs...)
}

// Fingerprint returns a blake2b-256 digest of the fragment's shape: the
// sequence of gate kinds and the number of declared outputs. Two fragments
// built from the same operation shape (independent of the concrete bit
// values later fed into evaluation) have identical fingerprints, which is
// the data-oblivious determinism property tested in this module's
// property tests.
func (c *Circuit) Fingerprint() [32]byte {
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.Outputs)))
	_, _ = h.Write(buf[:])
	for _, g := range c.Gates {
		_, _ = h.Write([]byte{byte(g.Kind())})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

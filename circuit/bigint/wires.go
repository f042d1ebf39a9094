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

package bigint

import (
	"crypto/rand"
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
)

// BitsFromBigInt returns the little-endian bit expansion of x, zero-padded
// or truncated to exactly nBits.
func BitsFromBigInt(x *big.Int, nBits int) []bool {
	bits := make([]bool, nBits)
	for i := 0; i < nBits; i++ {
		bits[i] = x.Bit(i) == 1
	}
	return bits
}

// ConstWires returns nBits fresh wires pre-set, by the caller, to the
// little-endian bits of k. They carry no gate of their own; they are
// tied-off inputs.
func ConstWires(k *big.Int, nBits int) circuit.Wires {
	bits := BitsFromBigInt(k, nBits)
	ws := make(circuit.Wires, nBits)
	for i, b := range bits {
		w := circuit.NewWire()
		_ = w.Set(b)
		ws[i] = w
	}
	return ws
}

// WiresFromBigInt returns nBits fresh, set wires holding x's little-endian
// bit expansion. It is the test/evaluation-harness counterpart of
// wires_set_from_u254 in the reference implementation.
func WiresFromBigInt(x *big.Int, nBits int) circuit.Wires {
	return ConstWires(x, nBits)
}

// BigIntFromWires reads every wire in ws (which must all be set) and
// reassembles the little-endian unsigned integer they encode.
func BigIntFromWires(ws circuit.Wires) (*big.Int, error) {
	result := new(big.Int)
	for i := len(ws) - 1; i >= 0; i-- {
		b, err := ws[i].Get()
		if err != nil {
			return nil, err
		}
		result.Lsh(result, 1)
		if b {
			result.SetBit(result, 0, 1)
		}
	}
	return result, nil
}

// RandomBits returns a uniformly random value in [0, 2^nBits).
func RandomBits(nBits int) (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(nBits))
	return rand.Int(rand.Reader, limit)
}

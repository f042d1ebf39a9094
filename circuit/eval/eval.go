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

// Package eval is a thin evaluation harness: it runs a fragment's gates in
// their stored linear order and reads back its declared outputs. By design
// this is not a scheduler: anything beyond this linear pass — incremental
// re-evaluation, dependency-graph re-derivation — is out of scope.
package eval

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
)

// Run evaluates every gate of c in order.
func Run(c *circuit.Circuit) error {
	return c.Evaluate()
}

// Bit reads a single output wire.
func Bit(w *circuit.Wire) (bool, error) {
	return w.Get()
}

// Bits reads every wire in ws and reassembles the little-endian unsigned
// integer they encode.
func Bits(ws circuit.Wires) (*big.Int, error) {
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

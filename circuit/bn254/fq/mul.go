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

package fq

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bigint"
)

// Mul lowers (a*b) mod p via interleaved schoolbook double-and-add: the
// textbook left-to-right multiply-then-reduce algorithm with the reduction
// folded into each step instead of deferred to a single wide reduction at
// the end, so every intermediate value stays within the comparator layer's
// 254/255-bit vocabulary.
func Mul(a, b circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	acc := ConstWires(big.NewInt(0))
	for i := NBits - 1; i >= 0; i-- {
		doubled, err := Double(acc)
		if err != nil {
			return nil, err
		}
		acc = c.Extend(doubled)

		term, err := bigint.U254.SelfOrZero(a, b[i])
		if err != nil {
			return nil, err
		}
		termWires := c.Extend(term)

		added, err := Add(acc, termWires)
		if err != nil {
			return nil, err
		}
		acc = c.Extend(added)
	}
	c.AddWires(acc)
	return c, nil
}

// Square lowers a^2 mod p as Mul(a, a).
func Square(a circuit.Wires) (*circuit.Circuit, error) {
	return Mul(a, a)
}

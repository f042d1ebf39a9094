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

package fq12

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq2"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq6"
)

// MulBy34 lowers the sparse multiplication by the line-function coefficient
// shape (1, 0, 0, c3, c4, 0) used by the sparse-multiplication step of a
// Miller loop: a.mul_by_034(1, c3, c4), grounded on
// original_source/src/circuits/bn254/fq12.rs's mul_by_34.
func MulBy34(a, c3, c4 circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	w1c, err := fq6.MulBy01(a1, c3, c4)
	if err != nil {
		return nil, err
	}
	w1 := c.Extend(w1c)

	w2c, err := fq6.MulByNonresidue(w1)
	if err != nil {
		return nil, err
	}
	w2 := c.Extend(w2c)

	r0c, err := fq6.Add(w2, a0)
	if err != nil {
		return nil, err
	}
	r0 := c.Extend(r0c)

	w3c, err := fq6.Add(a0, a1)
	if err != nil {
		return nil, err
	}
	w3 := c.Extend(w3c)

	w4c, err := fq2.AddConstant(c3, big.NewInt(1), big.NewInt(0))
	if err != nil {
		return nil, err
	}
	w4 := c.Extend(w4c)

	w5c, err := fq6.MulBy01(w3, w4, c4)
	if err != nil {
		return nil, err
	}
	w5 := c.Extend(w5c)

	w6c, err := fq6.Add(w1, a0)
	if err != nil {
		return nil, err
	}
	w6 := c.Extend(w6c)

	r1c, err := fq6.Sub(w5, w6)
	if err != nil {
		return nil, err
	}
	r1 := c.Extend(r1c)

	join(c, r0, r1)
	return c, nil
}

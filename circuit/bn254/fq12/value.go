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
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq6"
)

// ValueFromWires reads back the (c0, c1) Fq6 coefficients an evaluated
// Fq12 wire vector holds.
func ValueFromWires(a circuit.Wires) (c0, c1 [3][2]*big.Int, err error) {
	w0, w1 := split(a)
	x0, x1, x2, err := fq6.ValueFromWires(w0)
	if err != nil {
		return c0, c1, err
	}
	y0, y1, y2, err := fq6.ValueFromWires(w1)
	if err != nil {
		return c0, c1, err
	}
	return [3][2]*big.Int{x0, x1, x2}, [3][2]*big.Int{y0, y1, y2}, nil
}

// Random returns a uniformly random element of Fq12 as tied-off wires,
// alongside its two Fq6 coefficients.
func Random() (circuit.Wires, [3][2]*big.Int, [3][2]*big.Int, error) {
	w0, a0, a1, a2, err := fq6.Random()
	if err != nil {
		return nil, [3][2]*big.Int{}, [3][2]*big.Int{}, err
	}
	w1, b0, b1, b2, err := fq6.Random()
	if err != nil {
		return nil, [3][2]*big.Int{}, [3][2]*big.Int{}, err
	}
	out := make(circuit.Wires, NBits)
	copy(out[0:fq6.NBits], w0)
	copy(out[fq6.NBits:2*fq6.NBits], w1)
	return out, [3][2]*big.Int{a0, a1, a2}, [3][2]*big.Int{b0, b1, b2}, nil
}

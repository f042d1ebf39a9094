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

package fq6

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq2"
)

// ValueFromWires reads back the (c0, c1, c2) Fq2 coefficients an evaluated
// Fq6 wire vector holds, each as an (a0, a1) pair.
func ValueFromWires(a circuit.Wires) (c0, c1, c2 [2]*big.Int, err error) {
	w0, w1, w2 := split(a)
	a0, a1, err := fq2.ValueFromWires(w0)
	if err != nil {
		return c0, c1, c2, err
	}
	b0, b1, err := fq2.ValueFromWires(w1)
	if err != nil {
		return c0, c1, c2, err
	}
	d0, d1, err := fq2.ValueFromWires(w2)
	if err != nil {
		return c0, c1, c2, err
	}
	return [2]*big.Int{a0, a1}, [2]*big.Int{b0, b1}, [2]*big.Int{d0, d1}, nil
}

// Random returns a uniformly random element of Fq6 as tied-off wires,
// alongside its three Fq2 coefficients.
func Random() (circuit.Wires, [2]*big.Int, [2]*big.Int, [2]*big.Int, error) {
	w0, a0, a1, err := fq2.Random()
	if err != nil {
		return nil, [2]*big.Int{}, [2]*big.Int{}, [2]*big.Int{}, err
	}
	w1, b0, b1, err := fq2.Random()
	if err != nil {
		return nil, [2]*big.Int{}, [2]*big.Int{}, [2]*big.Int{}, err
	}
	w2, d0, d1, err := fq2.Random()
	if err != nil {
		return nil, [2]*big.Int{}, [2]*big.Int{}, [2]*big.Int{}, err
	}
	out := make(circuit.Wires, NBits)
	copy(out[0:fq2.NBits], w0)
	copy(out[fq2.NBits:2*fq2.NBits], w1)
	copy(out[2*fq2.NBits:3*fq2.NBits], w2)
	return out, [2]*big.Int{a0, a1}, [2]*big.Int{b0, b1}, [2]*big.Int{d0, d1}, nil
}

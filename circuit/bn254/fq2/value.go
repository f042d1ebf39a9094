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

package fq2

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq"
)

// ValueFromWires reads back the (a0, a1) coefficients an evaluated Fq2
// wire vector holds.
func ValueFromWires(a circuit.Wires) (*big.Int, *big.Int, error) {
	a0, a1 := split(a)
	v0, err := fq.ValueFromWires(a0)
	if err != nil {
		return nil, nil, err
	}
	v1, err := fq.ValueFromWires(a1)
	if err != nil {
		return nil, nil, err
	}
	return v0, v1, nil
}

// Random returns a uniformly random element of Fq2 as tied-off wires,
// alongside its (a0, a1) coefficients.
func Random() (circuit.Wires, *big.Int, *big.Int, error) {
	a0, err := fq.Random()
	if err != nil {
		return nil, nil, nil, err
	}
	a1, err := fq.Random()
	if err != nil {
		return nil, nil, nil, err
	}
	return ConstWires(a0, a1), a0, a1, nil
}

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

// Package fq12 lowers arithmetic in Fq6[w]/(w²-v) — BN254's full extension
// field, the tower's top, where pairing outputs live — to Boolean gate
// fragments built on top of circuit/bn254/fq6. The lowering here carries
// forward the reference Karatsuba formulation unchanged, operation for
// operation.
package fq12

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq6"
)

// NBits is the width of a full Fq12 element: two Fq6 coefficients.
const NBits = 2 * fq6.NBits

func split(a circuit.Wires) (circuit.Wires, circuit.Wires) {
	return a[0:fq6.NBits], a[fq6.NBits : 2*fq6.NBits]
}

func join(c *circuit.Circuit, c0, c1 circuit.Wires) {
	c.AddWires(c0)
	c.AddWires(c1)
}

// ConstWires returns a tied-off NBits vector for the constant c0 + c1*w,
// each ci an Fq6 triple of Fq2 (real, u) pairs.
func ConstWires(c0, c1 [3][2]*big.Int) circuit.Wires {
	out := make(circuit.Wires, NBits)
	copy(out[0:fq6.NBits], fq6.ConstWires(c0[0], c0[1], c0[2]))
	copy(out[fq6.NBits:2*fq6.NBits], fq6.ConstWires(c1[0], c1[1], c1[2]))
	return out
}

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

// Package fq2 lowers arithmetic in Fq[u]/(u²+1) — BN254's quadratic
// extension, where -1 is the quadratic nonresidue — to Boolean gate
// fragments built on top of circuit/bn254/fq.
package fq2

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq"
)

// NBits is the width of a full Fq2 element: two Fq coefficients.
const NBits = 2 * fq.NBits

// split breaks an NBits wire vector into its A0 (real) and A1 (u)
// coefficients, matching fq12.rs's a[0..N] / a[N..2N] slicing convention.
func split(a circuit.Wires) (circuit.Wires, circuit.Wires) {
	return a[0:fq.NBits], a[fq.NBits : 2*fq.NBits]
}

// ConstWires returns a tied-off 2*fq.NBits vector for the constant a0+a1*u.
func ConstWires(a0, a1 *big.Int) circuit.Wires {
	out := make(circuit.Wires, NBits)
	copy(out[0:fq.NBits], fq.ConstWires(a0))
	copy(out[fq.NBits:2*fq.NBits], fq.ConstWires(a1))
	return out
}

func join(c *circuit.Circuit, c0, c1 circuit.Wires) {
	c.AddWires(c0)
	c.AddWires(c1)
}

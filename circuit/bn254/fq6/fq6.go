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

// Package fq6 lowers arithmetic in Fq2[v]/(v³-ξ), ξ=9+u — BN254's sextic
// extension — to Boolean gate fragments built on top of circuit/bn254/fq2.
package fq6

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq2"
)

// NBits is the width of a full Fq6 element: three Fq2 coefficients.
const NBits = 3 * fq2.NBits

// Xi0, Xi1 are the real/u components of the sextic nonresidue ξ=9+u.
var (
	Xi0 = big.NewInt(9)
	Xi1 = big.NewInt(1)
)

func split(a circuit.Wires) (circuit.Wires, circuit.Wires, circuit.Wires) {
	return a[0:fq2.NBits], a[fq2.NBits : 2*fq2.NBits], a[2*fq2.NBits : 3*fq2.NBits]
}

func join3(c *circuit.Circuit, c0, c1, c2 circuit.Wires) {
	c.AddWires(c0)
	c.AddWires(c1)
	c.AddWires(c2)
}

// ConstWires returns a tied-off NBits vector for the constant
// c0 + c1*v + c2*v², each ci an Fq2 pair (real, u).
func ConstWires(c0, c1, c2 [2]*big.Int) circuit.Wires {
	out := make(circuit.Wires, NBits)
	copy(out[0:fq2.NBits], fq2.ConstWires(c0[0], c0[1]))
	copy(out[fq2.NBits:2*fq2.NBits], fq2.ConstWires(c1[0], c1[1]))
	copy(out[2*fq2.NBits:3*fq2.NBits], fq2.ConstWires(c2[0], c2[1]))
	return out
}

// mulByXi lowers multiplication of an Fq2 element by the nonresidue ξ=9+u.
func mulByXi(a circuit.Wires) (*circuit.Circuit, error) {
	return fq2.MulByConstant(a, Xi0, Xi1)
}

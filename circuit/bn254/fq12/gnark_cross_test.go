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

	"github.com/consensys/gnark-crypto/ecc/bn254"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit/eval"
)

// toE2/toE6/toE12 lift this package's coefficient representation into
// gnark-crypto's native bn254 tower, used here purely as the trusted
// reference field implementation the module's own Karatsuba lowering is
// checked against.
func toE2(v [2]*big.Int) bn254.E2 {
	var e bn254.E2
	e.A0.SetBigInt(v[0])
	e.A1.SetBigInt(v[1])
	return e
}

func toE6(c [3][2]*big.Int) bn254.E6 {
	return bn254.E6{B0: toE2(c[0]), B1: toE2(c[1]), B2: toE2(c[2])}
}

func toE12(c0, c1 [3][2]*big.Int) bn254.E12 {
	return bn254.E12{C0: toE6(c0), C1: toE6(c1)}
}

var _ = Describe("Fq12 cross-checked against gnark-crypto's native tower", func() {
	It("Mul matches bn254.E12.Mul", func() {
		aw, a0, a1, err := Random()
		Expect(err).Should(Succeed())
		bw, b0, b1, err := Random()
		Expect(err).Should(Succeed())

		circ, err := Mul(aw, bw)
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		g0, g1, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())

		ea := toE12(a0, a1)
		eb := toE12(b0, b1)
		var want bn254.E12
		want.Mul(&ea, &eb)

		got := toE12(g0, g1)
		Expect(got.Equal(&want)).Should(BeTrue())
	})

	It("Square matches bn254.E12.Square", func() {
		aw, a0, a1, err := Random()
		Expect(err).Should(Succeed())

		circ, err := Square(aw)
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		g0, g1, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())

		ea := toE12(a0, a1)
		var want bn254.E12
		want.Square(&ea)

		got := toE12(g0, g1)
		Expect(got.Equal(&want)).Should(BeTrue())
	})
})

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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit/eval"
)

func TestFq(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fq Suite")
}

var _ = Describe("Fq arithmetic", func() {
	It("Add matches (a+b) mod p for random operands", func() {
		for i := 0; i < 16; i++ {
			a, err := Random()
			Expect(err).Should(Succeed())
			b, err := Random()
			Expect(err).Should(Succeed())

			aw := ConstWires(a)
			bw := ConstWires(b)
			circ, err := Add(aw, bw)
			Expect(err).Should(Succeed())
			Expect(eval.Run(circ)).Should(Succeed())
			got, err := ValueFromWires(circ.Outputs)
			Expect(err).Should(Succeed())

			want := new(big.Int).Mod(new(big.Int).Add(a, b), Modulus)
			Expect(got).Should(Equal(want))
		}
	})

	It("Sub matches (a-b) mod p for random operands", func() {
		for i := 0; i < 16; i++ {
			a, err := Random()
			Expect(err).Should(Succeed())
			b, err := Random()
			Expect(err).Should(Succeed())

			circ, err := Sub(ConstWires(a), ConstWires(b))
			Expect(err).Should(Succeed())
			Expect(eval.Run(circ)).Should(Succeed())
			got, err := ValueFromWires(circ.Outputs)
			Expect(err).Should(Succeed())

			want := new(big.Int).Mod(new(big.Int).Sub(a, b), Modulus)
			Expect(got).Should(Equal(want))
		}
	})

	It("Neg(a) + a == 0 mod p", func() {
		a, err := Random()
		Expect(err).Should(Succeed())

		circ, err := Neg(ConstWires(a))
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		negA, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())

		sumCirc, err := Add(ConstWires(a), ConstWires(negA))
		Expect(err).Should(Succeed())
		Expect(eval.Run(sumCirc)).Should(Succeed())
		sum, err := ValueFromWires(sumCirc.Outputs)
		Expect(err).Should(Succeed())
		Expect(sum.Sign()).Should(Equal(0))
	})

	It("Neg(0) == 0", func() {
		circ, err := Neg(ConstWires(big.NewInt(0)))
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		got, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())
		Expect(got.Sign()).Should(Equal(0))
	})

	It("Double matches 2a mod p", func() {
		a, err := Random()
		Expect(err).Should(Succeed())

		circ, err := Double(ConstWires(a))
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		got, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())

		want := new(big.Int).Mod(new(big.Int).Lsh(a, 1), Modulus)
		Expect(got).Should(Equal(want))
	})

	It("Mul matches (a*b) mod p for random operands", func() {
		for i := 0; i < 8; i++ {
			a, err := Random()
			Expect(err).Should(Succeed())
			b, err := Random()
			Expect(err).Should(Succeed())

			circ, err := Mul(ConstWires(a), ConstWires(b))
			Expect(err).Should(Succeed())
			Expect(eval.Run(circ)).Should(Succeed())
			got, err := ValueFromWires(circ.Outputs)
			Expect(err).Should(Succeed())

			want := new(big.Int).Mod(new(big.Int).Mul(a, b), Modulus)
			Expect(got).Should(Equal(want))
		}
	})

	It("Square matches a^2 mod p", func() {
		a, err := Random()
		Expect(err).Should(Succeed())

		circ, err := Square(ConstWires(a))
		Expect(err).Should(Succeed())
		Expect(eval.Run(circ)).Should(Succeed())
		got, err := ValueFromWires(circ.Outputs)
		Expect(err).Should(Succeed())

		want := new(big.Int).Mod(new(big.Int).Mul(a, a), Modulus)
		Expect(got).Should(Equal(want))
	})

	It("Mul is commutative", func() {
		a, err := Random()
		Expect(err).Should(Succeed())
		b, err := Random()
		Expect(err).Should(Succeed())

		c1, err := Mul(ConstWires(a), ConstWires(b))
		Expect(err).Should(Succeed())
		Expect(eval.Run(c1)).Should(Succeed())
		v1, err := ValueFromWires(c1.Outputs)
		Expect(err).Should(Succeed())

		c2, err := Mul(ConstWires(b), ConstWires(a))
		Expect(err).Should(Succeed())
		Expect(eval.Run(c2)).Should(Succeed())
		v2, err := ValueFromWires(c2.Outputs)
		Expect(err).Should(Succeed())

		Expect(v1).Should(Equal(v2))
	})
})

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

package bigint

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/eval"
)

func TestBigInt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "BigInt Suite")
}

func evalBool(c *circuit.Circuit) bool {
	Expect(eval.Run(c)).Should(Succeed())
	got, err := eval.Bit(c.Outputs[0])
	Expect(err).Should(Succeed())
	return got
}

func evalWires(c *circuit.Circuit) *big.Int {
	Expect(eval.Run(c)).Should(Succeed())
	got, err := eval.Bits(c.Outputs)
	Expect(err).Should(Succeed())
	return got
}

var _ = Describe("U254 comparators", func() {
	It("S1: a=0, b=0", func() {
		a := WiresFromBigInt(big.NewInt(0), 254)
		b := WiresFromBigInt(big.NewInt(0), 254)

		eqC, err := U254.Equal(a, b)
		Expect(err).Should(Succeed())
		Expect(evalBool(eqC)).Should(BeTrue())

		a2 := WiresFromBigInt(big.NewInt(0), 254)
		b2 := WiresFromBigInt(big.NewInt(0), 254)
		gtC, err := U254.GreaterThan(a2, b2)
		Expect(err).Should(Succeed())
		Expect(evalBool(gtC)).Should(BeFalse())

		a3 := WiresFromBigInt(big.NewInt(0), 254)
		ltC, err := U254.LessThanConstant(a3, big.NewInt(1))
		Expect(err).Should(Succeed())
		Expect(evalBool(ltC)).Should(BeTrue())
	})

	It("S2: a=2^254-1, b=0", func() {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), big.NewInt(1))
		a := WiresFromBigInt(max, 254)
		b := WiresFromBigInt(big.NewInt(0), 254)

		gtC, err := U254.GreaterThan(a, b)
		Expect(err).Should(Succeed())
		Expect(evalBool(gtC)).Should(BeTrue())

		a2 := WiresFromBigInt(max, 254)
		b2 := WiresFromBigInt(big.NewInt(0), 254)
		eqC, err := U254.Equal(a2, b2)
		Expect(err).Should(Succeed())
		Expect(evalBool(eqC)).Should(BeFalse())
	})

	It("S3: a=1, b=2^254-1", func() {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), big.NewInt(1))
		a := WiresFromBigInt(big.NewInt(1), 254)
		b := WiresFromBigInt(max, 254)

		gtC, err := U254.GreaterThan(a, b)
		Expect(err).Should(Succeed())
		Expect(evalBool(gtC)).Should(BeFalse())

		a2 := WiresFromBigInt(big.NewInt(1), 254)
		b2 := WiresFromBigInt(max, 254)
		gtC2, err := U254.GreaterThan(b2, a2)
		Expect(err).Should(Succeed())
		Expect(evalBool(gtC2)).Should(BeTrue())
	})

	It("property: equal matches == for random pairs, cross-checked with uint256", func() {
		for i := 0; i < 32; i++ {
			av, err := RandomBits(254)
			Expect(err).Should(Succeed())
			bv, err := RandomBits(254)
			Expect(err).Should(Succeed())

			a := WiresFromBigInt(av, 254)
			b := WiresFromBigInt(bv, 254)
			c, err := U254.Equal(a, b)
			Expect(err).Should(Succeed())

			ua, _ := uint256.FromBig(av)
			ub, _ := uint256.FromBig(bv)
			Expect(evalBool(c)).Should(Equal(ua.Eq(ub)))
		}
	})

	It("property: equal_constant(a,a) is always true", func() {
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())
		a := WiresFromBigInt(av, 254)
		c, err := U254.EqualConstant(a, av)
		Expect(err).Should(Succeed())
		Expect(evalBool(c)).Should(BeTrue())
	})

	It("property: greater_than matches > for random pairs", func() {
		for i := 0; i < 32; i++ {
			av, err := RandomBits(254)
			Expect(err).Should(Succeed())
			bv, err := RandomBits(254)
			Expect(err).Should(Succeed())

			a := WiresFromBigInt(av, 254)
			b := WiresFromBigInt(bv, 254)
			c, err := U254.GreaterThan(a, b)
			Expect(err).Should(Succeed())

			ua, _ := uint256.FromBig(av)
			ub, _ := uint256.FromBig(bv)
			Expect(evalBool(c)).Should(Equal(ua.Gt(ub)))
		}
	})

	It("property: greater_than(a,a) is always false", func() {
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())
		a := WiresFromBigInt(av, 254)
		b := WiresFromBigInt(av, 254)
		c, err := U254.GreaterThan(a, b)
		Expect(err).Should(Succeed())
		Expect(evalBool(c)).Should(BeFalse())
	})

	It("property: greater_than(a+1,a) is always true for a < 2^254-1", func() {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), big.NewInt(1))
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())
		for av.Cmp(max) >= 0 {
			av, err = RandomBits(254)
			Expect(err).Should(Succeed())
		}
		aPlus1 := new(big.Int).Add(av, big.NewInt(1))
		a := WiresFromBigInt(aPlus1, 254)
		b := WiresFromBigInt(av, 254)
		c, err := U254.GreaterThan(a, b)
		Expect(err).Should(Succeed())
		Expect(evalBool(c)).Should(BeTrue())
	})

	It("property: less_than_constant matches < for random (a,k)", func() {
		for i := 0; i < 32; i++ {
			av, err := RandomBits(254)
			Expect(err).Should(Succeed())
			kv, err := RandomBits(254)
			Expect(err).Should(Succeed())

			a := WiresFromBigInt(av, 254)
			c, err := U254.LessThanConstant(a, kv)
			Expect(err).Should(Succeed())

			ua, _ := uint256.FromBig(av)
			uk, _ := uint256.FromBig(kv)
			Expect(evalBool(c)).Should(Equal(ua.Lt(uk)))
		}
	})

	It("property: select(a,b,s) reconstructs a when s, else b", func() {
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())
		bv, err := RandomBits(254)
		Expect(err).Should(Succeed())

		trueW, falseW := circuit.NewWire(), circuit.NewWire()
		Expect(trueW.Set(true)).Should(Succeed())
		Expect(falseW.Set(false)).Should(Succeed())

		a := WiresFromBigInt(av, 254)
		b := WiresFromBigInt(bv, 254)
		c, err := U254.Select(a, b, trueW)
		Expect(err).Should(Succeed())
		Expect(evalWires(c)).Should(Equal(av))

		a2 := WiresFromBigInt(av, 254)
		b2 := WiresFromBigInt(bv, 254)
		c2, err := U254.Select(a2, b2, falseW)
		Expect(err).Should(Succeed())
		Expect(evalWires(c2)).Should(Equal(bv))
	})

	It("property: self_or_zero(a,s) is a when s, else 0", func() {
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())

		trueW, falseW := circuit.NewWire(), circuit.NewWire()
		Expect(trueW.Set(true)).Should(Succeed())
		Expect(falseW.Set(false)).Should(Succeed())

		a := WiresFromBigInt(av, 254)
		c, err := U254.SelfOrZero(a, trueW)
		Expect(err).Should(Succeed())
		Expect(evalWires(c)).Should(Equal(av))

		a2 := WiresFromBigInt(av, 254)
		c2, err := U254.SelfOrZero(a2, falseW)
		Expect(err).Should(Succeed())
		Expect(evalWires(c2)).Should(Equal(big.NewInt(0)))
	})

	It("rejects mismatched widths", func() {
		a := WiresFromBigInt(big.NewInt(1), 100)
		b := WiresFromBigInt(big.NewInt(1), 254)
		_, err := U254.Equal(a, b)
		Expect(err).Should(Equal(ErrWidthMismatch))
	})

	It("determinism: identical gate-kind histograms for the same operation shape", func() {
		a1 := WiresFromBigInt(big.NewInt(5), 254)
		b1 := WiresFromBigInt(big.NewInt(9), 254)
		c1, err := U254.GreaterThan(a1, b1)
		Expect(err).Should(Succeed())

		a2 := WiresFromBigInt(big.NewInt(200), 254)
		b2 := WiresFromBigInt(big.NewInt(3), 254)
		c2, err := U254.GreaterThan(a2, b2)
		Expect(err).Should(Succeed())

		Expect(c1.GateTypeCounts()).Should(Equal(c2.GateTypeCounts()))
		Expect(c1.Fingerprint()).Should(Equal(c2.Fingerprint()))
	})
})

var _ = Describe("U254 adder", func() {
	It("Add matches big.Int addition mod 2^255 with correct carry", func() {
		av, err := RandomBits(254)
		Expect(err).Should(Succeed())
		bv, err := RandomBits(254)
		Expect(err).Should(Succeed())

		a := WiresFromBigInt(av, 254)
		b := WiresFromBigInt(bv, 254)
		c, err := U254.Add(a, b)
		Expect(err).Should(Succeed())
		Expect(eval.Run(c)).Should(Succeed())

		sumBits, err := eval.Bits(c.Outputs[:254])
		Expect(err).Should(Succeed())
		carry, err := eval.Bit(c.Outputs[254])
		Expect(err).Should(Succeed())

		want := new(big.Int).Add(av, bv)
		wantCarry := want.Bit(254) == 1
		wantSum := new(big.Int).And(want, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), big.NewInt(1)))

		Expect(carry).Should(Equal(wantCarry))
		Expect(sumBits).Should(Equal(wantSum))
	})
})

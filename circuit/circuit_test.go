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

package circuit

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestCircuit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Circuit Suite")
}

var _ = Describe("Wire", func() {
	It("errors reading before set", func() {
		w := NewWire()
		_, err := w.Get()
		Expect(err).Should(Equal(ErrWireUnset))
	})

	It("is idempotent for the same value", func() {
		w := NewWire()
		Expect(w.Set(true)).Should(Succeed())
		Expect(w.Set(true)).Should(Succeed())
		got, err := w.Get()
		Expect(err).Should(Succeed())
		Expect(got).Should(BeTrue())
	})

	It("rejects a conflicting second write", func() {
		w := NewWire()
		Expect(w.Set(true)).Should(Succeed())
		Expect(w.Set(false)).Should(Equal(ErrWireConflict))
	})
})

var _ = Describe("Gate", func() {
	DescribeTable("Evaluate", func(kind Kind, a, b, want bool) {
		wa, wb, out := NewWire(), NewWire(), NewWire()
		Expect(wa.Set(a)).Should(Succeed())
		Expect(wb.Set(b)).Should(Succeed())

		var g *Gate
		switch kind {
		case AND:
			g = NewAnd(wa, wb, out)
		case XOR:
			g = NewXor(wa, wb, out)
		}
		Expect(g.Evaluate()).Should(Succeed())
		got, err := out.Get()
		Expect(err).Should(Succeed())
		Expect(got).Should(Equal(want))
	},
		Entry("AND(0,0)", AND, false, false, false),
		Entry("AND(1,0)", AND, true, false, false),
		Entry("AND(1,1)", AND, true, true, true),
		Entry("XOR(1,0)", XOR, true, false, true),
		Entry("XOR(1,1)", XOR, true, true, false),
	)

	It("NOT flips its single input", func() {
		a, out := NewWire(), NewWire()
		Expect(a.Set(false)).Should(Succeed())
		g := NewNot(a, out)
		Expect(g.Evaluate()).Should(Succeed())
		got, _ := out.Get()
		Expect(got).Should(BeTrue())
	})

	It("propagates an unset input as an error", func() {
		a, b, out := NewWire(), NewWire(), NewWire()
		Expect(a.Set(true)).Should(Succeed())
		g := NewAnd(a, b, out)
		Expect(g.Evaluate()).Should(Equal(ErrWireUnset))
	})
})

var _ = Describe("Circuit", func() {
	It("evaluates a two-gate chain built via Extend", func() {
		a, b, c := NewWire(), NewWire(), NewWire()
		Expect(a.Set(true)).Should(Succeed())
		Expect(b.Set(true)).Should(Succeed())
		Expect(c.Set(false)).Should(Succeed())

		inner := Empty()
		t1 := NewWire()
		inner.Add(NewAnd(a, b, t1))
		inner.AddWire(t1)

		outer := Empty()
		innerOutputs := outer.Extend(inner)
		t2 := NewWire()
		outer.Add(NewXor(innerOutputs[0], c, t2))
		outer.AddWire(t2)

		Expect(outer.Evaluate()).Should(Succeed())
		got, err := t2.Get()
		Expect(err).Should(Succeed())
		Expect(got).Should(BeTrue())
	})

	It("reports a gate-kind histogram", func() {
		a, b, out := NewWire(), NewWire(), NewWire()
		Expect(a.Set(true)).Should(Succeed())
		Expect(b.Set(false)).Should(Succeed())

		c := Empty()
		t1 := NewWire()
		c.Add(NewAnd(a, b, t1))
		c.Add(NewXor(t1, a, out))
		c.AddWire(out)

		counts := c.GateTypeCounts()
		Expect(counts[AND]).Should(Equal(1))
		Expect(counts[XOR]).Should(Equal(1))
	})

	It("fingerprints identically for the same gate-kind shape regardless of wire values", func() {
		build := func(av, bv bool) *Circuit {
			a, b, out := NewWire(), NewWire(), NewWire()
			_ = a.Set(av)
			_ = b.Set(bv)
			c := Empty()
			t1 := NewWire()
			c.Add(NewAnd(a, b, t1))
			c.Add(NewXor(t1, a, out))
			c.AddWire(out)
			return c
		}
		c1 := build(true, false)
		c2 := build(false, true)
		Expect(c1.Fingerprint()).Should(Equal(c2.Fingerprint()))
	})
})

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
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq6"
)

// Add lowers coefficientwise Fq6 addition.
func Add(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	r0, err := fq6.Add(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq6.Add(a1, b1)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Sub lowers coefficientwise Fq6 subtraction.
func Sub(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	r0, err := fq6.Sub(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq6.Sub(a1, b1)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Neg lowers coefficientwise Fq6 negation.
func Neg(a circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	r0, err := fq6.Neg(a0)
	if err != nil {
		return nil, err
	}
	r1, err := fq6.Neg(a1)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Double lowers 2a as Add(a, a).
func Double(a circuit.Wires) (*circuit.Circuit, error) {
	return Add(a, a)
}

// Mul lowers Fq12 multiplication via Karatsuba with nonresidue w²=v:
//
//	s = (c0+c1)(d0+d1), v0=c0d0, v1=c1d1
//	r0 = v0 + nonresidue(v1)
//	r1 = s - v0 - v1
func Mul(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	sumAc, err := fq6.Add(a0, a1)
	if err != nil {
		return nil, err
	}
	sumA := c.Extend(sumAc)

	sumBc, err := fq6.Add(b0, b1)
	if err != nil {
		return nil, err
	}
	sumB := c.Extend(sumBc)

	v0c, err := fq6.Mul(a0, b0)
	if err != nil {
		return nil, err
	}
	v0 := c.Extend(v0c)

	v1c, err := fq6.Mul(a1, b1)
	if err != nil {
		return nil, err
	}
	v1 := c.Extend(v1c)

	v0v1c, err := fq6.Add(v0, v1)
	if err != nil {
		return nil, err
	}
	v0v1 := c.Extend(v0v1c)

	nrv1c, err := fq6.MulByNonresidue(v1)
	if err != nil {
		return nil, err
	}
	nrv1 := c.Extend(nrv1c)

	r0c, err := fq6.Add(nrv1, v0)
	if err != nil {
		return nil, err
	}
	r0 := c.Extend(r0c)

	sc, err := fq6.Mul(sumA, sumB)
	if err != nil {
		return nil, err
	}
	s := c.Extend(sc)

	r1c, err := fq6.Sub(s, v0v1)
	if err != nil {
		return nil, err
	}
	r1 := c.Extend(r1c)

	join(c, r0, r1)
	return c, nil
}

// Square lowers a² with the same Karatsuba shape as Mul, specialized to
// a = b:
//
//	s = (c0+c1)², v0=c0², v1=c1²
//	r0 = v0 + nonresidue(v1)
//	r1 = s - v0 - v1
func Square(a circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	sumc, err := fq6.Add(a0, a1)
	if err != nil {
		return nil, err
	}
	sum := c.Extend(sumc)

	sq0c, err := fq6.Square(a0)
	if err != nil {
		return nil, err
	}
	sq0 := c.Extend(sq0c)

	sq1c, err := fq6.Square(a1)
	if err != nil {
		return nil, err
	}
	sq1 := c.Extend(sq1c)

	sumSqc, err := fq6.Add(sq0, sq1)
	if err != nil {
		return nil, err
	}
	sumSq := c.Extend(sumSqc)

	nrc, err := fq6.MulByNonresidue(sq1)
	if err != nil {
		return nil, err
	}
	nr := c.Extend(nrc)

	r0c, err := fq6.Add(nr, sq0)
	if err != nil {
		return nil, err
	}
	r0 := c.Extend(r0c)

	mc, err := fq6.Mul(sum, sum)
	if err != nil {
		return nil, err
	}
	m := c.Extend(mc)

	r1c, err := fq6.Sub(m, sumSq)
	if err != nil {
		return nil, err
	}
	r1 := c.Extend(r1c)

	join(c, r0, r1)
	return c, nil
}

// MulByConstant lowers a*k for a compile-time-known Fq12 constant k=(k0,k1),
// by the same shape as Mul but with k's Fq6 sub-products folded to
// fq6.MulByConstant against tied-off constant wires.
func MulByConstant(a circuit.Wires, k0, k1 [3][2]*big.Int) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	sumAc, err := fq6.Add(a0, a1)
	if err != nil {
		return nil, err
	}
	sumA := c.Extend(sumAc)

	v0c, err := fq6.MulByConstant(a0, k0[0], k0[1], k0[2])
	if err != nil {
		return nil, err
	}
	v0 := c.Extend(v0c)

	v1c, err := fq6.MulByConstant(a1, k1[0], k1[1], k1[2])
	if err != nil {
		return nil, err
	}
	v1 := c.Extend(v1c)

	v0v1c, err := fq6.Add(v0, v1)
	if err != nil {
		return nil, err
	}
	v0v1 := c.Extend(v0v1c)

	nrv1c, err := fq6.MulByNonresidue(v1)
	if err != nil {
		return nil, err
	}
	nrv1 := c.Extend(nrv1c)

	r0c, err := fq6.Add(nrv1, v0)
	if err != nil {
		return nil, err
	}
	r0 := c.Extend(r0c)

	sumKc := [3][2]*big.Int{
		{addMod(k0[0][0], k1[0][0]), addMod(k0[0][1], k1[0][1])},
		{addMod(k0[1][0], k1[1][0]), addMod(k0[1][1], k1[1][1])},
		{addMod(k0[2][0], k1[2][0]), addMod(k0[2][1], k1[2][1])},
	}
	sc, err := fq6.MulByConstant(sumA, sumKc[0], sumKc[1], sumKc[2])
	if err != nil {
		return nil, err
	}
	s := c.Extend(sc)

	r1c, err := fq6.Sub(s, v0v1)
	if err != nil {
		return nil, err
	}
	r1 := c.Extend(r1c)

	join(c, r0, r1)
	return c, nil
}

func addMod(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(x, y), fq.Modulus)
}

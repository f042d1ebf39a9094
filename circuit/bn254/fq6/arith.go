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

// Add lowers coefficientwise Fq2 addition.
func Add(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	b0, b1, b2 := split(b)
	c := circuit.Empty()

	r0, err := fq2.Add(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq2.Add(a1, b1)
	if err != nil {
		return nil, err
	}
	r2, err := fq2.Add(a2, b2)
	if err != nil {
		return nil, err
	}
	join3(c, c.Extend(r0), c.Extend(r1), c.Extend(r2))
	return c, nil
}

// Sub lowers coefficientwise Fq2 subtraction.
func Sub(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	b0, b1, b2 := split(b)
	c := circuit.Empty()

	r0, err := fq2.Sub(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq2.Sub(a1, b1)
	if err != nil {
		return nil, err
	}
	r2, err := fq2.Sub(a2, b2)
	if err != nil {
		return nil, err
	}
	join3(c, c.Extend(r0), c.Extend(r1), c.Extend(r2))
	return c, nil
}

// Neg lowers coefficientwise Fq2 negation.
func Neg(a circuit.Wires) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	c := circuit.Empty()

	r0, err := fq2.Neg(a0)
	if err != nil {
		return nil, err
	}
	r1, err := fq2.Neg(a1)
	if err != nil {
		return nil, err
	}
	r2, err := fq2.Neg(a2)
	if err != nil {
		return nil, err
	}
	join3(c, c.Extend(r0), c.Extend(r1), c.Extend(r2))
	return c, nil
}

// Double lowers 2a as Add(a, a).
func Double(a circuit.Wires) (*circuit.Circuit, error) {
	return Add(a, a)
}

// MulByNonresidue lowers multiplication by v: (c0,c1,c2) ↦ (ξ·c2, c0, c1).
func MulByNonresidue(a circuit.Wires) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	c := circuit.Empty()

	r0c, err := mulByXi(a2)
	if err != nil {
		return nil, err
	}
	r0 := c.Extend(r0c)

	join3(c, r0, a0, a1)
	return c, nil
}

// Mul lowers Fq6 multiplication via the standard Karatsuba-over-a-cubic-
// extension identity:
//
//	v0=c0d0, v1=c1d1, v2=c2d2
//	r0 = v0 + ξ·((c1+c2)(d1+d2) - v1 - v2)
//	r1 = (c0+c1)(d0+d1) - v0 - v1 + ξ·v2
//	r2 = (c0+c2)(d0+d2) - v0 + v1 - v2
func Mul(a, b circuit.Wires) (*circuit.Circuit, error) {
	c0, c1, c2 := split(a)
	d0, d1, d2 := split(b)
	c := circuit.Empty()

	mul := func(x, y circuit.Wires) (circuit.Wires, error) {
		m, err := fq2.Mul(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(m), nil
	}
	add := func(x, y circuit.Wires) (circuit.Wires, error) {
		s, err := fq2.Add(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(s), nil
	}
	sub := func(x, y circuit.Wires) (circuit.Wires, error) {
		s, err := fq2.Sub(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(s), nil
	}

	v0, err := mul(c0, d0)
	if err != nil {
		return nil, err
	}
	v1, err := mul(c1, d1)
	if err != nil {
		return nil, err
	}
	v2, err := mul(c2, d2)
	if err != nil {
		return nil, err
	}

	c1c2, err := add(c1, c2)
	if err != nil {
		return nil, err
	}
	d1d2, err := add(d1, d2)
	if err != nil {
		return nil, err
	}
	t0, err := mul(c1c2, d1d2)
	if err != nil {
		return nil, err
	}
	t0, err = sub(t0, v1)
	if err != nil {
		return nil, err
	}
	t0, err = sub(t0, v2)
	if err != nil {
		return nil, err
	}
	t0c, err := mulByXi(t0)
	if err != nil {
		return nil, err
	}
	xiT0 := c.Extend(t0c)
	r0, err := add(v0, xiT0)
	if err != nil {
		return nil, err
	}

	c0c1, err := add(c0, c1)
	if err != nil {
		return nil, err
	}
	d0d1, err := add(d0, d1)
	if err != nil {
		return nil, err
	}
	t1, err := mul(c0c1, d0d1)
	if err != nil {
		return nil, err
	}
	t1, err = sub(t1, v0)
	if err != nil {
		return nil, err
	}
	t1, err = sub(t1, v1)
	if err != nil {
		return nil, err
	}
	xiV2c, err := mulByXi(v2)
	if err != nil {
		return nil, err
	}
	xiV2 := c.Extend(xiV2c)
	r1, err := add(t1, xiV2)
	if err != nil {
		return nil, err
	}

	c0c2, err := add(c0, c2)
	if err != nil {
		return nil, err
	}
	d0d2, err := add(d0, d2)
	if err != nil {
		return nil, err
	}
	t2, err := mul(c0c2, d0d2)
	if err != nil {
		return nil, err
	}
	t2, err = sub(t2, v0)
	if err != nil {
		return nil, err
	}
	t2, err = add(t2, v1)
	if err != nil {
		return nil, err
	}
	r2, err := sub(t2, v2)
	if err != nil {
		return nil, err
	}

	join3(c, r0, r1, r2)
	return c, nil
}

// Square lowers a² as Mul(a, a).
func Square(a circuit.Wires) (*circuit.Circuit, error) {
	return Mul(a, a)
}

// MulBy01 lowers sparse multiplication by (d0,d1,0), the pairing
// literature's standard shortcut: with v2=c2·0=0, the general Mul formula
// collapses to
//
//	v0=c0d0, v1=c1d1
//	r0 = v0 + ξ·(c2·d1)
//	r1 = (c0+c1)(d0+d1) - v0 - v1
//	r2 = c2·d0 + v1
func MulBy01(a, d0, d1 circuit.Wires) (*circuit.Circuit, error) {
	c0, c1, c2 := split(a)
	c := circuit.Empty()

	mul := func(x, y circuit.Wires) (circuit.Wires, error) {
		m, err := fq2.Mul(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(m), nil
	}
	add := func(x, y circuit.Wires) (circuit.Wires, error) {
		s, err := fq2.Add(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(s), nil
	}
	sub := func(x, y circuit.Wires) (circuit.Wires, error) {
		s, err := fq2.Sub(x, y)
		if err != nil {
			return nil, err
		}
		return c.Extend(s), nil
	}

	v0, err := mul(c0, d0)
	if err != nil {
		return nil, err
	}
	v1, err := mul(c1, d1)
	if err != nil {
		return nil, err
	}

	c2d1, err := mul(c2, d1)
	if err != nil {
		return nil, err
	}
	xiC2d1c, err := mulByXi(c2d1)
	if err != nil {
		return nil, err
	}
	xiC2d1 := c.Extend(xiC2d1c)
	r0, err := add(v0, xiC2d1)
	if err != nil {
		return nil, err
	}

	c0c1, err := add(c0, c1)
	if err != nil {
		return nil, err
	}
	d0d1, err := add(d0, d1)
	if err != nil {
		return nil, err
	}
	t1, err := mul(c0c1, d0d1)
	if err != nil {
		return nil, err
	}
	t1, err = sub(t1, v0)
	if err != nil {
		return nil, err
	}
	r1, err := sub(t1, v1)
	if err != nil {
		return nil, err
	}

	c2d0, err := mul(c2, d0)
	if err != nil {
		return nil, err
	}
	r2, err := add(c2d0, v1)
	if err != nil {
		return nil, err
	}

	join3(c, r0, r1, r2)
	return c, nil
}

// MulByConstant lowers a*k for a compile-time-known Fq6 constant, delegating
// to the general Karatsuba shape against tied-off constant wires.
func MulByConstant(a circuit.Wires, k0, k1, k2 [2]*big.Int) (*circuit.Circuit, error) {
	return Mul(a, ConstWires(k0, k1, k2))
}

// MulByConstantFq2 scales every Fq2 coefficient of a by a single
// compile-time-known Fq2 constant k — the mul_by_constant_fq2 collaborator
// used when the Fq12 frobenius lowering folds in a γ coefficient.
func MulByConstantFq2(a circuit.Wires, k0, k1 *big.Int) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	c := circuit.Empty()

	r0c, err := fq2.MulByConstant(a0, k0, k1)
	if err != nil {
		return nil, err
	}
	r1c, err := fq2.MulByConstant(a1, k0, k1)
	if err != nil {
		return nil, err
	}
	r2c, err := fq2.MulByConstant(a2, k0, k1)
	if err != nil {
		return nil, err
	}
	join3(c, c.Extend(r0c), c.Extend(r1c), c.Extend(r2c))
	return c, nil
}

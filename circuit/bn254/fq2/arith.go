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

// Add lowers (a0+b0) + (a1+b1)u, coefficientwise.
func Add(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	r0, err := fq.Add(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq.Add(a1, b1)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Sub lowers (a0-b0) + (a1-b1)u, coefficientwise.
func Sub(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	r0, err := fq.Sub(a0, b0)
	if err != nil {
		return nil, err
	}
	r1, err := fq.Sub(a1, b1)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Neg lowers -a0 + (-a1)u, coefficientwise.
func Neg(a circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	r0, err := fq.Neg(a0)
	if err != nil {
		return nil, err
	}
	r1, err := fq.Neg(a1)
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

// AddConstant lowers a + k for a compile-time-known Fq2 constant k=(k0,k1),
// the Fq2::add_constant collaborator fq12.rs's mul_by_34 lowering calls on
// c3.
func AddConstant(a circuit.Wires, k0, k1 *big.Int) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	k0Wires := fq.ConstWires(k0)
	k1Wires := fq.ConstWires(k1)

	r0, err := fq.Add(a0, k0Wires)
	if err != nil {
		return nil, err
	}
	r1, err := fq.Add(a1, k1Wires)
	if err != nil {
		return nil, err
	}
	join(c, c.Extend(r0), c.Extend(r1))
	return c, nil
}

// Mul lowers Fq2 multiplication via Karatsuba with nonresidue -1:
// (a0+a1u)(b0+b1u) = (a0b0 - a1b1) + ((a0+a1)(b0+b1) - a0b0 - a1b1)u.
func Mul(a, b circuit.Wires) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	b0, b1 := split(b)
	c := circuit.Empty()

	v0c, err := fq.Mul(a0, b0)
	if err != nil {
		return nil, err
	}
	v0 := c.Extend(v0c)

	v1c, err := fq.Mul(a1, b1)
	if err != nil {
		return nil, err
	}
	v1 := c.Extend(v1c)

	sumAc, err := fq.Add(a0, a1)
	if err != nil {
		return nil, err
	}
	sumA := c.Extend(sumAc)

	sumBc, err := fq.Add(b0, b1)
	if err != nil {
		return nil, err
	}
	sumB := c.Extend(sumBc)

	v2c, err := fq.Mul(sumA, sumB)
	if err != nil {
		return nil, err
	}
	v2 := c.Extend(v2c)

	c0c, err := fq.Sub(v0, v1)
	if err != nil {
		return nil, err
	}
	c0 := c.Extend(c0c)

	t0c, err := fq.Sub(v2, v0)
	if err != nil {
		return nil, err
	}
	t0 := c.Extend(t0c)
	c1c, err := fq.Sub(t0, v1)
	if err != nil {
		return nil, err
	}
	c1 := c.Extend(c1c)

	join(c, c0, c1)
	return c, nil
}

// Square lowers a^2 as Mul(a, a).
func Square(a circuit.Wires) (*circuit.Circuit, error) {
	return Mul(a, a)
}

// MulByConstant lowers a*k for a compile-time-known Fq2 constant k=(k0,k1),
// by the same Karatsuba shape as Mul but with k's sub-products folded to
// fq.Mul against tied-off constant wires.
func MulByConstant(a circuit.Wires, k0, k1 *big.Int) (*circuit.Circuit, error) {
	return Mul(a, ConstWires(k0, k1))
}

// Frobenius lowers the degree-i Frobenius endomorphism: the identity when i
// is even, complex conjugation (a0, -a1) when i is odd.
func Frobenius(a circuit.Wires, i int) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	c := circuit.Empty()

	if i%2 == 0 {
		c.AddWires(a0)
		c.AddWires(a1)
		return c, nil
	}

	negA1, err := fq.Neg(a1)
	if err != nil {
		return nil, err
	}
	r1 := c.Extend(negA1)
	c.AddWires(a0)
	c.AddWires(r1)
	return c, nil
}

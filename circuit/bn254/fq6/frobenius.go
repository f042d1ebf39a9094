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
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq2"
)

// scalarFq2 is a plain cleartext Fq2 element (no gates) used only to derive
// the Frobenius coefficient tables below via math/big exponentiation.
type scalarFq2 struct{ a0, a1 *big.Int }

func modp(x *big.Int) *big.Int { return new(big.Int).Mod(x, fq.Modulus) }

func mulFq2(x, y scalarFq2) scalarFq2 {
	t0 := new(big.Int).Mul(x.a0, y.a0)
	t1 := new(big.Int).Mul(x.a1, y.a1)
	re := modp(new(big.Int).Sub(t0, t1))
	t2 := new(big.Int).Mul(x.a0, y.a1)
	t3 := new(big.Int).Mul(x.a1, y.a0)
	im := modp(new(big.Int).Add(t2, t3))
	return scalarFq2{re, im}
}

func powFq2(x scalarFq2, e *big.Int) scalarFq2 {
	result := scalarFq2{big.NewInt(1), big.NewInt(0)}
	base := x
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = mulFq2(result, base)
		}
		base = mulFq2(base, base)
	}
	return result
}

// frobeniusPeriod6 is the period of Frobenius over Fq6 relative to Fq, used
// to size and index the coefficient tables below.
const frobeniusPeriod6 = 6

// gamma61, gamma62 hold ξ^((p^i-1)/3) and ξ^(2(p^i-1)/3) for i=0..5,
// computed once from p and ξ=9+u rather than hand-transcribed, so a typo
// in a transcribed constant can't silently corrupt Frobenius.
var gamma61, gamma62 [frobeniusPeriod6]scalarFq2

func init() {
	xi := scalarFq2{Xi0, Xi1}
	three := big.NewInt(3)
	p := fq.Modulus
	for i := 0; i < frobeniusPeriod6; i++ {
		pi := new(big.Int).Exp(p, big.NewInt(int64(i)), nil)
		num := new(big.Int).Sub(pi, big.NewInt(1))
		e1 := new(big.Int).Div(num, three)
		if new(big.Int).Mod(num, three).Sign() != 0 {
			panic("fq6: (p^i-1) not divisible by 3")
		}
		e2 := new(big.Int).Mul(e1, big.NewInt(2))
		gamma61[i] = powFq2(xi, e1)
		gamma62[i] = powFq2(xi, e2)
	}
}

// Frobenius lowers the degree-i Frobenius endomorphism over Fq6: apply
// fq2.Frobenius to each coefficient, then scale c1 and c2 by the
// precomputed γ6,1(i), γ6,2(i).
func Frobenius(a circuit.Wires, i int) (*circuit.Circuit, error) {
	a0, a1, a2 := split(a)
	idx := ((i % frobeniusPeriod6) + frobeniusPeriod6) % frobeniusPeriod6
	c := circuit.Empty()

	f0c, err := fq2.Frobenius(a0, i)
	if err != nil {
		return nil, err
	}
	f0 := c.Extend(f0c)

	f1c, err := fq2.Frobenius(a1, i)
	if err != nil {
		return nil, err
	}
	f1raw := c.Extend(f1c)
	g1 := gamma61[idx]
	f1scaledC, err := fq2.MulByConstant(f1raw, g1.a0, g1.a1)
	if err != nil {
		return nil, err
	}
	f1 := c.Extend(f1scaledC)

	f2c, err := fq2.Frobenius(a2, i)
	if err != nil {
		return nil, err
	}
	f2raw := c.Extend(f2c)
	g2 := gamma62[idx]
	f2scaledC, err := fq2.MulByConstant(f2raw, g2.a0, g2.a1)
	if err != nil {
		return nil, err
	}
	f2 := c.Extend(f2scaledC)

	join3(c, f0, f1, f2)
	return c, nil
}

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

// frobeniusPeriod12 is Frobenius's period over Fq12 relative to Fq.
const frobeniusPeriod12 = 12

// gamma12 holds ξ^((p^i-1)/6) for i=0..11 — the FROBENIUS_COEFF_FP12_C1
// table, sourced here via modular exponentiation from p and ξ=9+u instead
// of a hand-transcribed table.
var gamma12 [frobeniusPeriod12]scalarFq2

func init() {
	xi := scalarFq2{fq6.Xi0, fq6.Xi1}
	six := big.NewInt(6)
	p := fq.Modulus
	for i := 0; i < frobeniusPeriod12; i++ {
		pi := new(big.Int).Exp(p, big.NewInt(int64(i)), nil)
		num := new(big.Int).Sub(pi, big.NewInt(1))
		if new(big.Int).Mod(num, six).Sign() != 0 {
			panic("fq12: (p^i-1) not divisible by 6")
		}
		e := new(big.Int).Div(num, six)
		gamma12[i] = powFq2(xi, e)
	}
}

// Frobenius lowers the degree-i Frobenius endomorphism over Fq12: apply
// fq6.Frobenius to each coefficient, then scale c1 by the precomputed
// γ12(i).
func Frobenius(a circuit.Wires, i int) (*circuit.Circuit, error) {
	a0, a1 := split(a)
	idx := ((i % frobeniusPeriod12) + frobeniusPeriod12) % frobeniusPeriod12
	c := circuit.Empty()

	f0c, err := fq6.Frobenius(a0, i)
	if err != nil {
		return nil, err
	}
	f0 := c.Extend(f0c)

	f1rawC, err := fq6.Frobenius(a1, i)
	if err != nil {
		return nil, err
	}
	f1raw := c.Extend(f1rawC)

	g := gamma12[idx]
	f1c, err := fq6.MulByConstantFq2(f1raw, g.a0, g.a1)
	if err != nil {
		return nil, err
	}
	f1 := c.Extend(f1c)

	join(c, f0, f1)
	return c, nil
}

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

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
)

// Add lowers (a+b) mod p: a 254-bit add (exact in 255 bits, no mod needed
// yet) followed by one conditional subtraction of p.
func Add(a, b circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	sum, err := U.Add(a, b)
	if err != nil {
		return nil, err
	}
	sumWires := c.Extend(sum)

	red, err := reduceOnce(sumWires)
	if err != nil {
		return nil, err
	}
	result := c.Extend(red)
	c.AddWires(result)
	return c, nil
}

// Double lowers 2a mod p as Add(a, a).
func Double(a circuit.Wires) (*circuit.Circuit, error) {
	return Add(a, a)
}

// pMinus lowers p - x for an x known to lie in [0, p), yielding a value in
// [1, p] as a 254-bit vector: compute (¬x + p + 1), whose low 254 bits are
// exactly p - x (the +2^254 the identity ¬x+1=2^254-x introduces lands
// entirely in the bit this vector discards).
func pMinus(x circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	notX := make(circuit.Wires, NBits)
	for i := 0; i < NBits; i++ {
		out := circuit.NewWire()
		c.Add(circuit.NewNot(x[i], out))
		notX[i] = out
	}

	w1, err := U.AddConstant(notX, Modulus)
	if err != nil {
		return nil, err
	}
	w1Wires := c.Extend(w1)

	w2, err := U255.AddConstant(w1Wires, big.NewInt(1))
	if err != nil {
		return nil, err
	}
	w2Wires := c.Extend(w2)

	c.AddWires(w2Wires[:NBits])
	return c, nil
}

// Neg lowers (p - a) mod p: p - a directly, reduced once for the a == 0
// edge case where the raw value is exactly p.
func Neg(a circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	pm, err := pMinus(a)
	if err != nil {
		return nil, err
	}
	pMinusA := c.Extend(pm)

	red, err := reduceOnce(ext255(pMinusA))
	if err != nil {
		return nil, err
	}
	result := c.Extend(red)
	c.AddWires(result)
	return c, nil
}

// Sub lowers (a-b) mod p as a + (p-b), reduced once.
func Sub(a, b circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	pm, err := pMinus(b)
	if err != nil {
		return nil, err
	}
	pMinusB := c.Extend(pm)

	raw, err := U.Add(a, pMinusB)
	if err != nil {
		return nil, err
	}
	rawWires := c.Extend(raw)

	red, err := reduceOnce(rawWires)
	if err != nil {
		return nil, err
	}
	result := c.Extend(red)
	c.AddWires(result)
	return c, nil
}

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

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
)

// Equal lowers a==b: per-bit XOR, then EqualConstant(xor, 0).
func (b BigInt) Equal(a, bb circuit.Wires) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	if err := b.checkWidth(bb); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	xor := make(circuit.Wires, b.NBits)
	for i := 0; i < b.NBits; i++ {
		out := circuit.NewWire()
		c.Add(circuit.NewXor(a[i], bb[i], out))
		xor[i] = out
	}
	eq, err := b.EqualConstant(xor, big.NewInt(0))
	if err != nil {
		return nil, err
	}
	result := c.Extend(eq)
	c.AddWires(result)
	return c, nil
}

// EqualConstant lowers a==k for a compile-time-known k: for each bit, take
// the literal a_i if k's bit i is 1, else ¬a_i, and AND all N literals
// together in a left-associated chain.
func (b BigInt) EqualConstant(a circuit.Wires, k *big.Int) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	kBits := BitsFromBigInt(k, b.NBits)

	literal := func(i int) *circuit.Wire {
		if kBits[i] {
			return a[i]
		}
		notA := circuit.NewWire()
		c.Add(circuit.NewNot(a[i], notA))
		return notA
	}

	output := literal(0)
	for i := 1; i < b.NBits; i++ {
		next := circuit.NewWire()
		c.Add(circuit.NewAnd(output, literal(i), next))
		output = next
	}
	c.AddWire(output)
	return c, nil
}

// GreaterThan lowers a>b via the two's-complement identity
// a>b ⇔ carry_out(a + ¬b) = 1.
func (b BigInt) GreaterThan(a, bb circuit.Wires) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	if err := b.checkWidth(bb); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	notB := make(circuit.Wires, b.NBits)
	for i := 0; i < b.NBits; i++ {
		out := circuit.NewWire()
		c.Add(circuit.NewNot(bb[i], out))
		notB[i] = out
	}
	sum, err := b.Add(a, notB)
	if err != nil {
		return nil, err
	}
	wires := c.Extend(sum)
	c.AddWire(wires[b.NBits])
	return c, nil
}

// LessThanConstant lowers a<k (for k ≤ 2^N, the caller's responsibility to
// stay within) via carry_out(¬a + k). A k of 2^N or more, which no N-bit
// constant can hold, yields a tied-off true output.
func (b BigInt) LessThanConstant(a circuit.Wires, k *big.Int) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	if k.BitLen() > b.NBits {
		one := circuit.NewWire()
		_ = one.Set(true)
		c.AddWire(one)
		return c, nil
	}
	notA := make(circuit.Wires, b.NBits)
	for i := 0; i < b.NBits; i++ {
		out := circuit.NewWire()
		c.Add(circuit.NewNot(a[i], out))
		notA[i] = out
	}
	sum, err := b.AddConstant(notA, k)
	if err != nil {
		return nil, err
	}
	wires := c.Extend(sum)
	c.AddWire(wires[b.NBits])
	return c, nil
}

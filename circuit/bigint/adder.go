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

// Add lowers unsigned a+b to a ripple-carry adder: N sum wires followed by
// one carry-out wire (N+1 outputs total), using the full-adder identity
// sum = a⊕b⊕cin, carry = (a∧b) ⊕ (cin∧(a⊕b)) — AND/XOR only, no NOT.
// This realizes the 255-wire ripple-carry-adder collaborator with
// carry-out as the top wire.
func (b BigInt) Add(a, bb circuit.Wires) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	if err := b.checkWidth(bb); err != nil {
		return nil, err
	}
	c := circuit.Empty()

	var carry *circuit.Wire
	for i := 0; i < b.NBits; i++ {
		sum := circuit.NewWire()
		if carry == nil {
			// bit 0: no carry-in, full adder degenerates to a half adder.
			c.Add(circuit.NewXor(a[i], bb[i], sum))
			carryOut := circuit.NewWire()
			c.Add(circuit.NewAnd(a[i], bb[i], carryOut))
			c.AddWire(sum)
			carry = carryOut
			continue
		}
		axorb := circuit.NewWire()
		c.Add(circuit.NewXor(a[i], bb[i], axorb))
		c.Add(circuit.NewXor(axorb, carry, sum))

		aandb := circuit.NewWire()
		c.Add(circuit.NewAnd(a[i], bb[i], aandb))
		carryTerm := circuit.NewWire()
		c.Add(circuit.NewAnd(axorb, carry, carryTerm))
		carryOut := circuit.NewWire()
		c.Add(circuit.NewXor(aandb, carryTerm, carryOut))

		c.AddWire(sum)
		carry = carryOut
	}
	c.AddWire(carry)
	return c, nil
}

// AddConstant lowers a+k for a compile-time-known k, by tying off k's bits
// as constant wires and delegating to Add. Returns N+1 output wires, same
// layout as Add.
func (b BigInt) AddConstant(a circuit.Wires, k *big.Int) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	kWires := ConstWires(k, b.NBits)
	return b.Add(a, kWires)
}

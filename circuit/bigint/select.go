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
	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/gadgets"
)

// Select lowers the bitwise multiplexer out = a if s else b, delegating
// each bit to the external selector gadget.
func (b BigInt) Select(a, bb circuit.Wires, s *circuit.Wire) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	if err := b.checkWidth(bb); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	for i := 0; i < b.NBits; i++ {
		bit := gadgets.Selector(a[i], bb[i], s)
		wires := c.Extend(bit)
		c.AddWires(wires)
	}
	return c, nil
}

// SelfOrZero lowers out = a if s else 0, one AND gate per bit.
func (b BigInt) SelfOrZero(a circuit.Wires, s *circuit.Wire) (*circuit.Circuit, error) {
	if err := b.checkWidth(a); err != nil {
		return nil, err
	}
	c := circuit.Empty()
	for i := 0; i < b.NBits; i++ {
		out := circuit.NewWire()
		c.Add(circuit.NewAnd(a[i], s, out))
		c.AddWire(out)
	}
	return c, nil
}

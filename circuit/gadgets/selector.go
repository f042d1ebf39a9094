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

// Package gadgets holds small single-bit building blocks shared by the
// bigint and tower-field lowerings, playing the role of the external
// `selector` collaborator `bigint.Select` calls bitwise.
package gadgets

import "github.com/chainwayxyz/garbled-snark-verifier/circuit"

// Selector lowers the 1-bit multiplexer out = a if s else b via the
// 3-gate mux identity out = b ⊕ (s ∧ (a⊕b)), using only AND/XOR.
func Selector(a, b, s *circuit.Wire) *circuit.Circuit {
	c := circuit.Empty()
	axorb := circuit.NewWire()
	c.Add(circuit.NewXor(a, b, axorb))
	masked := circuit.NewWire()
	c.Add(circuit.NewAnd(s, axorb, masked))
	out := circuit.NewWire()
	c.Add(circuit.NewXor(b, masked, out))
	c.AddWire(out)
	return c
}

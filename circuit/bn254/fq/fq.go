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

// Package fq lowers BN254's base field arithmetic to Boolean gate
// fragments. The lowerings here are textbook schoolbook circuits
// (conditional-subtract addition, interleaved double-and-add modular
// multiplication), not cryptographically optimized ones — appropriate
// because the core of this module is the tower-field
// wiring above it, not base-field efficiency.
package fq

import (
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bigint"
)

// NBits is the bit-width of a base field element.
const NBits = 254

// Modulus is BN254's base field prime.
var Modulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

// U is the width-254 comparator/adder builder field elements are expressed
// over; U255 is one bit wider, used internally to hold addition results and
// p-relative comparisons without ambiguity about overflow.
var (
	U    = bigint.New(NBits)
	U255 = bigint.New(NBits + 1)
)

// twosComplementOfModulus is (2^255 - p), the constant added to subtract p
// from a 255-bit value via unsigned wraparound addition.
var twosComplementOfModulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), NBits+1), Modulus)

// ConstWires returns NBits fresh, tied-off wires holding x mod p's
// little-endian bit expansion.
func ConstWires(x *big.Int) circuit.Wires {
	v := new(big.Int).Mod(x, Modulus)
	return bigint.ConstWires(v, NBits)
}

// ext255 appends one tied-off false wire, widening a to 255 bits.
func ext255(a circuit.Wires) circuit.Wires {
	zero := circuit.NewWire()
	_ = zero.Set(false)
	out := make(circuit.Wires, NBits+1)
	copy(out, a)
	out[NBits] = zero
	return out
}

// reduceOnce lowers raw mod p for a 255-bit raw known to lie in [0, 2p): a
// single conditional subtraction, built from U255.LessThanConstant and
// U.Select — the same reduction step Add/Sub/Neg/Double all share.
func reduceOnce(raw circuit.Wires) (*circuit.Circuit, error) {
	c := circuit.Empty()

	lt, err := U255.LessThanConstant(raw, Modulus)
	if err != nil {
		return nil, err
	}
	ltWire := c.Extend(lt)[0]
	ge := circuit.NewWire()
	c.Add(circuit.NewNot(ltWire, ge))

	diff, err := U255.AddConstant(raw, twosComplementOfModulus)
	if err != nil {
		return nil, err
	}
	diffWires := c.Extend(diff)

	sel, err := U.Select(diffWires[:NBits], raw[:NBits], ge)
	if err != nil {
		return nil, err
	}
	result := c.Extend(sel)
	c.AddWires(result)
	return c, nil
}

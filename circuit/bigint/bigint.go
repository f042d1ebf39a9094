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

// Package bigint lowers unsigned fixed-width integer comparison and
// selection to Boolean gate fragments. The width N is a builder field
// rather than a generic parameter (Go has no const generics); BigInt is
// otherwise the width-generic "BigIntImpl<N_BITS>" of the reference design.
package bigint

import (
	"errors"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
)

var (
	// ErrWidthMismatch is returned when an input wire vector's length does
	// not equal the BigInt's configured width.
	ErrWidthMismatch = errors.New("bigint: wire vector width mismatch")
)

// BigInt is a width-parametric builder for the comparator/selection
// lowering rules of this package.
type BigInt struct {
	NBits int
}

// New returns a BigInt builder for the given bit-width.
func New(nBits int) BigInt {
	return BigInt{NBits: nBits}
}

// U254 is the 254-bit instantiation this module exercises: BN254's base
// field elements and the comparator/selection gadgets built on top of them.
var U254 = New(254)

func (b BigInt) checkWidth(ws circuit.Wires) error {
	if len(ws) != b.NBits {
		return ErrWidthMismatch
	}
	return nil
}

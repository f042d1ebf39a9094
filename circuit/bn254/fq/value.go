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
	"crypto/rand"
	"math/big"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bigint"
)

// ValueFromWires reads back the element a set of evaluated wires holds.
func ValueFromWires(ws circuit.Wires) (*big.Int, error) {
	return bigint.BigIntFromWires(ws)
}

// Random returns a uniformly random element of Fq.
func Random() (*big.Int, error) {
	return rand.Int(rand.Reader, Modulus)
}

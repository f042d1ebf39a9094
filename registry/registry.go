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

// Package registry names the library's operations for the circuitinfo
// diagnostic CLI: each entry samples fresh random operands, builds the
// fragment and hands it back ready to evaluate.
package registry

import (
	"fmt"
	"sort"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bigint"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq12"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq2"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/bn254/fq6"
)

type builderFunc func() (*circuit.Circuit, error)

var builders = map[string]builderFunc{
	"u254-equal":        u254Equal,
	"u254-greater-than": u254GreaterThan,
	"u254-select":       u254Select,
	"fq-add":            fqAdd,
	"fq-mul":            fqMul,
	"fq2-mul":           fq2Mul,
	"fq6-mul":           fq6Mul,
	"fq12-mul":          fq12Mul,
	"fq12-mulby34":      fq12MulBy34,
}

// Names returns every operation name Build accepts.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build synthesizes the named operation against freshly sampled random
// operands, already tied off and ready for eval.Run.
func Build(name string) (*circuit.Circuit, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown operation %q (see circuitinfo list)", name)
	}
	return b()
}

func u254Equal() (*circuit.Circuit, error) {
	a, err := bigint.RandomBits(254)
	if err != nil {
		return nil, err
	}
	return bigint.U254.Equal(bigint.ConstWires(a, 254), bigint.ConstWires(a, 254))
}

func u254GreaterThan() (*circuit.Circuit, error) {
	a, err := bigint.RandomBits(254)
	if err != nil {
		return nil, err
	}
	b, err := bigint.RandomBits(254)
	if err != nil {
		return nil, err
	}
	return bigint.U254.GreaterThan(bigint.ConstWires(a, 254), bigint.ConstWires(b, 254))
}

func u254Select() (*circuit.Circuit, error) {
	a, err := bigint.RandomBits(254)
	if err != nil {
		return nil, err
	}
	b, err := bigint.RandomBits(254)
	if err != nil {
		return nil, err
	}
	s := circuit.NewWire()
	if err := s.Set(true); err != nil {
		return nil, err
	}
	return bigint.U254.Select(bigint.ConstWires(a, 254), bigint.ConstWires(b, 254), s)
}

func fqAdd() (*circuit.Circuit, error) {
	a, err := fq.Random()
	if err != nil {
		return nil, err
	}
	b, err := fq.Random()
	if err != nil {
		return nil, err
	}
	return fq.Add(fq.ConstWires(a), fq.ConstWires(b))
}

func fqMul() (*circuit.Circuit, error) {
	a, err := fq.Random()
	if err != nil {
		return nil, err
	}
	b, err := fq.Random()
	if err != nil {
		return nil, err
	}
	return fq.Mul(fq.ConstWires(a), fq.ConstWires(b))
}

func fq2Mul() (*circuit.Circuit, error) {
	aw, _, _, err := fq2.Random()
	if err != nil {
		return nil, err
	}
	bw, _, _, err := fq2.Random()
	if err != nil {
		return nil, err
	}
	return fq2.Mul(aw, bw)
}

func fq6Mul() (*circuit.Circuit, error) {
	aw, _, _, _, err := fq6.Random()
	if err != nil {
		return nil, err
	}
	bw, _, _, _, err := fq6.Random()
	if err != nil {
		return nil, err
	}
	return fq6.Mul(aw, bw)
}

func fq12Mul() (*circuit.Circuit, error) {
	aw, _, _, err := fq12.Random()
	if err != nil {
		return nil, err
	}
	bw, _, _, err := fq12.Random()
	if err != nil {
		return nil, err
	}
	return fq12.Mul(aw, bw)
}

func fq12MulBy34() (*circuit.Circuit, error) {
	aw, _, _, err := fq12.Random()
	if err != nil {
		return nil, err
	}
	_, _, b1, err := fq12.Random()
	if err != nil {
		return nil, err
	}
	c3 := fq2.ConstWires(b1[0][0], b1[0][1])
	c4 := fq2.ConstWires(b1[1][0], b1[1][1])
	return fq12.MulBy34(aw, c3, c4)
}

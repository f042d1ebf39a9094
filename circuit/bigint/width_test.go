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
	"testing"

	"github.com/stretchr/testify/require"
)

// Small, focused checks that don't need a ginkgo table: width handling on
// the constant-wire constructors, Add's width check, and U254's width.
func TestConstWiresWidth(t *testing.T) {
	ws := ConstWires(big.NewInt(5), 8)
	require.Len(t, ws, 8)

	got, err := BigIntFromWires(ws)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5), got)
}

func TestAddRejectsMismatchedWidth(t *testing.T) {
	b := New(8)
	short := ConstWires(big.NewInt(1), 4)
	full := ConstWires(big.NewInt(1), 8)

	_, err := b.Add(short, full)
	require.ErrorIs(t, err, ErrWidthMismatch)
}

func TestU254IsA254BitBuilder(t *testing.T) {
	require.Equal(t, 254, U254.NBits)
}

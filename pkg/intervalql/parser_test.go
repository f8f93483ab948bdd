// Copyright 2024 The Skyschermer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package intervalql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyschermer/interval-go/golibs/errors"
)

func TestParseLiteralShapes(t *testing.T) {
	for _, expr := range []string{
		"[1, 10]",
		"(1, 10)",
		"[1, 10)",
		"(1, 10]",
		"{5}",
		"(.., 5)",
		"[5, ..)",
		"(-inf, +inf)",
	} {
		e, err := Parse(expr)
		require.NoError(t, err, expr)
		assert.NotNil(t, e.First)
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("[1, 10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestParsePrecedenceShape(t *testing.T) {
	e, err := Parse("[0, 5] U [3, 8] ^ [4, 20]")
	require.NoError(t, err)
	require.Len(t, e.Rest, 1)
	// The right-hand side of the union is itself an intersection chain,
	// not a second top-level union term, so "^" binds tighter than "U".
	assert.Len(t, e.Rest[0].Term.Rest, 1)
	assert.Equal(t, "^", e.Rest[0].Term.Rest[0].Op)
}

func TestParseComplementBindsToSingleFactor(t *testing.T) {
	e, err := Parse("![1, 5] U [10, 15]")
	require.NoError(t, err)
	require.NotNil(t, e.First.First.Not)
	require.Len(t, e.Rest, 1)
	assert.Nil(t, e.Rest[0].Term.First.Not)
}

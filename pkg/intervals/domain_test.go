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
package intervals

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntDomainFinite(t *testing.T) {
	assert.True(t, IntDomain.Finite())
	v, ok := IntDomain.nextUpper(math.MaxInt)
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	v, ok = IntDomain.nextLower(math.MinInt)
	assert.False(t, ok)

	v, ok = IntDomain.nextUpper(5)
	assert.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestRuneDomainFinite(t *testing.T) {
	assert.True(t, RuneDomain.Finite())
	v, ok := RuneDomain.nextLower(rune(0))
	assert.False(t, ok)
	v, ok = RuneDomain.nextUpper('a')
	assert.True(t, ok)
	assert.Equal(t, rune('b'), v)
}

func TestTimeDomainNotFinite(t *testing.T) {
	assert.False(t, TimeDomain.Finite())
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, -1, TimeDomain.Cmp(a, b))
	assert.Equal(t, 1, TimeDomain.Cmp(b, a))
	assert.Equal(t, 0, TimeDomain.Cmp(a, a))
}

func TestNewDomainWithSteps(t *testing.T) {
	d := NewDomain(func(a, b int) int { return a - b }).WithSteps(
		func(v int) (int, bool) { return v - 1, v > 0 },
		func(v int) (int, bool) { return v + 1, v < 10 },
		0, 10,
	)
	assert.True(t, d.Finite())
	assert.Equal(t, 0, d.Min)
	assert.Equal(t, 10, d.Max)
}

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
	"testing"

	"github.com/skyschermer/interval-go/golibs/container/iterable"
	"github.com/stretchr/testify/assert"
)

func TestSelectionIterEmpty(t *testing.T) {
	it := NewSelection(IntDomain).Iter()
	assert.False(t, it.HasNext())
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestSelectionIterMixedShapes(t *testing.T) {
	s := SelectionFromIntervals(IntDomain,
		IntDomain.Closed(1, 5),
		IntDomain.Point(8),
		IntDomain.UpFrom(20),
	)
	var got []string
	it := s.Iter()
	for it.HasNext() {
		iv, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, iv.String())
	}
	assert.Equal(t, []string{"[1, 5]", "{8}", "[21, 9223372036854775807]"}, got)
}

func TestSelectionIterReset(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 5), IntDomain.Closed(10, 15))
	it := s.Iter()
	first, _ := it.Next()
	assert.NoError(t, it.Reset())
	again, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, first.String(), again.String())
}

func TestSelectionIterImplementsIterable(t *testing.T) {
	var _ iterable.Iterator[Interval[int]] = (*SelectionIter[int])(nil)
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 2))
	var iter iterable.Iterator[Interval[int]] = s.Iter()
	assert.True(t, iter.HasNext())
	iv, ok := iter.Next()
	assert.True(t, ok)
	assert.Equal(t, "[1, 2]", iv.String())
	assert.NoError(t, iter.Close())
}

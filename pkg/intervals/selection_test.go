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

	"github.com/stretchr/testify/assert"
)

func collect[T any](s Selection[T]) []string {
	var out []string
	it := s.Iter()
	for it.HasNext() {
		iv, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, iv.String())
	}
	return out
}

func TestUnionDisjointInsertionOutOfOrder(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(20, 25))
	s.UnionInterval(IntDomain.Closed(1, 5))
	s.UnionInterval(IntDomain.Closed(10, 15))
	assert.Equal(t, []string{"[1, 5]", "[10, 15]", "[20, 25]"}, collect(s))
}

func TestUnionOverlap(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 10))
	s.UnionInterval(IntDomain.Closed(5, 15))
	assert.Equal(t, []string{"[1, 15]"}, collect(s))
}

func TestUnionOverlapExact(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 10))
	s.UnionInterval(IntDomain.Closed(1, 10))
	assert.Equal(t, []string{"[1, 10]"}, collect(s))
}

func TestUnionOverlapWidensAcrossAdjacentInts(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 5))
	s.UnionInterval(IntDomain.Closed(6, 10))
	assert.Equal(t, []string{"[1, 10]"}, collect(s))
}

func TestUnionDisjointPoint(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 5))
	s.UnionInterval(IntDomain.Closed(10, 15))
	s.UnionInterval(IntDomain.Point(7))
	assert.Equal(t, []string{"[1, 5]", "{7}", "[10, 15]"}, collect(s))
}

func TestUnionOverlapPointWidensIntoNeighbor(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 5))
	s.UnionInterval(IntDomain.Point(6))
	assert.Equal(t, []string{"[1, 6]"}, collect(s))
}

func TestUnionOverlapPointInsideExisting(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 10))
	s.UnionInterval(IntDomain.Point(5))
	assert.Equal(t, []string{"[1, 10]"}, collect(s))
}

func TestUnionOverlapUnbounded(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.UpTo(5))
	s.UnionInterval(IntDomain.From(3))
	assert.Equal(t, []string{"[-9223372036854775808, 9223372036854775807]"}, collect(s))
}

func TestUnionSwallowsMiddleSegments(t *testing.T) {
	s := NewSelection(IntDomain)
	s.UnionInterval(IntDomain.Closed(1, 2))
	s.UnionInterval(IntDomain.Closed(4, 5))
	s.UnionInterval(IntDomain.Closed(7, 8))
	s.UnionInterval(IntDomain.Closed(0, 9))
	assert.Equal(t, []string{"[0, 9]"}, collect(s))
}

func TestFromIntervals(t *testing.T) {
	s := SelectionFromIntervals(IntDomain,
		IntDomain.Closed(1, 5),
		IntDomain.Closed(10, 15),
	)
	assert.Equal(t, []string{"[1, 5]", "[10, 15]"}, collect(s))
}

func TestContains(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 5), IntDomain.Closed(10, 15))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(6))
	assert.False(t, s.Contains(9))
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(16))
	assert.False(t, s.Contains(0))
}

func TestContainsInterval(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 10))
	assert.True(t, s.ContainsInterval(IntDomain.Closed(2, 8)))
	assert.False(t, s.ContainsInterval(IntDomain.Closed(2, 20)))
	assert.True(t, s.ContainsInterval(IntDomain.Empty()))
}

func TestIntersect(t *testing.T) {
	a := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 10), IntDomain.Closed(20, 30))
	b := SelectionFromIntervals(IntDomain, IntDomain.Closed(5, 25))
	got := a.Intersect(b)
	assert.Equal(t, []string{"[5, 10]", "[20, 25]"}, collect(got))
}

func TestIntersectMultipleOverlapsPastFirstGap(t *testing.T) {
	// Regresses the early-break bug in the implementation this package is
	// grounded on: a naive merge that stops at the first non-overlapping
	// pair would miss the second overlap entirely.
	a := SelectionFromIntervals(IntDomain,
		IntDomain.Closed(0, 2),
		IntDomain.Closed(10, 12),
		IntDomain.Closed(20, 22),
	)
	b := SelectionFromIntervals(IntDomain,
		IntDomain.Closed(1, 11),
		IntDomain.Closed(21, 25),
	)
	got := a.Intersect(b)
	assert.Equal(t, []string{"[1, 2]", "[10, 11]", "[21, 22]"}, collect(got))
}

func TestUnion(t *testing.T) {
	a := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 5))
	b := SelectionFromIntervals(IntDomain, IntDomain.Closed(3, 10))
	got := a.Union(b)
	assert.Equal(t, []string{"[1, 10]"}, collect(got))
}

func TestMinus(t *testing.T) {
	a := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 10))
	b := SelectionFromIntervals(IntDomain, IntDomain.Closed(4, 6))
	got := a.Minus(b)
	assert.Equal(t, []string{"[1, 3]", "[7, 10]"}, collect(got))
}

func TestComplement(t *testing.T) {
	a := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 10))
	got := a.Complement()
	assert.Equal(t, []string{"[-9223372036854775808, 0]", "[11, 9223372036854775807]"}, collect(got))

	back := got.Complement()
	assert.Equal(t, collect(a), collect(back))
}

func TestComplementOfEmptyIsFull(t *testing.T) {
	assert.True(t, NewSelection(IntDomain).Complement().IsFull())
}

func TestComplementOfFullIsEmpty(t *testing.T) {
	full := SelectionFromIntervals(IntDomain, IntDomain.Full())
	assert.True(t, full.Complement().IsEmpty())
}

func TestClosureJoinsTouchingExclusiveGap(t *testing.T) {
	// Over a non-normalizing domain, closure of two open intervals
	// touching at an excluded point joins them into one run.
	dom := NewDomain(fcmp)
	s := NewSelection(dom)
	s.UnionInterval(dom.Open(0, 5))
	s.UnionInterval(dom.Open(5, 10))
	assert.Equal(t, []string{"(0, 5)", "(5, 10)"}, collect(s))
	closed := s.Closure()
	assert.Equal(t, []string{"[0, 10]"}, collect(closed))
}

func TestEnclosingInterval(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(5, 10), IntDomain.Closed(20, 30))
	assert.Equal(t, "[5, 30]", s.EnclosingInterval().String())
	assert.True(t, NewSelection(IntDomain).EnclosingInterval().IsEmpty())
}

func TestIsFullAndIsBounded(t *testing.T) {
	assert.True(t, SelectionFromIntervals(IntDomain, IntDomain.Full()).IsFull())
	assert.True(t, SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 5)).IsBounded())
	assert.False(t, SelectionFromIntervals(NewDomain(intCmp), NewDomain(intCmp).From(1)).IsBounded())
}

func TestIntersectInterval(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 20))
	s.IntersectInterval(IntDomain.Closed(5, 10))
	assert.Equal(t, []string{"[5, 10]"}, collect(s))
}

func TestIterationRoundTrip(t *testing.T) {
	s := SelectionFromIntervals(IntDomain, IntDomain.Closed(1, 5), IntDomain.Point(8), IntDomain.Closed(10, 15))
	it := s.Iter()
	var got []Interval[int]
	for it.HasNext() {
		iv, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, iv)
	}
	assert.NoError(t, it.Close())
	rebuilt := SelectionFromIntervals(IntDomain, got...)
	assert.Equal(t, collect(s), collect(rebuilt))
}

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

// boundKind distinguishes an included endpoint, an excluded endpoint, or no
// endpoint at all (the bound runs to infinity).
type boundKind int

const (
	boundInclude boundKind = iota
	boundExclude
	boundInfinite
)

// Bound is one endpoint of an interval: a value with inclusive/exclusive
// weight, or Infinite() for an endpoint that doesn't exist.
type Bound[T any] struct {
	kind  boundKind
	value T
}

// Include returns a bound that contains v.
func Include[T any](v T) Bound[T] { return Bound[T]{kind: boundInclude, value: v} }

// Exclude returns a bound that approaches v without containing it.
func Exclude[T any](v T) Bound[T] { return Bound[T]{kind: boundExclude, value: v} }

// Infinite returns a bound with no endpoint value.
func Infinite[T any]() Bound[T] { return Bound[T]{kind: boundInfinite} }

func (b Bound[T]) IsInclusive() bool { return b.kind == boundInclude }
func (b Bound[T]) IsExclusive() bool { return b.kind == boundExclude }
func (b Bound[T]) IsInfinite() bool  { return b.kind == boundInfinite }

// Value returns the endpoint value. It is the zero value of T when
// IsInfinite().
func (b Bound[T]) Value() T { return b.value }

// leastUnion returns the more extreme of the two bounds in the "lower"
// direction: the smaller value, Infinite if either is, inclusive wins ties.
func (b Bound[T]) leastUnion(o Bound[T], cmp func(a, b T) int) Bound[T] {
	if b.kind == boundInfinite || o.kind == boundInfinite {
		return Infinite[T]()
	}
	switch c := cmp(b.value, o.value); {
	case c < 0:
		return b
	case c > 0:
		return o
	default:
		if b.IsInclusive() || o.IsInclusive() {
			return Include(b.value)
		}
		return Exclude(b.value)
	}
}

// greatestUnion is leastUnion's mirror for the "upper" direction.
func (b Bound[T]) greatestUnion(o Bound[T], cmp func(a, b T) int) Bound[T] {
	if b.kind == boundInfinite || o.kind == boundInfinite {
		return Infinite[T]()
	}
	switch c := cmp(b.value, o.value); {
	case c > 0:
		return b
	case c < 0:
		return o
	default:
		if b.IsInclusive() || o.IsInclusive() {
			return Include(b.value)
		}
		return Exclude(b.value)
	}
}

// greatestIntersect returns the more restrictive of two lower bounds: the
// larger value, exclusive wins ties, a finite bound always beats Infinite.
func (b Bound[T]) greatestIntersect(o Bound[T], cmp func(a, b T) int) Bound[T] {
	if b.kind == boundInfinite {
		return o
	}
	if o.kind == boundInfinite {
		return b
	}
	switch c := cmp(b.value, o.value); {
	case c > 0:
		return b
	case c < 0:
		return o
	default:
		if b.IsExclusive() || o.IsExclusive() {
			return Exclude(b.value)
		}
		return Include(b.value)
	}
}

// leastIntersect is greatestIntersect's mirror for two upper bounds.
func (b Bound[T]) leastIntersect(o Bound[T], cmp func(a, b T) int) Bound[T] {
	if b.kind == boundInfinite {
		return o
	}
	if o.kind == boundInfinite {
		return b
	}
	switch c := cmp(b.value, o.value); {
	case c < 0:
		return b
	case c > 0:
		return o
	default:
		if b.IsExclusive() || o.IsExclusive() {
			return Exclude(b.value)
		}
		return Include(b.value)
	}
}

// unionAdjacent reports whether b and o name the same point with opposite
// inclusivity, i.e. together they cover that point with no gap.
func (b Bound[T]) unionAdjacent(o Bound[T], cmp func(a, b T) int) bool {
	if b.kind == boundInfinite || o.kind == boundInfinite {
		return false
	}
	if cmp(b.value, o.value) != 0 {
		return false
	}
	return b.IsInclusive() != o.IsInclusive()
}

func boundCmp[T any](a, b Bound[T], cmp func(x, y T) int) int {
	switch {
	case a.kind == boundInfinite && b.kind == boundInfinite:
		return 0
	case a.kind == boundInfinite:
		return 1
	case b.kind == boundInfinite:
		return -1
	default:
		return cmp(a.value, b.value)
	}
}

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
	"cmp"
	"math"
	"time"
	"unicode/utf8"
)

// Domain carries everything the interval algebra needs to know about T: a
// total order, and, optionally, the predecessor/successor functions that
// make normalization possible. Go has no specialization to pick a
// "Finite(T)" implementation only when one exists, so the capability is
// carried on the value and checked at the call site with Finite().
type Domain[T any] struct {
	// Cmp reports -1, 0, or 1 as a is less than, equal to, or greater
	// than b. Required.
	Cmp func(a, b T) int

	// Pred and Succ return the value immediately below/above v, and false
	// if v is already at the domain's minimum/maximum. Leave both nil for
	// a domain with no canonical atomic step (e.g. floats, wall-clock
	// time); Normalize then becomes the identity.
	Pred func(v T) (T, bool)
	Succ func(v T) (T, bool)

	// Min and Max bound the domain. Only meaningful when Finite().
	Min T
	Max T
}

// NewDomain builds a comparison-only Domain. Widen it with WithSteps to make
// it finite.
func NewDomain[T any](cmpF func(a, b T) int) Domain[T] {
	return Domain[T]{Cmp: cmpF}
}

// WithSteps returns a copy of d with predecessor/successor functions and
// domain bounds attached.
func (d Domain[T]) WithSteps(pred, succ func(v T) (T, bool), min, max T) Domain[T] {
	d.Pred, d.Succ, d.Min, d.Max = pred, succ, min, max
	return d
}

// Finite reports whether d has a canonical atomic step, i.e. whether
// RawInterval values over this domain are ever normalized.
func (d Domain[T]) Finite() bool {
	return d.Pred != nil && d.Succ != nil
}

func (d Domain[T]) nextLower(v T) (T, bool) {
	if d.Pred == nil {
		var zero T
		return zero, false
	}
	return d.Pred(v)
}

func (d Domain[T]) nextUpper(v T) (T, bool) {
	if d.Succ == nil {
		var zero T
		return zero, false
	}
	return d.Succ(v)
}

// IntDomain is the finite domain of machine ints, stepping by one and
// bottoming out at math.MinInt/math.MaxInt.
var IntDomain = NewDomain(cmp.Compare[int]).WithSteps(
	func(v int) (int, bool) {
		if v == math.MinInt {
			return 0, false
		}
		return v - 1, true
	},
	func(v int) (int, bool) {
		if v == math.MaxInt {
			return 0, false
		}
		return v + 1, true
	},
	math.MinInt, math.MaxInt,
)

// RuneDomain is the finite domain of Unicode code points.
var RuneDomain = NewDomain(cmp.Compare[rune]).WithSteps(
	func(v rune) (rune, bool) {
		if v <= 0 {
			return 0, false
		}
		return v - 1, true
	},
	func(v rune) (rune, bool) {
		if v >= utf8.MaxRune {
			return 0, false
		}
		return v + 1, true
	},
	rune(0), rune(utf8.MaxRune),
)

// TimeDomain compares wall-clock instants but never normalizes: time has no
// canonical atomic step, so Pred/Succ are left nil.
var TimeDomain = NewDomain(func(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
})

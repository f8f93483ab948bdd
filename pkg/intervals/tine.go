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

// tine is one boundary marker of a Selection's TineSet encoding: a point
// (or the absence of one, for an unbounded end) plus flags for whether it
// opens a segment (lb), closes one (ub), and whether the point itself is
// included. Two tines at the same position are treated as equal by the
// ordering in tineLess regardless of their flags — that equivalence, not
// the flags, is what the backing btree indexes on.
type tine[T any] struct {
	point T
	hasPt bool // false for the two unbounded sentinels
	lb    bool
	ub    bool
	incl  bool
}

// isPoint reports whether t represents an isolated included point with no
// open segment on either side.
func (t tine[T]) isPoint() bool {
	return t.hasPt && !t.lb && !t.ub && t.incl
}

func (t tine[T]) isLowerUnbounded() bool { return !t.hasPt && t.lb && !t.ub }
func (t tine[T]) isUpperUnbounded() bool { return !t.hasPt && !t.lb && t.ub }

// tineLess is the §4.4 strict total order: tines at the same point (or the
// same unbounded end) are never strictly less than one another.
func tineLess[T any](cmp func(a, b T) int, a, b tine[T]) bool {
	switch {
	case a.hasPt && b.hasPt:
		return cmp(a.point, b.point) < 0
	case !a.hasPt && b.hasPt:
		return a.lb
	case a.hasPt && !b.hasPt:
		return !b.lb
	default:
		if a.isLowerUnbounded() && b.isUpperUnbounded() {
			return true
		}
		return false
	}
}

func tineSamePos[T any](cmp func(a, b T) int, a, b tine[T]) bool {
	if a.hasPt != b.hasPt {
		return false
	}
	if !a.hasPt {
		return a.lb == b.lb && a.ub == b.ub
	}
	return cmp(a.point, b.point) == 0
}

// mergeTines OR-combines two tines occupying the same position. It reports
// ok=false when the merge produces lb && ub && incl — a fully-closed
// position carries no boundary information and must be removed rather than
// stored.
func mergeTines[T any](a, b tine[T]) (tine[T], bool) {
	m := tine[T]{
		point: a.point,
		hasPt: a.hasPt,
		lb:    a.lb || b.lb,
		ub:    a.ub || b.ub,
		incl:  a.incl || b.incl,
	}
	if m.lb && m.ub && m.incl {
		var zero tine[T]
		return zero, false
	}
	return m, true
}

// tinesFromInterval decomposes iv (assumed already normalized) into zero,
// one, or two tines: zero for Empty, one for a degenerate point, two
// (lower, upper) otherwise.
func tinesFromInterval[T any](iv Interval[T]) []tine[T] {
	if iv.IsEmpty() {
		return nil
	}
	if iv.IsDegenerate() {
		p, _ := iv.Infimum()
		return []tine[T]{{point: p, hasPt: true, incl: true}}
	}
	lo := tine[T]{lb: true, ub: false, incl: !iv.IsLeftOpen()}
	if p, ok := iv.Infimum(); ok {
		lo.point, lo.hasPt = p, true
	}
	hi := tine[T]{lb: false, ub: true, incl: !iv.IsRightOpen()}
	if p, ok := iv.Supremum(); ok {
		hi.point, hi.hasPt = p, true
	}
	return []tine[T]{lo, hi}
}

func tineLowerBound[T any](t tine[T]) Bound[T] {
	if !t.hasPt {
		return Infinite[T]()
	}
	if t.incl {
		return Include(t.point)
	}
	return Exclude(t.point)
}

func tineUpperBound[T any](t tine[T]) Bound[T] {
	if !t.hasPt {
		return Infinite[T]()
	}
	if t.incl {
		return Include(t.point)
	}
	return Exclude(t.point)
}

// String renders t using the bracket notation from the tine encoding
// table: "(" for an exclusive lower boundary, "[" for inclusive, "|" for an
// isolated point, ")(" for a touching-exclusive gap, etc.
func (t tine[T]) String() string {
	switch {
	case !t.hasPt:
		if t.lb {
			return "(-∞"
		}
		return "∞)"
	case t.isPoint():
		return "|"
	case t.lb && t.ub:
		if t.incl {
			return "][" // unreachable in a well-formed set; kept for completeness
		}
		return ")("
	case t.lb:
		if t.incl {
			return "["
		}
		return "("
	default: // t.ub
		if t.incl {
			return "]"
		}
		return ")"
	}
}

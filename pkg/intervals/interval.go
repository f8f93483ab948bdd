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

// Interval pairs a RawInterval with the Domain it was built against, and
// keeps it normalized. This mirrors the teacher's Basis[T]-attached
// constructor methods (Open/OpenL/OpenR/Closed), widened to the full
// eleven-shape algebra.
type Interval[T any] struct {
	raw RawInterval[T]
	dom Domain[T]
}

func wrap[T any](raw RawInterval[T], dom Domain[T]) Interval[T] {
	if dom.Finite() {
		raw = Normalize(raw, dom)
	}
	return Interval[T]{raw: raw, dom: dom}
}

// New builds the Interval for an arbitrary bound pair.
func (d Domain[T]) New(lower, upper Bound[T]) Interval[T] {
	return wrap(NewRaw(lower, upper, d.Cmp), d)
}

// Empty returns the empty interval over d.
func (d Domain[T]) Empty() Interval[T] { return Interval[T]{raw: EmptyRaw[T](), dom: d} }

// Full returns the interval spanning all of d.
func (d Domain[T]) Full() Interval[T] { return wrap(FullRaw[T](), d) }

// Point returns the degenerate interval containing exactly p.
func (d Domain[T]) Point(p T) Interval[T] { return wrap(PointRaw(p), d) }

// Open returns (lower, upper).
func (d Domain[T]) Open(lower, upper T) Interval[T] { return wrap(OpenRaw(lower, upper, d.Cmp), d) }

// LeftOpen returns (lower, upper].
func (d Domain[T]) LeftOpen(lower, upper T) Interval[T] {
	return wrap(LeftOpenRaw(lower, upper, d.Cmp), d)
}

// RightOpen returns [lower, upper).
func (d Domain[T]) RightOpen(lower, upper T) Interval[T] {
	return wrap(RightOpenRaw(lower, upper, d.Cmp), d)
}

// Closed returns [lower, upper].
func (d Domain[T]) Closed(lower, upper T) Interval[T] {
	return wrap(ClosedRaw(lower, upper, d.Cmp), d)
}

// UpTo returns (-inf, p).
func (d Domain[T]) UpTo(p T) Interval[T] { return wrap(UpToRaw(p), d) }

// UpFrom returns (p, +inf).
func (d Domain[T]) UpFrom(p T) Interval[T] { return wrap(UpFromRaw(p), d) }

// To returns (-inf, p].
func (d Domain[T]) To(p T) Interval[T] { return wrap(ToRaw(p), d) }

// From returns [p, +inf).
func (d Domain[T]) From(p T) Interval[T] { return wrap(FromRaw(p), d) }

func (iv Interval[T]) Raw() RawInterval[T]  { return iv.raw }
func (iv Interval[T]) Domain() Domain[T]    { return iv.dom }
func (iv Interval[T]) Contains(p T) bool    { return iv.raw.Contains(p, iv.dom.Cmp) }
func (iv Interval[T]) IsEmpty() bool        { return iv.raw.IsEmpty() }
func (iv Interval[T]) IsFull() bool         { return iv.raw.IsFull() }
func (iv Interval[T]) IsDegenerate() bool   { return iv.raw.kind == rawPoint }
func (iv Interval[T]) IsLeftOpen() bool     { return iv.raw.IsLeftOpen() }
func (iv Interval[T]) IsRightOpen() bool    { return iv.raw.IsRightOpen() }
func (iv Interval[T]) LowerBound() (Bound[T], bool) { return iv.raw.LowerBound() }
func (iv Interval[T]) UpperBound() (Bound[T], bool) { return iv.raw.UpperBound() }
func (iv Interval[T]) Infimum() (T, bool)   { return iv.raw.Infimum() }
func (iv Interval[T]) Supremum() (T, bool)  { return iv.raw.Supremum() }
func (iv Interval[T]) String() string       { return iv.raw.String() }

// Intersects reports whether iv and other share any point.
func (iv Interval[T]) Intersects(other Interval[T]) bool {
	return iv.raw.Intersects(other.raw, iv.dom.Cmp)
}

// Adjacent reports whether iv and other touch without overlapping.
func (iv Interval[T]) Adjacent(other Interval[T]) bool {
	return iv.raw.Adjacent(other.raw, iv.dom.Cmp)
}

// Intersect returns the interval of points in both iv and other.
func (iv Interval[T]) Intersect(other Interval[T]) Interval[T] {
	return wrap(iv.raw.Intersect(other.raw, iv.dom.Cmp), iv.dom)
}

// Enclose returns the smallest interval spanning both iv and other.
func (iv Interval[T]) Enclose(other Interval[T]) Interval[T] {
	return wrap(iv.raw.Enclose(other.raw, iv.dom.Cmp), iv.dom)
}

// Union returns the one or two intervals covering iv's points or other's.
func (iv Interval[T]) Union(other Interval[T]) []Interval[T] {
	return wrapAll(iv.raw.Union(other.raw, iv.dom.Cmp), iv.dom)
}

// Minus returns the intervals covering iv's points that aren't other's.
func (iv Interval[T]) Minus(other Interval[T]) []Interval[T] {
	return wrapAll(iv.raw.Minus(other.raw, iv.dom.Cmp), iv.dom)
}

// Complement returns the intervals covering every point not in iv.
func (iv Interval[T]) Complement() []Interval[T] {
	return wrapAll(iv.raw.Complement(), iv.dom)
}

// Closure returns iv with any exclusive finite endpoint made inclusive.
func (iv Interval[T]) Closure() Interval[T] {
	return wrap(iv.raw.Closure(), iv.dom)
}

func wrapAll[T any](raws []RawInterval[T], dom Domain[T]) []Interval[T] {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Interval[T], len(raws))
	for i, r := range raws {
		out[i] = wrap(r, dom)
	}
	return out
}

func intervalsEqual[T any](a, b Interval[T]) bool {
	if a.raw.kind != b.raw.kind {
		return false
	}
	switch a.raw.kind {
	case rawEmpty, rawFull:
		return true
	case rawPoint, rawUpTo, rawUpFrom, rawTo, rawFrom:
		av, _ := anyBound(a.raw)
		bv, _ := anyBound(b.raw)
		return a.dom.Cmp(av, bv) == 0
	default:
		return a.dom.Cmp(a.raw.l, b.raw.l) == 0 && a.dom.Cmp(a.raw.r, b.raw.r) == 0
	}
}

// anyBound returns whichever of l/r carries iv's single meaningful value,
// for the half-bounded and degenerate shapes.
func anyBound[T any](iv RawInterval[T]) (T, bool) {
	switch iv.kind {
	case rawPoint, rawUpFrom, rawFrom:
		return iv.l, true
	case rawUpTo, rawTo:
		return iv.r, true
	}
	var zero T
	return zero, false
}

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

import "github.com/tidwall/btree"

// Selection is a finite disjoint union of intervals over a Domain, encoded
// as an ordered set of boundary tines (see tine.go). Every combinator
// returns a fresh Selection; none mutate the receiver except the
// UnionInterval/IntersectInterval pair, which are documented as mutators.
type Selection[T any] struct {
	dom  Domain[T]
	tree *btree.BTreeG[tine[T]]
}

// NewSelection returns the empty selection over dom.
func NewSelection[T any](dom Domain[T]) Selection[T] {
	return Selection[T]{
		dom:  dom,
		tree: btree.NewBTreeG[tine[T]](func(a, b tine[T]) bool { return tineLess(dom.Cmp, a, b) }),
	}
}

// SelectionFromIntervals returns the selection covering the union of ivs.
func SelectionFromIntervals[T any](dom Domain[T], ivs ...Interval[T]) Selection[T] {
	s := NewSelection(dom)
	for _, iv := range ivs {
		s.UnionInterval(iv)
	}
	return s
}

func (s Selection[T]) less(a, b tine[T]) bool   { return tineLess(s.dom.Cmp, a, b) }
func (s Selection[T]) samePos(a, b tine[T]) bool { return tineSamePos(s.dom.Cmp, a, b) }

// clone returns a Selection sharing no mutable state with s.
func (s Selection[T]) clone() Selection[T] {
	return Selection[T]{dom: s.dom, tree: s.tree.Copy()}
}

// Domain returns the domain s was built over.
func (s Selection[T]) Domain() Domain[T] { return s.dom }

// IsEmpty reports whether s contains no points.
func (s Selection[T]) IsEmpty() bool { return s.tree.Len() == 0 }

// IsFull reports whether s covers the entire domain.
func (s Selection[T]) IsFull() bool {
	if s.tree.Len() != 2 {
		return false
	}
	lo, _ := s.tree.Min()
	hi, _ := s.tree.Max()
	if lo.isLowerUnbounded() && hi.isUpperUnbounded() {
		return true
	}
	// Over a finite domain the full interval normalizes to [Min, Max].
	return s.dom.Finite() && lo.hasPt && hi.hasPt && lo.lb && lo.incl && hi.ub && hi.incl &&
		s.dom.Cmp(lo.point, s.dom.Min) == 0 && s.dom.Cmp(hi.point, s.dom.Max) == 0
}

// IsBounded reports whether s is finite on both ends.
func (s Selection[T]) IsBounded() bool {
	if lo, ok := s.tree.Min(); ok && !lo.hasPt {
		return false
	}
	if hi, ok := s.tree.Max(); ok && !hi.hasPt {
		return false
	}
	return true
}

// LowerBound returns the selection's overall lower bound. ok is false only
// when s is empty.
func (s Selection[T]) LowerBound() (Bound[T], bool) {
	t, ok := s.tree.Min()
	if !ok {
		return Bound[T]{}, false
	}
	return tineLowerBound(t), true
}

// UpperBound returns the selection's overall upper bound. ok is false only
// when s is empty.
func (s Selection[T]) UpperBound() (Bound[T], bool) {
	t, ok := s.tree.Max()
	if !ok {
		return Bound[T]{}, false
	}
	return tineUpperBound(t), true
}

// Infimum returns the selection's overall lower value, if bounded below.
func (s Selection[T]) Infimum() (T, bool) {
	b, ok := s.LowerBound()
	if !ok || b.IsInfinite() {
		var zero T
		return zero, false
	}
	return b.Value(), true
}

// Supremum returns the selection's overall upper value, if bounded above.
func (s Selection[T]) Supremum() (T, bool) {
	b, ok := s.UpperBound()
	if !ok || b.IsInfinite() {
		var zero T
		return zero, false
	}
	return b.Value(), true
}

// EnclosingInterval returns the smallest single interval spanning s.
func (s Selection[T]) EnclosingInterval() Interval[T] {
	lb, lok := s.LowerBound()
	ub, uok := s.UpperBound()
	if !lok || !uok {
		return s.dom.Empty()
	}
	return s.dom.New(lb, ub)
}

// Contains reports whether p lies in s.
func (s Selection[T]) Contains(p T) bool {
	if at, ok := s.tree.Get(tine[T]{point: p, hasPt: true}); ok {
		return at.incl
	}
	if before, ok := s.lastBefore(tine[T]{point: p, hasPt: true}); ok {
		return before.lb
	}
	return false
}

// ContainsInterval reports whether every point of iv lies in s.
func (s Selection[T]) ContainsInterval(iv Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	probe := NewSelection(s.dom)
	probe.UnionInterval(iv)
	inter := s.Intersect(probe)
	it := inter.Iter()
	first, ok := it.Next()
	if !ok {
		return false
	}
	if it.HasNext() {
		return false
	}
	return intervalsEqual(first, iv)
}

// lastBefore returns the tine strictly less than pivot, if any.
func (s Selection[T]) lastBefore(pivot tine[T]) (tine[T], bool) {
	var res tine[T]
	found := false
	s.tree.Descend(pivot, func(item tine[T]) bool {
		if s.less(item, pivot) {
			res, found = item, true
			return false
		}
		return true
	})
	return res, found
}

// firstAtOrAfter returns the tine at or after pivot, if any.
func (s Selection[T]) firstAtOrAfter(pivot tine[T]) (tine[T], bool) {
	var res tine[T]
	found := false
	s.tree.Ascend(pivot, func(item tine[T]) bool {
		res, found = item, true
		return false
	})
	return res, found
}

// firstAfter returns the tine strictly after pivot, if any.
func (s Selection[T]) firstAfter(pivot tine[T]) (tine[T], bool) {
	var res tine[T]
	found := false
	s.tree.Ascend(pivot, func(item tine[T]) bool {
		if s.less(pivot, item) {
			res, found = item, true
			return false
		}
		return true
	})
	return res, found
}

// deleteBetween removes every stored tine strictly between lo and hi.
func (s Selection[T]) deleteBetween(lo, hi tine[T]) {
	var victims []tine[T]
	s.tree.Ascend(lo, func(item tine[T]) bool {
		if !s.less(lo, item) {
			return true
		}
		if !s.less(item, hi) {
			return false
		}
		victims = append(victims, item)
		return true
	})
	for _, v := range victims {
		s.tree.Delete(v)
	}
}

func (s Selection[T]) widenLeft(t tine[T]) tine[T] {
	if !t.hasPt {
		return t
	}
	if lower, ok := s.dom.nextLower(t.point); ok && s.Contains(lower) {
		t.point = lower
	}
	return t
}

func (s Selection[T]) widenRight(t tine[T]) tine[T] {
	if !t.hasPt {
		return t
	}
	if upper, ok := s.dom.nextUpper(t.point); ok && s.Contains(upper) {
		t.point = upper
	}
	return t
}

// widen moves each boundary tine of an incoming interval one step outward
// onto its neighbor when that neighbor is already selected, so a finite
// domain's "gap of zero width"
// (e.g. inserting 6 next to an existing [1,5]) produces one joined run
// instead of two tines that would otherwise sit one step apart.
func (s Selection[T]) widen(tines []tine[T]) []tine[T] {
	if len(tines) == 0 {
		return tines
	}
	if len(tines) == 1 {
		pt := tines[0]
		lb := pt
		lb.lb, lb.ub = true, false
		ub := pt
		ub.lb, ub.ub = false, true
		newL := s.widenLeft(lb)
		newR := s.widenRight(ub)
		if s.dom.Cmp(newL.point, newR.point) == 0 {
			return []tine[T]{pt}
		}
		return []tine[T]{newL, newR}
	}
	return []tine[T]{s.widenLeft(tines[0]), s.widenRight(tines[1])}
}

// UnionInterval mutates s to also cover iv.
func (s *Selection[T]) UnionInterval(iv Interval[T]) {
	if iv.IsEmpty() {
		return
	}
	tines := s.widen(tinesFromInterval(iv))
	switch len(tines) {
	case 1:
		s.unionPoint(tines[0])
	case 2:
		s.unionNormal(tines[0], tines[1])
	}
}

// unionPoint inserts a single widened point tine (§4.7 Case B). p arrives
// shaped as an isolated point (lb == ub == false, incl == true); every
// branch below stores it as-is, OR-merges it into a neighbor, or drops it
// because it is already covered, so the stored-point invariant from tine.go
// only needs enforcing once, here, rather than at each store site.
func (s *Selection[T]) unionPoint(p tine[T]) {
	p.lb, p.ub = false, false
	if s.tree.Len() == 0 {
		s.tree.Set(p)
		return
	}
	before, hasBefore := s.lastBefore(p)
	after, hasAfter := s.firstAtOrAfter(p)
	switch {
	case hasAfter && s.samePos(after, p):
		if merged, ok := mergeTines(p, after); ok {
			s.tree.Set(merged)
		} else {
			s.tree.Delete(after)
		}
	case hasBefore && before.lb:
		// p already lies inside an existing open segment.
	default:
		s.tree.Set(p)
	}
}

// unionNormal inserts a widened (lower, upper) tine pair (§4.7 Case C),
// absorbing and discarding any tines strictly between them.
func (s *Selection[T]) unionNormal(lTine, rTine tine[T]) {
	if s.tree.Len() == 0 || (!lTine.hasPt && !rTine.hasPt) {
		s.tree = btree.NewBTreeG[tine[T]](func(a, b tine[T]) bool { return s.less(a, b) })
		s.tree.Set(lTine)
		s.tree.Set(rTine)
		return
	}

	before, hasBefore := s.lastBefore(lTine)

	lMerged, lPresent := lTine, true
	if atL, ok := s.firstAtOrAfter(lTine); ok && s.samePos(atL, lTine) {
		s.tree.Delete(atL)
		if merged, ok := mergeTines(lTine, atL); ok {
			lMerged = merged
		} else {
			lPresent = false
		}
	}

	rMerged, rPresent := rTine, true
	if atR, ok := s.firstAtOrAfter(rTine); ok && s.samePos(atR, rTine) {
		s.tree.Delete(atR)
		if merged, ok := mergeTines(rTine, atR); ok {
			rMerged = merged
		} else {
			rPresent = false
		}
	}

	after, hasAfter := s.firstAfter(rTine)

	s.deleteBetween(lTine, rTine)

	// A boundary tine is stored unless it falls inside a segment that is
	// already open on that side (the same test Contains uses).
	if lPresent && (!hasBefore || !before.lb || lMerged.ub) {
		s.tree.Set(lMerged)
	}
	if rPresent && (!hasAfter || !after.ub || rMerged.lb) {
		s.tree.Set(rMerged)
	}
}

// IntersectInterval mutates s to keep only the points also in iv.
func (s *Selection[T]) IntersectInterval(iv Interval[T]) {
	single := NewSelection(s.dom)
	single.UnionInterval(iv)
	*s = s.Intersect(single)
}

// Intersect returns the selection of points common to s and other, by a
// sorted merge of their interval sequences that advances whichever
// sequence's current interval ends first. (The reference implementation
// this is grounded on instead broke out of the merge on the first
// non-overlapping pair, which misses later overlaps — fixed here.)
func (s Selection[T]) Intersect(other Selection[T]) Selection[T] {
	result := NewSelection(s.dom)
	ai, bi := s.Iter(), other.Iter()
	a, aok := ai.Next()
	b, bok := bi.Next()
	for aok && bok {
		inter := a.Intersect(b)
		if !inter.IsEmpty() {
			result.UnionInterval(inter)
		}
		aEndsFirst := boundCmp(mustUB(a), mustUB(b), s.dom.Cmp) < 0
		bEndsFirst := boundCmp(mustUB(b), mustUB(a), s.dom.Cmp) < 0
		switch {
		case aEndsFirst:
			a, aok = ai.Next()
		case bEndsFirst:
			b, bok = bi.Next()
		default:
			a, aok = ai.Next()
			b, bok = bi.Next()
		}
	}
	return result
}

func mustUB[T any](iv Interval[T]) Bound[T] {
	b, _ := iv.UpperBound()
	return b
}

// Union returns the selection of points in s or other.
func (s Selection[T]) Union(other Selection[T]) Selection[T] {
	result := s.clone()
	it := other.Iter()
	for it.HasNext() {
		iv, ok := it.Next()
		if !ok {
			break
		}
		result.UnionInterval(iv)
	}
	return result
}

// Minus returns the selection of points in s but not other.
func (s Selection[T]) Minus(other Selection[T]) Selection[T] {
	return other.Complement().Intersect(s)
}

// Complement returns the selection of every point not in s. Every bounded
// tine flips lb, ub, and incl in place (the position is unchanged); the two
// unbounded sentinels are dropped if present and added if absent, since the
// complement's extent at infinity is the opposite of s's. Over a finite
// domain the result is then rebuilt from its normalized pieces, so pieces
// lying wholly below Min or above Max disappear.
func (s Selection[T]) Complement() Selection[T] {
	out := NewSelection(s.dom)

	hasLowerInf := false
	hasUpperInf := false
	if t, ok := s.tree.Min(); ok && t.isLowerUnbounded() {
		hasLowerInf = true
	}
	if t, ok := s.tree.Max(); ok && t.isUpperUnbounded() {
		hasUpperInf = true
	}

	s.tree.Scan(func(item tine[T]) bool {
		if !item.hasPt {
			return true
		}
		out.tree.Set(tine[T]{
			point: item.point,
			hasPt: true,
			lb:    !item.lb,
			ub:    !item.ub,
			incl:  !item.incl,
		})
		return true
	})
	if !hasLowerInf {
		out.tree.Set(tine[T]{lb: true, ub: false, incl: false})
	}
	if !hasUpperInf {
		out.tree.Set(tine[T]{lb: false, ub: true, incl: false})
	}
	if s.dom.Finite() {
		var pieces []Interval[T]
		it := out.Iter()
		for it.HasNext() {
			iv, ok := it.Next()
			if !ok {
				break
			}
			pieces = append(pieces, iv)
		}
		return SelectionFromIntervals(s.dom, pieces...)
	}
	return out
}

// Closure returns s with every boundary point made inclusive. A tine that
// becomes lb && ub && incl as a result (two segments separated only by an
// excluded touching point) is removed, joining the segments either side of
// it into one run.
func (s Selection[T]) Closure() Selection[T] {
	out := s.clone()
	type op struct {
		old, new tine[T]
		del      bool
	}
	var ops []op
	out.tree.Scan(func(item tine[T]) bool {
		if item.hasPt && !item.incl {
			if item.lb && item.ub {
				ops = append(ops, op{old: item, del: true})
			} else {
				n := item
				n.incl = true
				ops = append(ops, op{old: item, new: n})
			}
		}
		return true
	})
	for _, o := range ops {
		if o.del {
			out.tree.Delete(o.old)
		} else {
			out.tree.Set(o.new)
		}
	}
	return out
}

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

import "github.com/skyschermer/interval-go/golibs/container/iterable"

// SelectionIter walks a Selection's tines two at a time, pairing a lower
// tine with the upper tine that closes it. A point tine yields a one-point
// interval on its own. The "saved" slot holds a just-consumed closing tine
// over to the following call when that tine also opens the next segment,
// as a ")(" tine does where two segments touch at an excluded point.
type SelectionIter[T any] struct {
	dom   Domain[T]
	items []tine[T]
	idx   int
	saved *tine[T]
}

var _ iterable.Iterator[Interval[int]] = (*SelectionIter[int])(nil)

// Iter returns an iterator over s's intervals in order.
func (s Selection[T]) Iter() *SelectionIter[T] {
	items := make([]tine[T], 0, s.tree.Len())
	s.tree.Scan(func(item tine[T]) bool {
		items = append(items, item)
		return true
	})
	return &SelectionIter[T]{dom: s.dom, items: items}
}

// HasNext reports whether another interval remains.
func (it *SelectionIter[T]) HasNext() bool {
	return it.saved != nil || it.idx < len(it.items)
}

// Next returns the next interval, or (zero, false) when exhausted.
func (it *SelectionIter[T]) Next() (Interval[T], bool) {
	var first tine[T]
	if it.saved != nil {
		first = *it.saved
		it.saved = nil
	} else if it.idx < len(it.items) {
		first = it.items[it.idx]
		it.idx++
	} else {
		var zero Interval[T]
		return zero, false
	}

	if first.isPoint() {
		return it.dom.Point(first.point), true
	}

	if it.idx >= len(it.items) {
		var zero Interval[T]
		return zero, false
	}
	second := it.items[it.idx]
	it.idx++
	if second.lb {
		s := second
		it.saved = &s
	}
	return it.dom.New(tineLowerBound(first), tineUpperBound(second)), true
}

// Reset rewinds the iterator to the beginning.
func (it *SelectionIter[T]) Reset() error {
	it.idx = 0
	it.saved = nil
	return nil
}

// Close releases the iterator's snapshot.
func (it *SelectionIter[T]) Close() error {
	it.items = nil
	it.saved = nil
	return nil
}

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
package iterable

type sliceIterator[V any] struct {
	s   []V
	idx int
}

// WrapSlice returns an Iterator[V] over s, in order. Selection's iterator
// (pkg/intervals) is built the same way: a snapshot slice plus a cursor.
func WrapSlice[V any](s []V) Iterator[V] {
	return &sliceIterator[V]{s: s}
}

func (si *sliceIterator[V]) HasNext() bool {
	return si.idx < len(si.s)
}

func (si *sliceIterator[V]) Next() (V, bool) {
	if si.idx < len(si.s) {
		i := si.idx
		si.idx++
		return si.s[i], true
	}
	return *new(V), false
}

func (si *sliceIterator[V]) Reset() error {
	si.idx = 0
	return nil
}

func (si *sliceIterator[V]) Close() error {
	si.s = nil
	si.idx = 0
	return nil
}

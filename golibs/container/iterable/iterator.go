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

// Iterator provides functions that allow moving over a sorted collection.
// It has three functions: HasNext(), Next() and Close() that can be used
// for iterating over the collection elements and releasing resources after
// usage.
type Iterator[V any] interface {
	// HasNext returns true if the collection has a next element for the
	// iterator. See Next().
	HasNext() bool

	// Next returns the next element and advances the iterator if it
	// exists. The second result reports whether a value was returned; it
	// may be false with the default value for V if nothing remains.
	//
	// An imparity may be observed between HasNext() and Next() if the
	// element the iterator pointed at was removed in between the two
	// calls: HasNext() will have returned true, but Next() returns the
	// zero value because the element is gone.
	Next() (V, bool)

	// Close releases resources held by the iterator. The iterator must
	// not be used after the call.
	Close() error
}

// EmptyIterator is an Iterator[V] over no elements.
type EmptyIterator[V any] struct{}

var _ Iterator[int] = (*EmptyIterator[int])(nil)

func (ei *EmptyIterator[V]) HasNext() bool    { return false }
func (ei *EmptyIterator[V]) Next() (V, bool)  { return *new(V), false }
func (ei *EmptyIterator[V]) Close() error     { return nil }

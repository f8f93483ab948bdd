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
/*
Package intervals implements interval and selection algebra over any
totally ordered domain T.

A Domain[T] supplies comparison and, optionally, predecessor/successor
functions. Interval[T] is a single contiguous range built against a Domain;
Selection[T] is a finite disjoint union of intervals, stored as an ordered
set of boundary markers ("tines") and kept canonical under union,
intersection, difference, and complement.

Bound[T], RawInterval[T], and the normalize/denormalize pair are the
domain-agnostic algebra underneath Interval[T]; most callers only need
Interval and Selection, built through a Domain's constructor methods:

	s := intervals.NewSelection(intervals.IntDomain)
	s.UnionInterval(intervals.IntDomain.Closed(1, 5))
	s.UnionInterval(intervals.IntDomain.UpFrom(10))
	fmt.Println(s) // [1, 5] ∪ [11, 9223372036854775807]
*/
package intervals

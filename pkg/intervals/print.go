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
	"fmt"
	"strings"
)

// String renders iv in standard interval notation. UpTo and To (and
// UpFrom/From) render with distinct brackets on the infinite side's
// neighbor — the reference implementation this package is grounded on
// printed "(-inf, x)" for both UpTo and To, losing the inclusivity of the
// finite endpoint; this version keeps it.
func (iv RawInterval[T]) String() string {
	switch iv.kind {
	case rawEmpty:
		return "∅"
	case rawPoint:
		return fmt.Sprintf("{%v}", iv.l)
	case rawOpen:
		return fmt.Sprintf("(%v, %v)", iv.l, iv.r)
	case rawLeftOpen:
		return fmt.Sprintf("(%v, %v]", iv.l, iv.r)
	case rawRightOpen:
		return fmt.Sprintf("[%v, %v)", iv.l, iv.r)
	case rawClosed:
		return fmt.Sprintf("[%v, %v]", iv.l, iv.r)
	case rawUpTo:
		return fmt.Sprintf("(-∞, %v)", iv.r)
	case rawTo:
		return fmt.Sprintf("(-∞, %v]", iv.r)
	case rawUpFrom:
		return fmt.Sprintf("(%v, ∞)", iv.l)
	case rawFrom:
		return fmt.Sprintf("[%v, ∞)", iv.l)
	case rawFull:
		return "(-∞, ∞)"
	}
	return "?"
}

// String joins s's intervals with " ∪ ", or "∅" if empty.
func (s Selection[T]) String() string {
	var b strings.Builder
	it := s.Iter()
	first := true
	for it.HasNext() {
		iv, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(" ∪ ")
		}
		first = false
		b.WriteString(iv.String())
	}
	if first {
		return "∅"
	}
	return b.String()
}

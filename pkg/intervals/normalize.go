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

// Normalize rewrites iv into the Closed/Point/Empty/Full subset when dom
// has a canonical atomic step, folding exclusive endpoints inward by one
// step. It is the identity when dom is not Finite(), and idempotent in
// either case.
func Normalize[T any](iv RawInterval[T], dom Domain[T]) RawInterval[T] {
	if !dom.Finite() {
		return iv
	}
	switch iv.kind {
	case rawEmpty, rawPoint, rawClosed:
		return iv
	case rawOpen:
		lo, lok := dom.nextUpper(iv.l)
		hi, hok := dom.nextLower(iv.r)
		if !lok || !hok {
			return EmptyRaw[T]()
		}
		return ClosedRaw(lo, hi, dom.Cmp)
	case rawLeftOpen:
		lo, ok := dom.nextUpper(iv.l)
		if !ok {
			return EmptyRaw[T]()
		}
		return ClosedRaw(lo, iv.r, dom.Cmp)
	case rawRightOpen:
		hi, ok := dom.nextLower(iv.r)
		if !ok {
			return EmptyRaw[T]()
		}
		return ClosedRaw(iv.l, hi, dom.Cmp)
	case rawUpTo:
		hi, ok := dom.nextLower(iv.r)
		if !ok {
			return EmptyRaw[T]()
		}
		return ClosedRaw(dom.Min, hi, dom.Cmp)
	case rawUpFrom:
		lo, ok := dom.nextUpper(iv.l)
		if !ok {
			return EmptyRaw[T]()
		}
		return ClosedRaw(lo, dom.Max, dom.Cmp)
	case rawTo:
		return ClosedRaw(dom.Min, iv.r, dom.Cmp)
	case rawFrom:
		return ClosedRaw(iv.l, dom.Max, dom.Cmp)
	case rawFull:
		return ClosedRaw(dom.Min, dom.Max, dom.Cmp)
	}
	return iv
}

// Denormalize is Normalize's inverse: it expands a Closed/Point/Full shape
// back out using exclusive bounds wherever dom's Pred/Succ allow it, or an
// unbounded half-line where they don't. It is the identity when dom is not
// Finite().
func Denormalize[T any](iv RawInterval[T], dom Domain[T]) RawInterval[T] {
	if !dom.Finite() {
		return iv
	}
	switch iv.kind {
	case rawEmpty:
		return iv
	case rawPoint:
		pred, pok := dom.nextLower(iv.l)
		succ, sok := dom.nextUpper(iv.l)
		switch {
		case pok && sok:
			return OpenRaw(pred, succ, dom.Cmp)
		case pok:
			return UpFromRaw(pred)
		case sok:
			return UpToRaw(succ)
		default:
			return FullRaw[T]()
		}
	case rawOpen, rawUpTo, rawUpFrom:
		return iv
	case rawLeftOpen:
		succ, ok := dom.nextUpper(iv.r)
		if ok {
			return OpenRaw(iv.l, succ, dom.Cmp)
		}
		return UpFromRaw(iv.l)
	case rawRightOpen:
		pred, ok := dom.nextLower(iv.l)
		if ok {
			return OpenRaw(pred, iv.r, dom.Cmp)
		}
		return UpToRaw(iv.r)
	case rawClosed:
		pred, pok := dom.nextLower(iv.l)
		succ, sok := dom.nextUpper(iv.r)
		switch {
		case pok && sok:
			return OpenRaw(pred, succ, dom.Cmp)
		case pok:
			return UpFromRaw(pred)
		case sok:
			return UpToRaw(succ)
		default:
			return FullRaw[T]()
		}
	case rawTo:
		succ, ok := dom.nextUpper(iv.r)
		if ok {
			return UpToRaw(succ)
		}
		return FullRaw[T]()
	case rawFrom:
		pred, ok := dom.nextLower(iv.l)
		if ok {
			return UpFromRaw(pred)
		}
		return FullRaw[T]()
	case rawFull:
		return iv
	}
	return iv
}

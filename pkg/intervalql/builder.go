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
package intervalql

import (
	"fmt"

	"github.com/skyschermer/interval-go/golibs/errors"
	"github.com/skyschermer/interval-go/pkg/intervals"
)

// Eval walks expr and returns the Selection[int] it denotes over dom. It
// never re-implements set algebra: every operator compiles directly to the
// matching intervals.Selection method.
func Eval(expr *Expression, dom intervals.Domain[int]) (intervals.Selection[int], error) {
	return evalExpression(expr, dom)
}

func evalExpression(e *Expression, dom intervals.Domain[int]) (intervals.Selection[int], error) {
	result, err := evalTerm(e.First, dom)
	if err != nil {
		return intervals.Selection[int]{}, err
	}
	for _, op := range e.Rest {
		rhs, err := evalTerm(op.Term, dom)
		if err != nil {
			return intervals.Selection[int]{}, err
		}
		result = result.Union(rhs)
	}
	return result, nil
}

func evalTerm(t *Term, dom intervals.Domain[int]) (intervals.Selection[int], error) {
	result, err := evalFactor(t.First, dom)
	if err != nil {
		return intervals.Selection[int]{}, err
	}
	for _, op := range t.Rest {
		rhs, err := evalFactor(op.Factor, dom)
		if err != nil {
			return intervals.Selection[int]{}, err
		}
		switch op.Op {
		case "^", "&":
			result = result.Intersect(rhs)
		case "\\":
			result = result.Minus(rhs)
		default:
			return intervals.Selection[int]{}, fmt.Errorf("unknown term operator %q: %w", op.Op, errors.ErrInvalid)
		}
	}
	return result, nil
}

func evalFactor(f *Factor, dom intervals.Domain[int]) (intervals.Selection[int], error) {
	switch {
	case f.Not != nil:
		inner, err := evalFactor(f.Not, dom)
		if err != nil {
			return intervals.Selection[int]{}, err
		}
		return inner.Complement(), nil
	case f.Paren != nil:
		return evalExpression(f.Paren, dom)
	case f.Literal != nil:
		iv, err := literalToInterval(f.Literal, dom)
		if err != nil {
			return intervals.Selection[int]{}, err
		}
		return intervals.SelectionFromIntervals(dom, iv), nil
	default:
		return intervals.Selection[int]{}, fmt.Errorf("empty factor in set expression: %w", errors.ErrInvalid)
	}
}

func literalToInterval(lit *Literal, dom intervals.Domain[int]) (intervals.Interval[int], error) {
	switch {
	case lit.Point != nil:
		return dom.Point(lit.Point.Value), nil
	case lit.Range != nil:
		return rangeToInterval(lit.Range, dom)
	default:
		return intervals.Interval[int]{}, fmt.Errorf("empty literal in set expression: %w", errors.ErrInvalid)
	}
}

func rangeToInterval(r *RangeLiteral, dom intervals.Domain[int]) (intervals.Interval[int], error) {
	leftIncl := r.Left == "["
	rightIncl := r.Right == "]"

	switch {
	case r.Lower.Unbounded && r.Upper.Unbounded:
		return dom.Full(), nil
	case r.Lower.Unbounded && !r.Upper.Unbounded:
		if r.Upper.Value == nil {
			return intervals.Interval[int]{}, fmt.Errorf("missing upper bound value: %w", errors.ErrInvalid)
		}
		if rightIncl {
			return dom.To(*r.Upper.Value), nil
		}
		return dom.UpTo(*r.Upper.Value), nil
	case !r.Lower.Unbounded && r.Upper.Unbounded:
		if r.Lower.Value == nil {
			return intervals.Interval[int]{}, fmt.Errorf("missing lower bound value: %w", errors.ErrInvalid)
		}
		if leftIncl {
			return dom.From(*r.Lower.Value), nil
		}
		return dom.UpFrom(*r.Lower.Value), nil
	default:
		if r.Lower.Value == nil || r.Upper.Value == nil {
			return intervals.Interval[int]{}, fmt.Errorf("missing bound value in bounded range: %w", errors.ErrInvalid)
		}
		l, u := *r.Lower.Value, *r.Upper.Value
		switch {
		case leftIncl && rightIncl:
			return dom.Closed(l, u), nil
		case leftIncl && !rightIncl:
			return dom.RightOpen(l, u), nil
		case !leftIncl && rightIncl:
			return dom.LeftOpen(l, u), nil
		default:
			return dom.Open(l, u), nil
		}
	}
}

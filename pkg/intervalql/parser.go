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
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/skyschermer/interval-go/golibs/errors"
)

var (
	selectionLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Inf", Pattern: `[-+]inf`},
		{Name: "DotDot", Pattern: `\.\.`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[\[\]\(\)\{\},!\^&\\]`},
		{Name: "whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Expression](
		participle.Lexer(selectionLexer),
		participle.Elide("whitespace"),
		participle.UseLookahead(2),
	)
)

// Parse builds the AST for a set expression, or an error wrapping
// errors.ErrInvalid if expr is malformed.
func Parse(expr string) (*Expression, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty set expression: %w", errors.ErrInvalid)
	}
	e, err := parser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse set expression %q: %w: %v", expr, errors.ErrInvalid, err)
	}
	return e, nil
}

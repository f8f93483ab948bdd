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

// Package intervalql parses a small set-expression language over integer
// intervals and evaluates it into an intervals.Selection[int]:
//
//	[1, 10] U {15} ^ !(5, 8)
//
// Union is "U" or "u", intersection is "^" or "&", difference is "\", and
// "!" complements the factor that follows it. Parentheses group
// sub-expressions. Literals are interval notation ("[a, b]", "(a, b)", and
// the mixed forms) or a singleton set ("{n}"); either endpoint may be ".."
// or a signed "-inf"/"+inf" token to denote an unbounded side.
package intervalql

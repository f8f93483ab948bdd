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
Package errors contains a small set of general-purpose error classes shared
by the packages built on top of the interval algebra (the query language and
the CLI). The algebra itself never returns an error - malformed endpoints
collapse to an empty interval instead - so these classes only surface above
that boundary, where user-supplied text can be genuinely invalid.
*/
package errors

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
package errors

import "errors"

// Sentinel error classes. Packages above the algebra boundary (intervalql,
// intervalctl) wrap one of these with fmt.Errorf("...: %w", ErrX) instead of
// inventing a bespoke error type per failure site.
var (
	// ErrInvalid reports malformed input: an expression that failed to
	// parse, an out-of-range bound, an unknown operator.
	ErrInvalid = errors.New("invalid")

	// ErrNotExist reports a reference to something that isn't there.
	ErrNotExist = errors.New("not found")

	// ErrExist reports a conflict with something already present.
	ErrExist = errors.New("already exists")

	// ErrInternal reports a failure that should be impossible given the
	// package's own invariants.
	ErrInternal = errors.New("internal error")

	// ErrClosed reports use of a resource after it was closed.
	ErrClosed = errors.New("closed")
)

// Is reports whether err wraps target anywhere in its chain. It is a thin
// alias over the standard library so callers only need to import this
// package when working with the sentinels above.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

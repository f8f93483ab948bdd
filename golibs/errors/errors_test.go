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
package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyschermer/interval-go/golibs/errors"
)

func TestIsWrapped(t *testing.T) {
	err := fmt.Errorf("bad expression %q: %w", "[1,", errors.ErrInvalid)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	assert.False(t, errors.Is(err, errors.ErrNotExist))
}

func TestSentinelsDistinct(t *testing.T) {
	assert.False(t, errors.Is(errors.ErrInvalid, errors.ErrNotExist))
	assert.False(t, errors.Is(errors.ErrExist, errors.ErrInternal))
	assert.False(t, errors.Is(errors.ErrClosed, errors.ErrInvalid))
}

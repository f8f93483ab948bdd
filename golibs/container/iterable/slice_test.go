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
package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyschermer/interval-go/golibs/container/iterable"
)

func TestWrapSlice_Empty(t *testing.T) {
	it := iterable.WrapSlice[string](nil)
	assert.False(t, it.HasNext())
	v, ok := it.Next()
	assert.Equal(t, "", v)
	assert.False(t, ok)
}

func TestWrapSlice(t *testing.T) {
	s := []string{"a", "b", "c"}
	it := iterable.WrapSlice(s)
	for _, want := range s {
		assert.True(t, it.HasNext())
		got, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.False(t, it.HasNext())
	assert.NoError(t, it.Close())
}

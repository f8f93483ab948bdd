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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentityWhenNotFinite(t *testing.T) {
	iv := OpenRaw(0.0, 10.0, fcmp)
	got := Normalize(iv, NewDomain(fcmp))
	assert.Equal(t, iv, got)
}

func TestNormalizeInt(t *testing.T) {
	got := Normalize(OpenRaw(0, 15, IntDomain.Cmp), IntDomain)
	assert.Equal(t, "[1, 14]", got.String())

	got = Normalize(LeftOpenRaw(0, 15, IntDomain.Cmp), IntDomain)
	assert.Equal(t, "[1, 15]", got.String())

	got = Normalize(RightOpenRaw(0, 15, IntDomain.Cmp), IntDomain)
	assert.Equal(t, "[0, 14]", got.String())

	got = Normalize(UpToRaw(5), IntDomain)
	assert.Equal(t, "[-9223372036854775808, 4]", got.String())

	got = Normalize(UpFromRaw(5), IntDomain)
	assert.Equal(t, "[6, 9223372036854775807]", got.String())

	got = Normalize(ToRaw(5), IntDomain)
	assert.Equal(t, "[-9223372036854775808, 5]", got.String())

	got = Normalize(FromRaw(5), IntDomain)
	assert.Equal(t, "[5, 9223372036854775807]", got.String())
}

func TestNormalizeOpenCollapsesToEmptyAtAdjacentInts(t *testing.T) {
	got := Normalize(OpenRaw(4, 5, IntDomain.Cmp), IntDomain)
	assert.True(t, got.IsEmpty())

	got = Normalize(OpenRaw(4, 6, IntDomain.Cmp), IntDomain)
	assert.Equal(t, "{5}", got.String())
}

func TestDenormalizeIsInverse(t *testing.T) {
	orig := OpenRaw(0, 15, IntDomain.Cmp)
	norm := Normalize(orig, IntDomain)
	back := Denormalize(norm, IntDomain)
	assert.Equal(t, orig, back)

	pt := PointRaw(5)
	assert.Equal(t, "(4, 6)", Denormalize(pt, IntDomain).String())
}

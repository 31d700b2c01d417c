// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cxxnested/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]

	p1 := a.New(5)
	first := a.Deref(p1)
	assert.Equal(5, *first)
	assert.Equal(arena.Pointer[int](1), p1)

	for i := range 16 {
		a.New(i + 6)
	}
	assert.Equal(17, a.Len())
	assert.Equal(20, *a.Deref(16))
	assert.Equal(21, *a.Deref(17))
	assert.Same(first, a.Deref(p1))

	for i := range 32 {
		a.New(i + 22)
	}
	assert.Equal(49, a.Len())
	assert.Equal(52, *a.Deref(48))
	assert.Equal(53, *a.Deref(49))
	assert.Same(first, a.Deref(p1))
}

func TestBounds(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	p := a.New("x")

	assert.True(t, arena.Pointer[string](0).Nil())
	assert.False(t, p.Nil())
	assert.Panics(t, func() { a.Deref(0) })
	assert.Panics(t, func() { a.Deref(2) })

	a.Reset()
	assert.Zero(t, a.Len())
	assert.Panics(t, func() { a.Deref(p) })
}

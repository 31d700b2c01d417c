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

// Package arena provides a stable-address allocator addressed by compressed
// pointers.
//
// A [Pointer] is four bytes wide and is only meaningful relative to the
// [Arena] that produced it. Values are never moved once allocated, so a *T
// obtained from [Arena.Deref] stays valid until the arena is [Arena.Reset].
package arena

import (
	"fmt"
	"math/bits"
)

// firstShift is the log2 of the length of the first block of an arena.
const (
	firstShift = 4
	firstLen   = 1 << firstShift
)

// Pointer is a compressed pointer into an [Arena][T].
//
// The value of a pointer is one plus the number of values allocated before
// it; the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// Arena is a growable slice of T that never moves its contents.
//
// Storage is a list of blocks, each twice as long as the one before it, which
// keeps lookup O(1) while avoiding the copy an ordinary append would do.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants: cap(blocks[n]) == firstLen << n, and every block except the
	// last is full.
	blocks [][]T
}

// New allocates value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.blocks == nil {
		a.blocks = [][]T{make([]T, 0, firstLen)}
	}

	last := &a.blocks[len(a.blocks)-1]
	if len(*last) == cap(*last) {
		a.blocks = append(a.blocks, make([]T, 0, 2*cap(*last)))
		last = &a.blocks[len(a.blocks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref looks up p in this arena.
//
// p must have been returned by this arena since its last reset; otherwise
// this either returns an arbitrary value or panics. Panics if p is nil.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	block, idx := a.locate(int(p) - 1)
	return &a.blocks[block][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.blocks) == 0 {
		return 0
	}
	n := len(a.blocks) - 1
	return blocksLen(n) + len(a.blocks[n])
}

// Reset discards every value in the arena.
//
// Pointers handed out before the reset must not be dereferenced afterwards.
func (a *Arena[T]) Reset() {
	a.blocks = nil
}

// String implements [fmt.Stringer].
func (a *Arena[T]) String() string {
	return fmt.Sprintf("arena.Arena[%T]{len: %d}", *new(T), a.Len())
}

// blocksLen returns the total capacity of the first n blocks.
//
// Since block sizes are 2^k, 2^(k+1), ..., the sum of the first n is
// 2^(k+n) - 2^k.
func blocksLen(n int) int {
	return (firstLen << n) - firstLen
}

// locate converts a zero-based index into a block number and an offset
// within that block, checking bounds.
func (a *Arena[T]) locate(idx int) (block, offset int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Block n starts at index (2^n - 1) << firstShift. Adding firstLen turns
	// that into 2^n << firstShift, whose bit length is n + firstShift + 1.
	block = bits.Len(uint(idx)+firstLen) - firstShift - 1
	return block, idx - blocksLen(block)
}

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

package ast

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/tidwall/btree"

	"github.com/bufbuild/cxxnested/internal/arena"
	"github.com/bufbuild/cxxnested/internal/intern"
)

var (
	// ErrClosed is returned when resolving a handle into a closed unit.
	ErrClosed = errors.New("ast: unit is closed")
	// ErrStale is returned when resolving a handle created before the last
	// [Unit.Reset].
	ErrStale = errors.New("ast: stale handle")
	// ErrBadHandle is returned when a handle does not name a node of the
	// requested kind.
	ErrBadHandle = errors.New("ast: bad handle")
)

var nextUnitID atomic.Uint64

// Unit is a compilation unit: the owner of all AST storage for one parsed
// translation of source text.
//
// A Unit is built by a single goroutine; after that, it may be read
// concurrently.
type Unit struct {
	name   string
	id     uint64
	gen    uint32
	closed bool

	idents     intern.Table
	decls      arena.Arena[rawDecl]
	specifiers arena.Arena[rawSpecifier]
	types      arena.Arena[rawType]
	templates  arena.Arena[rawTemplateName]

	// Every named declaration, keyed by its qualified name.
	index btree.Map[string, arena.Pointer[rawDecl]]
}

// NewUnit creates a new, empty unit.
func NewUnit(name string) *Unit {
	return &Unit{
		name: name,
		id:   nextUnitID.Add(1),
		gen:  1,
	}
}

// Name returns the name this unit was created with, usually a file path.
func (u *Unit) Name() string {
	return u.name
}

// ID returns a number that identifies this unit among all units created by
// this process. It is never zero.
func (u *Unit) ID() uint64 {
	return u.id
}

// Generation returns how many times this unit has been reset, plus one.
func (u *Unit) Generation() uint32 {
	return u.gen
}

// Closed returns whether [Unit.Close] has been called.
func (u *Unit) Closed() bool {
	return u.closed
}

// Close tears down this unit. Every view into it becomes invalid.
func (u *Unit) Close() {
	u.clear()
	u.closed = true
}

// Reset discards everything in this unit so that it can be rebuilt. Views
// created before the reset become invalid.
func (u *Unit) Reset() {
	if u.closed {
		panic(fmt.Errorf("ast: reset of closed %v", u))
	}
	u.clear()
	u.gen++
}

func (u *Unit) clear() {
	u.idents.Reset()
	u.decls.Reset()
	u.specifiers.Reset()
	u.types.Reset()
	u.templates.Reset()
	u.index.Clear()
}

// String implements [fmt.Stringer].
func (u *Unit) String() string {
	if u == nil {
		return "ast.Unit(<nil>)"
	}
	return fmt.Sprintf("ast.Unit(%q#%d)", u.name, u.id)
}

// validate checks that a view created in generation gen may still be used.
func (u *Unit) validate(gen uint32) error {
	switch {
	case u.closed:
		return fmt.Errorf("%w: %v", ErrClosed, u)
	case gen != u.gen:
		return fmt.Errorf("%w: %v generation %d, now %d", ErrStale, u, gen, u.gen)
	}
	return nil
}

// check is like validate, but panics.
func (u *Unit) check(gen uint32) {
	if err := u.validate(gen); err != nil {
		panic(err)
	}
}

// mustOwn panics if w is a non-zero view into a different unit.
func (u *Unit) mustOwn(w withUnit, what string) {
	if w.unit != nil && w.unit != u {
		panic(fmt.Errorf("ast: %s from %v used in %v", what, w.unit, u))
	}
	if w.unit != nil {
		u.check(w.gen)
	}
}

func (u *Unit) wrap() withUnit {
	u.check(u.gen)
	return withUnit{unit: u, gen: u.gen}
}

// withUnit is embedded in every view into a Unit.
type withUnit struct {
	unit *Unit
	gen  uint32
}

// Unit returns the unit this view belongs to, or nil for a zero view.
func (w withUnit) Unit() *Unit {
	return w.unit
}

// IsZero returns whether this is the zero view.
func (w withUnit) IsZero() bool {
	return w.unit == nil
}

// live returns this view's unit after checking that the view is still valid.
func (w withUnit) live() *Unit {
	w.unit.check(w.gen)
	return w.unit
}

// Handle is the unit-free identity of a view: the slot it names and the
// generation of the unit it was created in.
//
// A Handle is turned back into a view with one of the Unit methods that
// accept it, such as [Unit.Specifier]. The zero Handle is nil.
type Handle struct {
	gen, ptr uint32
}

// HandleFromUint64 reverses [Handle.Uint64].
func HandleFromUint64(v uint64) Handle {
	return Handle{gen: uint32(v >> 32), ptr: uint32(v)}
}

// Nil returns whether this is the nil handle.
func (h Handle) Nil() bool {
	return h.ptr == 0
}

// Uint64 packs this handle into a single machine word.
func (h Handle) Uint64() uint64 {
	if h.Nil() {
		return 0
	}
	return uint64(h.gen)<<32 | uint64(h.ptr)
}

// String implements [fmt.Stringer].
func (h Handle) String() string {
	if h.Nil() {
		return "ast.Handle(<nil>)"
	}
	return fmt.Sprintf("ast.Handle(%d@%d)", h.ptr, h.gen)
}

func newHandle[T any](w withUnit, p arena.Pointer[T]) Handle {
	if w.IsZero() || p.Nil() {
		return Handle{}
	}
	return Handle{gen: w.gen, ptr: uint32(p)}
}

// lookup checks h against this unit and a's length and converts it into a
// pointer. A nil handle produces a nil pointer.
func lookup[T any](u *Unit, a *arena.Arena[T], h Handle) (arena.Pointer[T], error) {
	if h.Nil() {
		return 0, nil
	}
	if err := u.validate(h.gen); err != nil {
		return 0, err
	}
	if int(h.ptr) > a.Len() {
		return 0, fmt.Errorf("%w: %v out of range in %v", ErrBadHandle, h, u)
	}
	return arena.Pointer[T](h.ptr), nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

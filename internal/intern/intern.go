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

// Package intern provides the identifier table of a compilation unit.
//
// Every name that appears in a unit is stored once; the rest of the unit
// refers to it by [ID], which compares in a single instruction.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned identifier in a particular [Table].
//
// The zero value always corresponds to the empty string.
//
// # Representation
//
// If the sign bit is clear, an ID is a one-based index into the strings stored
// by the [Table] that created it. Otherwise, it holds up to five characters of
// the char6 alphabet in-line, which covers most short names in C++ sources
// (i, T, std, size_t, ...) without touching the table at all.
type ID int32

// String implements [fmt.Stringer].
//
// This does not recover the interned text; use [Table.Value] for that.
func (id ID) String() string {
	switch {
	case id == 0:
		return `intern.ID("")`
	case id < 0:
		return fmt.Sprintf("intern.ID(%q)", decodeChar6(id))
	default:
		return fmt.Sprintf("intern.ID(%d)", int(id))
	}
}

// GoString implements [fmt.GoStringer].
func (id ID) GoString() string {
	return id.String()
}

// Inlined returns whether this ID carries its text in-line.
func (id ID) Inlined() bool {
	return id < 0
}

// Table is an interning table.
//
// Interning happens while a unit is being built, and lookups may happen
// from any number of goroutines afterwards, so the table is guarded by a
// reader/writer lock.
//
// The zero value of Table is empty and ready to use.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns s into this table.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Intern(s string) ID {
	if id, ok := t.Query(s); ok {
		return id
	}
	return t.internSlow(s)
}

// Query returns the ID for s if s has already been interned.
//
// Strings short enough to be inlined are always considered interned.
func (t *Table) Query(s string) (ID, bool) {
	if id, ok := encodeChar6(s); ok {
		return id, true
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	return id, ok
}

func (t *Table) internSlow(s string) ID {
	// s may alias a much larger source buffer.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have interned s between Query and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)
	id := ID(len(t.table))
	if id < 0 {
		panic(fmt.Sprintf("intern: %d interning IDs exhausted", len(t.table)))
	}

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id
	return id
}

// Value converts id back into its text.
//
// If id was created by a different Table, the result is unspecified,
// including a potential panic.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Value(id ID) string {
	switch {
	case id == 0:
		return ""
	case id < 0:
		return decodeChar6(id)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Len returns the number of strings stored out-of-line.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

// Reset empties the table. IDs from before the reset become meaningless,
// except for inlined ones.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.index = nil
	t.table = nil
}

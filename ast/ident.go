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
	"fmt"

	"github.com/bufbuild/cxxnested/internal/intern"
)

// Ident is an interned identifier of a [Unit].
//
// Two Idents from the same unit are equal exactly when their text is.
type Ident struct {
	withUnit
	id intern.ID
}

// Ident interns name and returns it. Panics if name is empty.
func (u *Unit) Ident(name string) Ident {
	if name == "" {
		panic(fmt.Errorf("ast: empty identifier in %v", u))
	}
	w := u.wrap()
	return Ident{w, u.idents.Intern(name)}
}

func (u *Unit) identOf(gen uint32, id intern.ID) Ident {
	if id == 0 {
		return Ident{}
	}
	return Ident{withUnit{u, gen}, id}
}

// Text returns the identifier's text. The zero Ident has empty text.
func (i Ident) Text() string {
	if i.IsZero() {
		return ""
	}
	return i.live().idents.Value(i.id)
}

// String implements [fmt.Stringer].
func (i Ident) String() string {
	if i.IsZero() {
		return "ast.Ident(<nil>)"
	}
	return fmt.Sprintf("ast.Ident(%q)", i.Text())
}

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
	"iter"
	"strings"

	"github.com/bufbuild/cxxnested/internal/arena"
	"github.com/bufbuild/cxxnested/internal/intern"
)

// Decl is a named declaration that a qualifier can refer to: a namespace, a
// namespace alias or a class.
type Decl struct {
	withUnit
	ptr arena.Pointer[rawDecl]
}

type rawDecl struct {
	kind   DeclKind
	name   intern.ID
	parent arena.Pointer[rawDecl]
	target arena.Pointer[rawDecl] // For aliases.
}

// NewNamespace declares a namespace nested in parent, which may be zero for
// the global namespace.
func (u *Unit) NewNamespace(parent Decl, name string) Decl {
	return u.newDecl(DeclKindNamespace, parent, name, Decl{})
}

// NewNamespaceAlias declares name as an alias of the namespace target.
func (u *Unit) NewNamespaceAlias(parent Decl, name string, target Decl) Decl {
	if target.Kind() != DeclKindNamespace {
		panic(fmt.Errorf("ast: namespace alias %q must target a namespace, got %v", name, target.Kind()))
	}
	return u.newDecl(DeclKindNamespaceAlias, parent, name, target)
}

// NewClass declares a class nested in parent.
func (u *Unit) NewClass(parent Decl, name string) Decl {
	return u.newDecl(DeclKindClass, parent, name, Decl{})
}

func (u *Unit) newDecl(kind DeclKind, parent Decl, name string, target Decl) Decl {
	u.mustOwn(parent.withUnit, "parent declaration")
	u.mustOwn(target.withUnit, "alias target")

	ident := u.Ident(name)
	qualified := name
	if !parent.IsZero() {
		qualified = parent.QualifiedName() + "::" + name
	}
	if _, dup := u.index.Get(qualified); dup {
		panic(fmt.Errorf("ast: redeclaration of %s in %v", qualified, u))
	}

	decl := Decl{u.wrap(), u.decls.New(rawDecl{
		kind:   kind,
		name:   ident.id,
		parent: parent.ptr,
		target: target.ptr,
	})}
	u.index.Set(qualified, decl.ptr)
	return decl
}

// Lookup finds the declaration with the given qualified name, such as
// "std::filesystem". Returns the zero Decl if there is none.
func (u *Unit) Lookup(qualified string) Decl {
	ptr, ok := u.index.Get(strings.TrimPrefix(qualified, "::"))
	if !ok {
		return Decl{}
	}
	return Decl{u.wrap(), ptr}
}

// Scope yields every declaration nested, at any depth, within the one
// named by prefix, in lexicographic order of qualified name. An empty prefix
// yields every declaration.
func (u *Unit) Scope(prefix string) iter.Seq[Decl] {
	prefix = strings.TrimPrefix(prefix, "::")
	if prefix != "" {
		prefix += "::"
	}
	return func(yield func(Decl) bool) {
		w := u.wrap()
		it := u.index.Iter()
		for more := it.Seek(prefix); more; more = it.Next() {
			if !strings.HasPrefix(it.Key(), prefix) {
				return
			}
			if !yield(Decl{w, it.Value()}) {
				return
			}
		}
	}
}

func (d Decl) raw() *rawDecl {
	return d.live().decls.Deref(d.ptr)
}

// Kind returns what this declaration declares.
func (d Decl) Kind() DeclKind {
	if d.IsZero() {
		return DeclKindNone
	}
	return d.raw().kind
}

// Name returns this declaration's unqualified name.
func (d Decl) Name() Ident {
	if d.IsZero() {
		return Ident{}
	}
	return d.unit.identOf(d.gen, d.raw().name)
}

// Parent returns the declaration this one is nested in, or zero if it is at
// global scope.
func (d Decl) Parent() Decl {
	if d.IsZero() {
		return Decl{}
	}
	ptr := d.raw().parent
	if ptr.Nil() {
		return Decl{}
	}
	return Decl{d.withUnit, ptr}
}

// Target returns the namespace an alias refers to. Returns zero for
// declarations that are not aliases.
func (d Decl) Target() Decl {
	if d.Kind() != DeclKindNamespaceAlias {
		return Decl{}
	}
	return Decl{d.withUnit, d.raw().target}
}

// QualifiedName returns this declaration's fully-qualified name, without a
// leading ::.
func (d Decl) QualifiedName() string {
	if d.IsZero() {
		return ""
	}
	var parts []string
	for ; !d.IsZero(); d = d.Parent() {
		parts = append(parts, d.Name().Text())
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteString("::")
		}
	}
	return b.String()
}

// String implements [fmt.Stringer].
func (d Decl) String() string {
	if d.IsZero() {
		return "ast.Decl(<nil>)"
	}
	return fmt.Sprintf("ast.Decl(%v %s)", d.Kind(), d.QualifiedName())
}

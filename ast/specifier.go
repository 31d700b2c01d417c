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
	"strings"

	"github.com/bufbuild/cxxnested/internal/arena"
	"github.com/bufbuild/cxxnested/internal/intern"
)

// Specifier is one link of a qualifier chain: the `B::` in `A::B::C`.
//
// Each link points at its prefix, the link before it, so a chain is walked
// from the innermost link outward. Chains are acyclic: a link can only be
// built from a prefix that already exists.
//
// The zero Specifier is the absent prefix.
type Specifier struct {
	withUnit
	ptr arena.Pointer[rawSpecifier]
}

type rawSpecifier struct {
	kind   SpecifierKind
	prefix arena.Pointer[rawSpecifier]
	name   intern.ID              // Identifier.
	decl   arena.Pointer[rawDecl] // Namespace, NamespaceAlias and Super.
	ty     Type                   // TypeSpec, TypeSpecWithTemplate and Decltype.
}

func specifierOf(w withUnit, ptr arena.Pointer[rawSpecifier]) Specifier {
	if ptr.Nil() {
		return Specifier{}
	}
	return Specifier{w, ptr}
}

// Specifier converts a [Handle] obtained from [Specifier.Handle] back into a
// Specifier. A nil handle produces the zero Specifier.
//
// Panics if h is not a valid handle into this unit.
func (u *Unit) Specifier(h Handle) Specifier {
	return must(u.LookupSpecifier(h))
}

// LookupSpecifier is like [Unit.Specifier], but returns an error instead of
// panicking.
func (u *Unit) LookupSpecifier(h Handle) (Specifier, error) {
	ptr, err := lookup(u, &u.specifiers, h)
	if err != nil {
		return Specifier{}, err
	}
	return specifierOf(withUnit{u, h.gen}, ptr), nil
}

// NewGlobal returns a new `::` link. It never has a prefix.
func (u *Unit) NewGlobal() Specifier {
	return u.newSpecifier(Specifier{}, rawSpecifier{kind: SpecifierKindGlobal})
}

// NewSuper returns a new `__super::` link naming the bases of class.
func (u *Unit) NewSuper(class Decl) Specifier {
	u.mustOwn(class.withUnit, "class")
	if class.Kind() != DeclKindClass {
		panic(fmt.Errorf("ast: __super of non-class %v", class))
	}
	return u.newSpecifier(Specifier{}, rawSpecifier{kind: SpecifierKindSuper, decl: class.ptr})
}

// NewIdentifierSpecifier returns a new link naming an identifier whose
// meaning depends on prefix.
func (u *Unit) NewIdentifierSpecifier(prefix Specifier, name string) Specifier {
	return u.newSpecifier(prefix, rawSpecifier{
		kind: SpecifierKindIdentifier,
		name: u.Ident(name).id,
	})
}

// NewNamespaceSpecifier returns a new link naming ns, which must be a
// namespace or a namespace alias.
func (u *Unit) NewNamespaceSpecifier(prefix Specifier, ns Decl) Specifier {
	u.mustOwn(ns.withUnit, "namespace")

	var kind SpecifierKind
	switch ns.Kind() {
	case DeclKindNamespace:
		kind = SpecifierKindNamespace
	case DeclKindNamespaceAlias:
		kind = SpecifierKindNamespaceAlias
	default:
		panic(fmt.Errorf("ast: namespace specifier for %v", ns))
	}
	return u.newSpecifier(prefix, rawSpecifier{kind: kind, decl: ns.ptr})
}

// NewTypeSpecifier returns a new link naming ty. If template is set, the
// link is spelled with the template keyword.
func (u *Unit) NewTypeSpecifier(prefix Specifier, ty Type, template bool) Specifier {
	kind := SpecifierKindTypeSpec
	if template {
		kind = SpecifierKindTypeSpecWithTemplate
	}
	return u.newSpecifier(prefix, rawSpecifier{kind: kind, ty: u.ownType(ty)})
}

// NewDecltypeSpecifier returns a new `decltype(...)::` link whose operand
// has type ty. It never has a prefix.
func (u *Unit) NewDecltypeSpecifier(ty Type) Specifier {
	return u.newSpecifier(Specifier{}, rawSpecifier{kind: SpecifierKindDecltype, ty: u.ownType(ty)})
}

func (u *Unit) ownType(ty Type) Type {
	if ty.IsZero() {
		panic(fmt.Errorf("ast: zero type in specifier of %v", u))
	}
	u.mustOwn(ty.withUnit, "type")
	return ty
}

func (u *Unit) newSpecifier(prefix Specifier, raw rawSpecifier) Specifier {
	u.mustOwn(prefix.withUnit, "prefix")
	raw.prefix = prefix.ptr
	w := u.wrap()
	return Specifier{w, u.specifiers.New(raw)}
}

func (s Specifier) raw() *rawSpecifier {
	return s.live().specifiers.Deref(s.ptr)
}

// Handle returns the unit-free identity of this link.
func (s Specifier) Handle() Handle {
	return newHandle(s.withUnit, s.ptr)
}

// Kind returns this link's discriminator.
func (s Specifier) Kind() SpecifierKind {
	if s.IsZero() {
		return SpecifierKindNone
	}
	return s.raw().kind
}

// Prefix returns the link before this one, or zero if this is the first.
func (s Specifier) Prefix() Specifier {
	if s.IsZero() {
		return Specifier{}
	}
	return specifierOf(s.withUnit, s.raw().prefix)
}

// AsIdentifier returns the identifier of an identifier link, or zero.
func (s Specifier) AsIdentifier() Ident {
	if s.Kind() != SpecifierKindIdentifier {
		return Ident{}
	}
	return s.unit.identOf(s.gen, s.raw().name)
}

// AsType returns the type named by a type or decltype link, or zero.
func (s Specifier) AsType() Type {
	switch s.Kind() {
	case SpecifierKindTypeSpec, SpecifierKindTypeSpecWithTemplate, SpecifierKindDecltype:
		return s.raw().ty
	default:
		return Type{}
	}
}

// AsDecl returns the declaration named by a namespace, namespace alias or
// __super link, or zero.
func (s Specifier) AsDecl() Decl {
	switch s.Kind() {
	case SpecifierKindNamespace, SpecifierKindNamespaceAlias, SpecifierKindSuper:
		return Decl{s.withUnit, s.raw().decl}
	default:
		return Decl{}
	}
}

// Component spells just this link, without its prefix and without the
// trailing ::. The global link spells as the empty string.
func (s Specifier) Component() string {
	switch s.Kind() {
	case SpecifierKindIdentifier:
		return s.AsIdentifier().Text()
	case SpecifierKindNamespace, SpecifierKindNamespaceAlias:
		return s.AsDecl().Name().Text()
	case SpecifierKindTypeSpec:
		return s.AsType().Name()
	case SpecifierKindTypeSpecWithTemplate:
		return "template " + s.AsType().Name()
	case SpecifierKindSuper:
		return "__super"
	case SpecifierKindDecltype:
		return "decltype(" + s.AsType().String() + ")"
	default:
		return ""
	}
}

// String implements [fmt.Stringer], spelling the whole chain up to and
// including this link, such as `::std::vector<int>::`.
func (s Specifier) String() string {
	var parts []string
	for ; !s.IsZero(); s = s.Prefix() {
		parts = append(parts, s.Component())
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		b.WriteString("::")
	}
	return b.String()
}

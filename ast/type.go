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

// Quals is a set of cv-qualifiers.
type Quals uint8

const (
	QualConst Quals = 1 << iota
	QualVolatile
	QualRestrict
)

// String implements [fmt.Stringer]. Each qualifier is followed by a space.
func (q Quals) String() string {
	var b strings.Builder
	if q&QualConst != 0 {
		b.WriteString("const ")
	}
	if q&QualVolatile != 0 {
		b.WriteString("volatile ")
	}
	if q&QualRestrict != 0 {
		b.WriteString("restrict ")
	}
	return b.String()
}

// Type is a possibly-qualified type of a [Unit].
//
// The zero Type means "no type". Types compare equal with == when they name
// the same node with the same qualifiers.
type Type struct {
	withUnit
	ptr   arena.Pointer[rawType]
	quals Quals
}

type rawType struct {
	kind      TypeKind
	name      intern.ID              // Builtins, parameters and dependent names.
	decl      arena.Pointer[rawDecl] // Records and specializations.
	qualifier arena.Pointer[rawSpecifier]
	args      []Type
}

// QualType is the unit-free identity of a [Type].
type QualType struct {
	Handle Handle
	Quals  Quals
}

// NewType converts a [QualType] back into a type of this unit.
//
// Panics if q does not describe a type of this unit's current generation.
func (u *Unit) NewType(q QualType) Type {
	ptr := must(lookup(u, &u.types, q.Handle))
	if ptr.Nil() {
		return Type{}
	}
	return Type{withUnit{u, q.Handle.gen}, ptr, q.Quals}
}

// NewBuiltin returns a builtin type, such as int.
func (u *Unit) NewBuiltin(name string) Type {
	return u.newType(rawType{kind: TypeKindBuiltin, name: u.Ident(name).id})
}

// NewRecordType returns the type declared by class.
func (u *Unit) NewRecordType(class Decl) Type {
	u.mustOwn(class.withUnit, "class")
	if class.Kind() != DeclKindClass {
		panic(fmt.Errorf("ast: record type of non-class %v", class))
	}
	return u.newType(rawType{kind: TypeKindRecord, decl: class.ptr})
}

// NewTemplateParam returns a template type parameter.
func (u *Unit) NewTemplateParam(name string) Type {
	return u.newType(rawType{kind: TypeKindTemplateParam, name: u.Ident(name).id})
}

// NewTemplateSpecialization returns the specialization of the class template
// declared by class with the given arguments.
func (u *Unit) NewTemplateSpecialization(class Decl, args ...Type) Type {
	u.mustOwn(class.withUnit, "class template")
	if class.Kind() != DeclKindClass {
		panic(fmt.Errorf("ast: specialization of non-class %v", class))
	}
	u.mustOwnAll(args)
	return u.newType(rawType{
		kind: TypeKindTemplateSpecialization,
		decl: class.ptr,
		args: args,
	})
}

func (u *Unit) newType(raw rawType) Type {
	w := u.wrap()
	return Type{w, u.types.New(raw), 0}
}

func (u *Unit) mustOwnAll(types []Type) {
	for _, t := range types {
		if t.IsZero() {
			panic(fmt.Errorf("ast: zero template argument in %v", u))
		}
		u.mustOwn(t.withUnit, "template argument")
	}
}

func (t Type) raw() *rawType {
	return t.live().types.Deref(t.ptr)
}

// Kind returns the shape of this type.
func (t Type) Kind() TypeKind {
	if t.IsZero() {
		return TypeKindNone
	}
	return t.raw().kind
}

// Quals returns this type's cv-qualifiers.
func (t Type) Quals() Quals {
	return t.quals
}

// WithQuals returns this type with its qualifiers replaced by q.
func (t Type) WithQuals(q Quals) Type {
	if t.IsZero() {
		return t
	}
	t.quals = q
	return t
}

// QualType returns the unit-free identity of this type.
func (t Type) QualType() QualType {
	return QualType{newHandle(t.withUnit, t.ptr), t.quals}
}

// Decl returns the class of a record type or template specialization.
func (t Type) Decl() Decl {
	switch t.Kind() {
	case TypeKindRecord, TypeKindTemplateSpecialization:
		return Decl{t.withUnit, t.raw().decl}
	default:
		return Decl{}
	}
}

// Args returns the template arguments of a specialization.
func (t Type) Args() []Type {
	switch t.Kind() {
	case TypeKindTemplateSpecialization, TypeKindDependentTemplateSpecialization:
		return t.raw().args
	default:
		return nil
	}
}

// Name spells this type without qualifiers or cv-qualifiers, the way it
// appears as one link of a qualifier chain: `vector<int>` rather than
// `const std::vector<int>`.
func (t Type) Name() string {
	if t.IsZero() {
		return ""
	}
	raw := t.raw()
	var b strings.Builder
	switch raw.kind {
	case TypeKindBuiltin, TypeKindTemplateParam, TypeKindDependentName:
		b.WriteString(t.unit.idents.Value(raw.name))
	case TypeKindRecord:
		b.WriteString(t.Decl().Name().Text())
	case TypeKindTemplateSpecialization:
		b.WriteString(t.Decl().Name().Text())
		writeArgs(&b, raw.args)
	case TypeKindDependentTemplateSpecialization:
		b.WriteString(t.unit.idents.Value(raw.name))
		writeArgs(&b, raw.args)
	}
	return b.String()
}

// String implements [fmt.Stringer], spelling the type as it would appear in
// source.
func (t Type) String() string {
	if t.IsZero() {
		return ""
	}
	raw := t.raw()
	var b strings.Builder
	b.WriteString(t.quals.String())
	switch raw.kind {
	case TypeKindDependentName:
		b.WriteString("typename ")
		b.WriteString(t.qualifier().String())
	case TypeKindDependentTemplateSpecialization:
		b.WriteString("typename ")
		b.WriteString(t.qualifier().String())
		b.WriteString("template ")
	case TypeKindRecord, TypeKindTemplateSpecialization:
		if parent := t.Decl().Parent(); !parent.IsZero() {
			b.WriteString(parent.QualifiedName())
			b.WriteString("::")
		}
	}
	b.WriteString(t.Name())
	return b.String()
}

func (t Type) qualifier() Specifier {
	return specifierOf(t.withUnit, t.raw().qualifier)
}

func writeArgs(b *strings.Builder, args []Type) {
	b.WriteByte('<')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte('>')
}

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

	"github.com/bufbuild/cxxnested/internal/arena"
	"github.com/bufbuild/cxxnested/internal/intern"
)

// DependentNameType is a type named by a qualifier that cannot be resolved
// until instantiation, as in `typename T::type`.
//
// It is not a link of its qualifier's chain; it is anchored to the chain
// through [DependentNameType.Qualifier], which is never zero.
type DependentNameType struct {
	withUnit
	ptr arena.Pointer[rawType]
}

// DependentTemplateSpecializationType is a dependent template
// specialization, as in `typename T::template apply<U>`.
type DependentTemplateSpecializationType struct {
	withUnit
	ptr arena.Pointer[rawType]
}

// DependentTemplateName is a template name whose qualifier is dependent, as
// in `T::template apply`. Unlike the other anchors, it is not a type.
type DependentTemplateName struct {
	withUnit
	ptr arena.Pointer[rawTemplateName]
}

type rawTemplateName struct {
	qualifier arena.Pointer[rawSpecifier]
	name      intern.ID
}

// NewDependentNameType returns `typename qualifier name`.
func (u *Unit) NewDependentNameType(qualifier Specifier, name string) DependentNameType {
	u.mustQualify(qualifier)
	t := u.newType(rawType{
		kind:      TypeKindDependentName,
		name:      u.Ident(name).id,
		qualifier: qualifier.ptr,
	})
	return DependentNameType{t.withUnit, t.ptr}
}

// NewDependentTemplateSpecializationType returns
// `typename qualifier template name<args...>`.
func (u *Unit) NewDependentTemplateSpecializationType(qualifier Specifier, name string, args ...Type) DependentTemplateSpecializationType {
	u.mustQualify(qualifier)
	u.mustOwnAll(args)
	t := u.newType(rawType{
		kind:      TypeKindDependentTemplateSpecialization,
		name:      u.Ident(name).id,
		qualifier: qualifier.ptr,
		args:      args,
	})
	return DependentTemplateSpecializationType{t.withUnit, t.ptr}
}

// NewDependentTemplateName returns `qualifier template name`.
func (u *Unit) NewDependentTemplateName(qualifier Specifier, name string) DependentTemplateName {
	u.mustQualify(qualifier)
	id := u.Ident(name).id
	w := u.wrap()
	return DependentTemplateName{w, u.templates.New(rawTemplateName{
		qualifier: qualifier.ptr,
		name:      id,
	})}
}

func (u *Unit) mustQualify(qualifier Specifier) {
	if qualifier.IsZero() {
		panic(fmt.Errorf("ast: dependent name without a qualifier in %v", u))
	}
	u.mustOwn(qualifier.withUnit, "qualifier")
}

// DependentNameType converts a [Handle] back into a DependentNameType.
//
// Panics if h is not a valid handle to a dependent name type of this unit.
func (u *Unit) DependentNameType(h Handle) DependentNameType {
	return must(u.LookupDependentNameType(h))
}

// LookupDependentNameType is like [Unit.DependentNameType], but returns an
// error instead of panicking.
func (u *Unit) LookupDependentNameType(h Handle) (DependentNameType, error) {
	ptr, err := u.typeOfKind(h, TypeKindDependentName)
	if err != nil || ptr.Nil() {
		return DependentNameType{}, err
	}
	return DependentNameType{withUnit{u, h.gen}, ptr}, nil
}

// DependentTemplateSpecializationType converts a [Handle] back into a
// DependentTemplateSpecializationType.
//
// Panics if h is not a valid handle to a dependent template specialization
// of this unit.
func (u *Unit) DependentTemplateSpecializationType(h Handle) DependentTemplateSpecializationType {
	return must(u.LookupDependentTemplateSpecializationType(h))
}

// LookupDependentTemplateSpecializationType is like
// [Unit.DependentTemplateSpecializationType], but returns an error instead
// of panicking.
func (u *Unit) LookupDependentTemplateSpecializationType(h Handle) (DependentTemplateSpecializationType, error) {
	ptr, err := u.typeOfKind(h, TypeKindDependentTemplateSpecialization)
	if err != nil || ptr.Nil() {
		return DependentTemplateSpecializationType{}, err
	}
	return DependentTemplateSpecializationType{withUnit{u, h.gen}, ptr}, nil
}

// DependentTemplateName converts a [Handle] back into a
// DependentTemplateName.
//
// Panics if h is not a valid handle into this unit.
func (u *Unit) DependentTemplateName(h Handle) DependentTemplateName {
	return must(u.LookupDependentTemplateName(h))
}

// LookupDependentTemplateName is like [Unit.DependentTemplateName], but
// returns an error instead of panicking.
func (u *Unit) LookupDependentTemplateName(h Handle) (DependentTemplateName, error) {
	ptr, err := lookup(u, &u.templates, h)
	if err != nil || ptr.Nil() {
		return DependentTemplateName{}, err
	}
	return DependentTemplateName{withUnit{u, h.gen}, ptr}, nil
}

func (u *Unit) typeOfKind(h Handle, want TypeKind) (arena.Pointer[rawType], error) {
	ptr, err := lookup(u, &u.types, h)
	if err != nil || ptr.Nil() {
		return 0, err
	}
	if got := u.types.Deref(ptr).kind; got != want {
		return 0, fmt.Errorf("%w: %v names a %v, not a %v", ErrBadHandle, h, got, want)
	}
	return ptr, nil
}

// Handle returns the unit-free identity of this type.
func (t DependentNameType) Handle() Handle {
	return newHandle(t.withUnit, t.ptr)
}

// Qualifier returns the qualifier this name is looked up in.
func (t DependentNameType) Qualifier() Specifier {
	if t.IsZero() {
		return Specifier{}
	}
	return t.AsType().qualifier()
}

// Identifier returns the dependent name itself.
func (t DependentNameType) Identifier() Ident {
	if t.IsZero() {
		return Ident{}
	}
	return t.unit.identOf(t.gen, t.live().types.Deref(t.ptr).name)
}

// AsType returns this node as an unqualified [Type].
func (t DependentNameType) AsType() Type {
	if t.IsZero() {
		return Type{}
	}
	return Type{t.withUnit, t.ptr, 0}
}

// String implements [fmt.Stringer].
func (t DependentNameType) String() string {
	return t.AsType().String()
}

// Handle returns the unit-free identity of this type.
func (t DependentTemplateSpecializationType) Handle() Handle {
	return newHandle(t.withUnit, t.ptr)
}

// Qualifier returns the qualifier the template is looked up in.
func (t DependentTemplateSpecializationType) Qualifier() Specifier {
	if t.IsZero() {
		return Specifier{}
	}
	return t.AsType().qualifier()
}

// Identifier returns the name of the template.
func (t DependentTemplateSpecializationType) Identifier() Ident {
	if t.IsZero() {
		return Ident{}
	}
	return t.unit.identOf(t.gen, t.live().types.Deref(t.ptr).name)
}

// Args returns the template arguments.
func (t DependentTemplateSpecializationType) Args() []Type {
	return t.AsType().Args()
}

// AsType returns this node as an unqualified [Type].
func (t DependentTemplateSpecializationType) AsType() Type {
	if t.IsZero() {
		return Type{}
	}
	return Type{t.withUnit, t.ptr, 0}
}

// String implements [fmt.Stringer].
func (t DependentTemplateSpecializationType) String() string {
	return t.AsType().String()
}

// Handle returns the unit-free identity of this template name.
func (t DependentTemplateName) Handle() Handle {
	return newHandle(t.withUnit, t.ptr)
}

// Qualifier returns the qualifier the template is looked up in.
func (t DependentTemplateName) Qualifier() Specifier {
	if t.IsZero() {
		return Specifier{}
	}
	return specifierOf(t.withUnit, t.live().templates.Deref(t.ptr).qualifier)
}

// Identifier returns the name of the template.
func (t DependentTemplateName) Identifier() Ident {
	if t.IsZero() {
		return Ident{}
	}
	return t.unit.identOf(t.gen, t.live().templates.Deref(t.ptr).name)
}

// String implements [fmt.Stringer].
func (t DependentTemplateName) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Qualifier().String() + "template " + t.Identifier().Text()
}

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

package nested

import (
	"errors"
	"strings"

	"github.com/bufbuild/cxxnested/ast"
)

// Type returns the type this node denotes, without cv-qualifiers.
//
// Type links denote the type they name; the two type anchors denote
// themselves. Every other kind, including [KindInvalid], returns the zero
// [ast.Type]. The result is rebuilt from its [ast.QualType] by this node's
// unit, so it is a type of n.Unit().
func (n Node) Type() ast.Type {
	var q ast.QualType
	switch n.kind {
	case KindTypeSpec, KindTypeSpecWithTemplate:
		q = n.specifier().AsType().QualType()
	case KindDependentNameType:
		q = n.dependentName().AsType().QualType()
	case KindDependentTemplateSpecializationType:
		q = n.dependentTemplateSpecialization().AsType().QualType()
	default:
		return ast.Type{}
	}
	q.Quals = 0
	return n.unit.NewType(q)
}

// Identifier returns the bare name this node denotes.
//
// Identifier links and all three anchors have one; every other kind returns
// the zero Identifier.
func (n Node) Identifier() Identifier {
	switch n.kind {
	case KindIdentifier:
		return Identifier{n.specifier().AsIdentifier()}
	case KindDependentNameType:
		return Identifier{n.dependentName().Identifier()}
	case KindDependentTemplateSpecializationType:
		return Identifier{n.dependentTemplateSpecialization().Identifier()}
	case KindDependentTemplateName:
		return Identifier{n.dependentTemplateName().Identifier()}
	default:
		return Identifier{}
	}
}

// Identifier is a reference to an interned identifier of an [ast.Unit].
//
// The zero Identifier means "no identifier". Like [Node], an Identifier is
// only valid while its unit is.
type Identifier struct {
	ident ast.Ident
}

// IsZero returns whether this is the absent identifier.
func (i Identifier) IsZero() bool {
	return i.ident.IsZero()
}

// Unit returns the unit this identifier belongs to.
func (i Identifier) Unit() *ast.Unit {
	return i.ident.Unit()
}

// Name returns a copy of this identifier's text. The copy does not refer to
// the unit's storage and stays valid after the unit is closed.
//
// Panics if i is zero; check [Identifier.IsZero] first.
func (i Identifier) Name() string {
	if i.IsZero() {
		panic(errors.New("nested: name of absent identifier"))
	}
	return strings.Clone(i.ident.Text())
}

// String implements [fmt.Stringer]. Unlike [Identifier.Name], it accepts the
// zero Identifier.
func (i Identifier) String() string {
	if i.IsZero() {
		return "<none>"
	}
	return i.ident.Text()
}

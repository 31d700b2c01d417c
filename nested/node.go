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
	"fmt"

	"github.com/bufbuild/cxxnested/ast"
)

// Node is one element of a qualifier chain, or an anchor that carries one.
//
// Nodes are small values that may be copied and compared with ==. They do
// not own anything: a Node is only valid while the [ast.Unit] it was built
// from is, and using one after [ast.Unit.Close] panics.
//
// The zero Node has kind [KindInvalid] and no unit.
type Node struct {
	unit   *ast.Unit
	kind   Kind
	handle ast.Handle // Nil iff kind == KindInvalid.
}

// Invalid returns the node that ends every chain. u may be nil.
func Invalid(u *ast.Unit) Node {
	return Node{unit: u}
}

// FromSpecifier returns the node for a qualifier link of u.
//
// A zero s produces [Invalid](u); this is how a chain ends. So does a link
// whose discriminator has no [Kind], such as a decltype specifier.
//
// Panics if s belongs to a unit other than u.
func FromSpecifier(u *ast.Unit, s ast.Specifier) Node {
	if s.IsZero() {
		return Invalid(u)
	}
	kind := classify(s.Kind())
	mustBelong(u, s.Unit(), kind)
	if kind == KindInvalid {
		return Invalid(u)
	}
	return Node{u, kind, s.Handle()}
}

// FromDependentName returns the node for a dependent type of u.
//
// Panics if t is zero or belongs to a unit other than u.
func FromDependentName(u *ast.Unit, t ast.DependentNameType) Node {
	mustBelong(u, t.Unit(), KindDependentNameType)
	return Node{u, KindDependentNameType, t.Handle()}
}

// FromDependentTemplateSpecialization returns the node for a dependent
// template specialization of u.
//
// Panics if t is zero or belongs to a unit other than u.
func FromDependentTemplateSpecialization(u *ast.Unit, t ast.DependentTemplateSpecializationType) Node {
	mustBelong(u, t.Unit(), KindDependentTemplateSpecializationType)
	return Node{u, KindDependentTemplateSpecializationType, t.Handle()}
}

// FromDependentTemplateName returns the node for a dependent template name of
// u.
//
// Panics if t is zero or belongs to a unit other than u.
func FromDependentTemplateName(u *ast.Unit, t ast.DependentTemplateName) Node {
	mustBelong(u, t.Unit(), KindDependentTemplateName)
	return Node{u, KindDependentTemplateName, t.Handle()}
}

func mustBelong(u, owner *ast.Unit, kind Kind) {
	switch {
	case owner == nil:
		panic(fmt.Errorf("nested: %v node from a zero AST node", kind))
	case owner != u:
		panic(fmt.Errorf("nested: %v node from %v used with %v", kind, owner, u))
	}
}

// classify maps the discriminator of a qualifier link onto a [Kind].
//
// Discriminators this package does not know, including ones added to the AST
// after it was written, map to [KindInvalid]: the chain appears to end there
// rather than exposing a kind no consumer can handle.
func classify(k ast.SpecifierKind) Kind {
	switch k {
	case ast.SpecifierKindIdentifier:
		return KindIdentifier
	case ast.SpecifierKindNamespace:
		return KindNamespace
	case ast.SpecifierKindNamespaceAlias:
		return KindNamespaceAlias
	case ast.SpecifierKindTypeSpec:
		return KindTypeSpec
	case ast.SpecifierKindTypeSpecWithTemplate:
		return KindTypeSpecWithTemplate
	case ast.SpecifierKindGlobal:
		return KindGlobal
	case ast.SpecifierKindSuper:
		return KindSuper
	default:
		return KindInvalid
	}
}

// IsLink returns whether k is the kind of a qualifier link, as opposed to a
// dependent-name anchor or [KindInvalid].
func (k Kind) IsLink() bool {
	switch k {
	case KindIdentifier, KindNamespace, KindNamespaceAlias, KindTypeSpec,
		KindTypeSpecWithTemplate, KindGlobal, KindSuper:
		return true
	default:
		return false
	}
}

// IsAnchor returns whether k is the kind of a dependent-name anchor.
func (k Kind) IsAnchor() bool {
	switch k {
	case KindDependentNameType, KindDependentTemplateSpecializationType, KindDependentTemplateName:
		return true
	default:
		return false
	}
}

// Kind returns this node's tag.
func (n Node) Kind() Kind {
	return n.kind
}

// Unit returns the unit this node was built from. It may be nil for an
// [Invalid] node.
func (n Node) Unit() *ast.Unit {
	return n.unit
}

// IsValid returns whether this node is anything other than [KindInvalid].
func (n Node) IsValid() bool {
	return n.kind != KindInvalid
}

// AsSpecifier returns the qualifier link this node wraps, or zero if it is
// not a link.
func (n Node) AsSpecifier() ast.Specifier {
	if !n.kind.IsLink() {
		return ast.Specifier{}
	}
	return n.specifier()
}

// AsDependentName returns the dependent type this node wraps, or zero.
func (n Node) AsDependentName() ast.DependentNameType {
	if n.kind != KindDependentNameType {
		return ast.DependentNameType{}
	}
	return n.dependentName()
}

// AsDependentTemplateSpecialization returns the dependent template
// specialization this node wraps, or zero.
func (n Node) AsDependentTemplateSpecialization() ast.DependentTemplateSpecializationType {
	if n.kind != KindDependentTemplateSpecializationType {
		return ast.DependentTemplateSpecializationType{}
	}
	return n.dependentTemplateSpecialization()
}

// AsDependentTemplateName returns the dependent template name this node
// wraps, or zero.
func (n Node) AsDependentTemplateName() ast.DependentTemplateName {
	if n.kind != KindDependentTemplateName {
		return ast.DependentTemplateName{}
	}
	return n.dependentTemplateName()
}

// The downcasts below are the only way from a Node back to an AST node. Each
// one requires that the caller already switched on the kind; getting this
// wrong is a bug in this package, so it panics.

func (n Node) specifier() ast.Specifier {
	if !n.kind.IsLink() {
		panic(fmt.Errorf("nested: downcast of %v node to a qualifier link", n.kind))
	}
	return n.unit.Specifier(n.handle)
}

func (n Node) dependentName() ast.DependentNameType {
	n.mustBe(KindDependentNameType)
	return n.unit.DependentNameType(n.handle)
}

func (n Node) dependentTemplateSpecialization() ast.DependentTemplateSpecializationType {
	n.mustBe(KindDependentTemplateSpecializationType)
	return n.unit.DependentTemplateSpecializationType(n.handle)
}

func (n Node) dependentTemplateName() ast.DependentTemplateName {
	n.mustBe(KindDependentTemplateName)
	return n.unit.DependentTemplateName(n.handle)
}

func (n Node) mustBe(want Kind) {
	if n.kind != want {
		panic(fmt.Errorf("nested: downcast of %v node to %v", n.kind, want))
	}
}

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

package nested_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cxxnested/ast"
	"github.com/bufbuild/cxxnested/nested"
)

// fixture is a unit containing one node of every valid kind.
type fixture struct {
	unit  *ast.Unit
	nodes map[nested.Kind]nested.Node
}

func newFixture() fixture {
	u := ast.NewUnit("fixture.cc")
	std := u.NewNamespace(ast.Decl{}, "std")
	fs := u.NewNamespaceAlias(ast.Decl{}, "fs", u.NewNamespace(std, "filesystem"))
	vec := u.NewClass(std, "vector")
	param := u.NewTemplateParam("T")

	global := u.NewGlobal()
	ns := u.NewNamespaceSpecifier(global, std)
	paramSpec := u.NewTypeSpecifier(ast.Specifier{}, param, false)
	typeSpec := u.NewTypeSpecifier(ns, u.NewTemplateSpecialization(vec, param).WithQuals(ast.QualConst), false)

	nodes := map[nested.Kind]nested.Node{
		nested.KindIdentifier:     nested.FromSpecifier(u, u.NewIdentifierSpecifier(paramSpec, "value_type")),
		nested.KindNamespace:      nested.FromSpecifier(u, ns),
		nested.KindNamespaceAlias: nested.FromSpecifier(u, u.NewNamespaceSpecifier(ast.Specifier{}, fs)),
		nested.KindTypeSpec:       nested.FromSpecifier(u, typeSpec),
		nested.KindTypeSpecWithTemplate: nested.FromSpecifier(u,
			u.NewTypeSpecifier(paramSpec, u.NewTemplateSpecialization(vec, param), true)),
		nested.KindGlobal: nested.FromSpecifier(u, global),
		nested.KindSuper:  nested.FromSpecifier(u, u.NewSuper(u.NewClass(ast.Decl{}, "Derived"))),
		nested.KindDependentNameType: nested.FromDependentName(u,
			u.NewDependentNameType(paramSpec, "type")),
		nested.KindDependentTemplateSpecializationType: nested.FromDependentTemplateSpecialization(u,
			u.NewDependentTemplateSpecializationType(paramSpec, "apply", u.NewBuiltin("int"))),
		nested.KindDependentTemplateName: nested.FromDependentTemplateName(u,
			u.NewDependentTemplateName(paramSpec, "apply")),
	}
	return fixture{u, nodes}
}

// all returns every node of the fixture plus the invalid node, ordered by
// kind.
func (f fixture) all() []nested.Node {
	out := []nested.Node{nested.Invalid(f.unit)}
	for k := nested.KindInvalid + 1; k < nested.NumKinds; k++ {
		out = append(out, f.nodes[k])
	}
	return out
}

func TestKindRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture()
	require.Len(t, f.nodes, nested.NumKinds-1)
	for kind, n := range f.nodes {
		assert.Equal(t, kind, n.Kind())
		assert.True(t, n.IsValid())
		assert.Equal(t, f.unit, n.Unit())
		assert.Equal(t, kind.IsLink(), !kind.IsAnchor(), "%v", kind)
	}
	assert.False(t, nested.KindInvalid.IsLink())
	assert.False(t, nested.KindInvalid.IsAnchor())
}

func TestProjectionTotality(t *testing.T) {
	t.Parallel()

	hasType := []nested.Kind{
		nested.KindTypeSpec,
		nested.KindTypeSpecWithTemplate,
		nested.KindDependentNameType,
		nested.KindDependentTemplateSpecializationType,
	}
	hasIdent := []nested.Kind{
		nested.KindIdentifier,
		nested.KindDependentNameType,
		nested.KindDependentTemplateSpecializationType,
		nested.KindDependentTemplateName,
	}

	f := newFixture()
	for _, n := range f.all() {
		t.Run(n.Kind().String(), func(t *testing.T) {
			t.Parallel()

			var ty ast.Type
			var id nested.Identifier
			require.NotPanics(t, func() {
				ty = n.Type()
				id = n.Identifier()
			})
			assert.Equal(t, slices.Contains(hasType, n.Kind()), !ty.IsZero())
			assert.Equal(t, slices.Contains(hasIdent, n.Kind()), !id.IsZero())
			assert.Zero(t, ty.Quals())
		})
	}
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	for _, n := range f.all() {
		assert.Equal(t, f.unit, n.Parent().Unit(), "parent of %v", n)
		if ty := n.Type(); !ty.IsZero() {
			assert.Equal(t, f.unit, ty.Unit(), "type of %v", n)
		}
		if id := n.Identifier(); !id.IsZero() {
			assert.Equal(t, f.unit, id.Unit(), "identifier of %v", n)
		}
	}
}

func TestSentinelClosure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	invalid := nested.Invalid(f.unit)
	assert.Equal(t, invalid, invalid.Parent())
	assert.Equal(t, invalid, invalid.Parent().Parent())
	assert.Equal(t, nested.Node{}, nested.Node{}.Parent())
	assert.Zero(t, invalid.Depth())

	for _, n := range f.all() {
		steps := 0
		for m := n; m.IsValid(); m = m.Parent() {
			steps++
			require.LessOrEqual(t, steps, 16, "chain of %v does not terminate", n)
		}
		assert.Equal(t, n.Depth(), steps, "%v", n)
	}

	assert.Equal(t, 2, f.nodes[nested.KindIdentifier].Depth())
	assert.Equal(t, 3, f.nodes[nested.KindTypeSpec].Depth())
	assert.Equal(t, nested.KindGlobal, f.nodes[nested.KindTypeSpec].Root().Kind())
	assert.Equal(t, invalid, invalid.Root())
}

// Constructing a node from an absent link.
func TestNullSpecifier(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	n := nested.FromSpecifier(u, ast.Specifier{})

	assert.Equal(t, nested.KindInvalid, n.Kind())
	assert.Equal(t, nested.Invalid(u), n)
	assert.True(t, n.Type().IsZero())
	assert.True(t, n.Identifier().IsZero())
	assert.Equal(t, nested.Invalid(u), n.Parent())
	assert.Empty(t, n.Spelling())
	assert.Equal(t, "Invalid", n.String())
}

// Walking ::foo::Bar:: from its last link.
func TestWalkChain(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	global := u.NewGlobal()
	foo := u.NewNamespaceSpecifier(global, u.NewNamespace(ast.Decl{}, "foo"))
	bar := nested.FromSpecifier(u, u.NewIdentifierSpecifier(foo, "Bar"))

	p1 := bar.Parent()
	p2 := p1.Parent()
	p3 := p2.Parent()
	assert.Equal(t, nested.KindNamespace, p1.Kind())
	assert.Equal(t, nested.FromSpecifier(u, foo), p1)
	assert.Equal(t, nested.KindGlobal, p2.Kind())
	assert.Equal(t, nested.KindInvalid, p3.Kind())

	id := bar.Identifier()
	require.False(t, id.IsZero())
	assert.Equal(t, "Bar", id.Name())
	assert.Equal(t, "::foo::Bar::", bar.Spelling())
	assert.Equal(t, "Identifier(Bar)", bar.String())
	assert.Equal(t, "Namespace(foo)", p1.String())
	assert.Equal(t, "Global", p2.String())

	var kinds []nested.Kind
	for n := range bar.Chain() {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []nested.Kind{nested.KindIdentifier, nested.KindNamespace, nested.KindGlobal}, kinds)
}

// A dependent type anchored to std::.
func TestDependentName(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	std := u.NewNamespaceSpecifier(ast.Specifier{}, u.NewNamespace(ast.Decl{}, "std"))
	dep := u.NewDependentNameType(std, "T")
	n := nested.FromDependentName(u, dep)

	ty := n.Type()
	require.False(t, ty.IsZero())
	assert.Equal(t, dep.AsType(), ty)
	assert.Equal(t, ast.TypeKindDependentName, ty.Kind())
	assert.Equal(t, "T", n.Identifier().Name())

	parent := n.Parent()
	assert.Equal(t, nested.KindNamespace, parent.Kind())
	assert.Equal(t, nested.FromSpecifier(u, std), parent)
	assert.Equal(t, "typename std::T", n.Spelling())
	assert.Equal(t, dep, n.AsDependentName())
}

func TestTypeSpec(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	vec := u.NewClass(u.NewNamespace(ast.Decl{}, "std"), "vector")
	inst := u.NewTemplateSpecialization(vec, u.NewBuiltin("int"))
	n := nested.FromSpecifier(u, u.NewTypeSpecifier(ast.Specifier{}, inst.WithQuals(ast.QualVolatile), false))

	assert.Equal(t, nested.KindTypeSpec, n.Kind())
	assert.Equal(t, inst, n.Type())
	assert.True(t, n.Identifier().IsZero())
	assert.Equal(t, "TypeSpec(vector<int>)", n.String())
}

func TestDependentTemplates(t *testing.T) {
	t.Parallel()

	f := newFixture()
	dtst := f.nodes[nested.KindDependentTemplateSpecializationType]
	dtn := f.nodes[nested.KindDependentTemplateName]

	assert.Equal(t, dtst.AsDependentTemplateSpecialization().AsType(), dtst.Type())
	assert.Equal(t, "apply", dtst.Identifier().Name())
	assert.Equal(t, "typename T::template apply<int>", dtst.Spelling())
	assert.Equal(t, nested.KindTypeSpec, dtst.Parent().Kind())

	assert.True(t, dtn.Type().IsZero())
	assert.Equal(t, "apply", dtn.Identifier().Name())
	assert.Equal(t, "T::template apply", dtn.Spelling())
	assert.Equal(t, dtst.Parent(), dtn.Parent())
}

func TestUnmappedLinkEndsChain(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	decltype := u.NewDecltypeSpecifier(u.NewBuiltin("int"))

	// decltype(...):: has no Kind, so it reads as the end of the chain rather
	// than as an error.
	assert.Equal(t, nested.Invalid(u), nested.FromSpecifier(u, decltype))

	n := nested.FromSpecifier(u, u.NewIdentifierSpecifier(decltype, "value_type"))
	assert.Equal(t, nested.KindIdentifier, n.Kind())
	assert.Equal(t, nested.Invalid(u), n.Parent())
	assert.Equal(t, 1, n.Depth())
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	n := nested.FromSpecifier(u, u.NewIdentifierSpecifier(ast.Specifier{}, "iterator"))

	var zero nested.Identifier
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<none>", zero.String())
	assert.Panics(t, func() { _ = zero.Name() })

	name := n.Identifier().Name()
	assert.Equal(t, "iterator", n.Identifier().String())

	// Names are copies; nodes are views.
	u.Close()
	assert.Equal(t, "iterator", name)
	assert.Equal(t, nested.KindIdentifier, n.Kind())
	assert.Panics(t, func() { n.Parent() })
	assert.Panics(t, func() { n.Identifier() })
}

func TestConstructorsCheckUnit(t *testing.T) {
	t.Parallel()

	a := ast.NewUnit("a.cc")
	b := ast.NewUnit("b.cc")
	spec := a.NewGlobal()
	dep := a.NewDependentNameType(spec, "T")

	assert.Panics(t, func() { nested.FromSpecifier(b, spec) })
	assert.Panics(t, func() { nested.FromDependentName(b, dep) })
	assert.Panics(t, func() { nested.FromDependentName(a, ast.DependentNameType{}) })
	assert.Panics(t, func() { nested.FromDependentTemplateName(a, ast.DependentTemplateName{}) })
	assert.Equal(t, nested.Invalid(b), nested.FromSpecifier(b, ast.Specifier{}))

	// Links without a Kind are still checked for ownership.
	decltype := a.NewDecltypeSpecifier(a.NewBuiltin("int"))
	assert.Equal(t, nested.Invalid(a), nested.FromSpecifier(a, decltype))
	assert.Panics(t, func() { nested.FromSpecifier(b, decltype) })
	assert.Panics(t, func() { nested.FromSpecifier(nil, decltype) })
}

func TestTypeComesFromUnit(t *testing.T) {
	t.Parallel()

	f := newFixture()
	for _, n := range f.all() {
		ty := n.Type()
		if ty.IsZero() {
			continue
		}
		q := ty.QualType()
		assert.Zero(t, q.Quals, "%v", n)
		assert.Equal(t, ty, f.unit.NewType(q), "%v", n)
	}

	dep := f.nodes[nested.KindDependentNameType]
	assert.Equal(t, dep.Raw().Payload, dep.Type().QualType().Handle.Uint64())

	spec := f.nodes[nested.KindTypeSpec].AsSpecifier().AsType()
	assert.Equal(t, ast.QualConst, spec.Quals())
	assert.Equal(t, spec.QualType().Handle, f.nodes[nested.KindTypeSpec].Type().QualType().Handle)

	// Projections are views: they die with the unit.
	f.unit.Close()
	assert.Panics(t, func() { dep.Type() })
}

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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cxxnested/ast"
)

func TestSpecifiers(t *testing.T) {
	t.Parallel()

	u := ast.NewUnit("test.cc")
	std := u.NewNamespace(ast.Decl{}, "std")
	fs := u.NewNamespaceAlias(ast.Decl{}, "fs", u.NewNamespace(std, "filesystem"))
	vec := u.NewClass(std, "vector")
	intTy := u.NewBuiltin("int")
	param := u.NewTemplateParam("T")

	global := u.NewGlobal()
	ns := u.NewNamespaceSpecifier(global, std)
	ty := u.NewTypeSpecifier(ns, u.NewTemplateSpecialization(vec, intTy), false)
	ident := u.NewIdentifierSpecifier(ty, "iterator")

	tests := []struct {
		name      string
		spec      ast.Specifier
		kind      ast.SpecifierKind
		prefix    ast.Specifier
		component string
		spelling  string
	}{
		{"zero", ast.Specifier{}, ast.SpecifierKindNone, ast.Specifier{}, "", ""},
		{"global", global, ast.SpecifierKindGlobal, ast.Specifier{}, "", "::"},
		{"namespace", ns, ast.SpecifierKindNamespace, global, "std", "::std::"},
		{"type", ty, ast.SpecifierKindTypeSpec, ns, "vector<int>", "::std::vector<int>::"},
		{"identifier", ident, ast.SpecifierKindIdentifier, ty, "iterator", "::std::vector<int>::iterator::"},
		{
			"alias", u.NewNamespaceSpecifier(ast.Specifier{}, fs),
			ast.SpecifierKindNamespaceAlias, ast.Specifier{}, "fs", "fs::",
		},
		{
			"template", u.NewTypeSpecifier(ast.Specifier{}, param, true),
			ast.SpecifierKindTypeSpecWithTemplate, ast.Specifier{}, "template T", "template T::",
		},
		{
			"super", u.NewSuper(u.NewClass(ast.Decl{}, "Derived")),
			ast.SpecifierKindSuper, ast.Specifier{}, "__super", "__super::",
		},
		{
			"decltype", u.NewDecltypeSpecifier(intTy.WithQuals(ast.QualConst)),
			ast.SpecifierKindDecltype, ast.Specifier{}, "decltype(const int)", "decltype(const int)::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.spec.Kind())
			assert.Equal(t, tt.prefix, tt.spec.Prefix())
			assert.Equal(t, tt.component, tt.spec.Component())
			assert.Equal(t, tt.spelling, tt.spec.String())
		})
	}

	assert.Equal(t, "iterator", ident.AsIdentifier().Text())
	assert.True(t, ns.AsIdentifier().IsZero())
	assert.Equal(t, std, ns.AsDecl())
	assert.True(t, ident.AsDecl().IsZero())
	assert.Equal(t, ast.TypeKindTemplateSpecialization, ty.AsType().Kind())
	assert.True(t, ns.AsType().IsZero())
}

func TestSpecifierKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TypeSpecWithTemplate", ast.SpecifierKindTypeSpecWithTemplate.String())
	assert.Equal(t, "SpecifierKindDecltype", ast.SpecifierKindDecltype.GoString())
	assert.Equal(t, "SpecifierKind(42)", ast.SpecifierKind(42).String())
}

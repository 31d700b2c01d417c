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

// Package nested inspects qualifier chains, the `A::B::C::` that precedes a
// name in C++, one link at a time.
//
// A chain is exposed through a single flat value, [Node], which is a [Kind]
// tag plus a handle into the [ast.Unit] that owns the chain. Nodes never
// expose the AST node types they are built from: a consumer asks a Node for
// its kind, its parent, its type and its identifier, each of which degrades to
// a zero value when it does not apply.
//
// # Walking a chain
//
// Starting from the node for `::foo::Bar::`,
//
//	for n := range node.Chain() {
//		fmt.Println(n.Kind(), n.Identifier())
//	}
//
// visits the Identifier link Bar, the Namespace link foo and the Global link,
// in that order. [Node.Parent] takes a single step and returns a Node of kind
// [KindInvalid] at the root. Chains are acyclic by construction in package
// ast, so walking always terminates.
//
// # Dependent names
//
// Three kinds are not links but anchors: a dependent type, a dependent
// template specialization and a dependent template name. Each of these carries
// its own qualifier, which is its parent.
package nested

//go:generate go run github.com/bufbuild/cxxnested/internal/enum kind.yaml

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
	"iter"
)

// Parent returns the node one step closer to the root of the chain.
//
// For a link, this is the link's prefix. For an anchor, it is the anchor's
// qualifier. At the root, and for an [Invalid] node, it is [Invalid] with the
// same unit.
func (n Node) Parent() Node {
	switch n.kind {
	case KindIdentifier, KindNamespace, KindNamespaceAlias, KindTypeSpec,
		KindTypeSpecWithTemplate, KindGlobal, KindSuper:
		return FromSpecifier(n.unit, n.specifier().Prefix())
	case KindDependentNameType:
		return FromSpecifier(n.unit, n.dependentName().Qualifier())
	case KindDependentTemplateSpecializationType:
		return FromSpecifier(n.unit, n.dependentTemplateSpecialization().Qualifier())
	case KindDependentTemplateName:
		return FromSpecifier(n.unit, n.dependentTemplateName().Qualifier())
	case KindInvalid:
		return Invalid(n.unit)
	default:
		panic(fmt.Errorf("nested: unexpected kind %v", n.kind))
	}
}

// Chain yields this node followed by each of its parents, stopping before
// the [Invalid] node at the root.
func (n Node) Chain() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for ; n.IsValid(); n = n.Parent() {
			if !yield(n) {
				return
			}
		}
	}
}

// Depth returns the number of nodes [Node.Chain] yields.
func (n Node) Depth() int {
	var depth int
	for range n.Chain() {
		depth++
	}
	return depth
}

// Root returns the last node [Node.Chain] yields, or [Invalid] if this node
// is invalid.
func (n Node) Root() Node {
	root := Invalid(n.unit)
	for m := range n.Chain() {
		root = m
	}
	return root
}

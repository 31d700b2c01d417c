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

// Package ast is the storage of a C++ compilation unit, as seen by tools
// that inspect qualified names.
//
// A [Unit] owns every node it contains: qualifier links ([Specifier]), types
// ([Type] and the dependent anchors), declarations ([Decl]) and interned
// identifiers ([Ident]). Values of those types are small views that carry
// their Unit with them; they are only valid while the Unit is. Once built,
// nodes are never mutated, so views may be read from any number of
// goroutines.
//
// Using a view after its Unit has been closed or reset panics.
package ast

//go:generate go run github.com/bufbuild/cxxnested/internal/enum kind.yaml

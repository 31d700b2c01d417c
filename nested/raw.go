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
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bufbuild/cxxnested/ast"
)

var (
	// ErrMalformed is returned when a [Raw] or its wire encoding is not
	// something [Node.Raw] could have produced.
	ErrMalformed = errors.New("nested: malformed node")
	// ErrContext is returned when a [Raw] is resolved against a unit other
	// than the one it came from.
	ErrContext = errors.New("nested: wrong unit")
)

// Raw is the fixed boundary representation of a [Node]: a tag and two
// machine words.
//
// Payload packs the node's [ast.Handle]; it is zero exactly when Kind is
// [KindInvalid]. Context is the [ast.Unit.ID] of the owning unit, or zero if
// there is none.
type Raw struct {
	Kind    Kind
	Payload uint64
	Context uint64
}

// Field numbers of the wire encoding of [Raw].
const (
	wireKind    protowire.Number = 1
	wirePayload protowire.Number = 2
	wireContext protowire.Number = 3
)

// Raw returns the boundary representation of this node.
func (n Node) Raw() Raw {
	var ctx uint64
	if n.unit != nil {
		ctx = n.unit.ID()
	}
	return Raw{Kind: n.kind, Payload: n.handle.Uint64(), Context: ctx}
}

// FromRaw converts a [Raw] produced by [Node.Raw] back into a Node of u.
//
// Unlike the rest of this package, FromRaw validates its input, since it
// usually comes from outside the process's control: it returns [ErrContext]
// if r came from another unit, [ast.ErrClosed] or [ast.ErrStale] if the unit
// was closed or reset since, and [ErrMalformed] or [ast.ErrBadHandle] if r
// does not describe a node at all.
func FromRaw(u *ast.Unit, r Raw) (Node, error) {
	if r.Kind >= NumKinds {
		return Node{}, fmt.Errorf("%w: unknown kind %d", ErrMalformed, r.Kind)
	}
	if (r.Kind == KindInvalid) != (r.Payload == 0) {
		return Node{}, fmt.Errorf("%w: %v with payload %#x", ErrMalformed, r.Kind, r.Payload)
	}

	if u == nil {
		if r.Kind != KindInvalid || r.Context != 0 {
			return Node{}, fmt.Errorf("%w: %v node from unit #%d without a unit", ErrContext, r.Kind, r.Context)
		}
		return Node{}, nil
	}
	if r.Context != u.ID() {
		return Node{}, fmt.Errorf("%w: node from unit #%d used with %v", ErrContext, r.Context, u)
	}

	h := ast.HandleFromUint64(r.Payload)
	var (
		n   Node
		err error
	)
	switch {
	case r.Kind == KindInvalid:
		return Invalid(u), nil
	case r.Kind.IsLink():
		var s ast.Specifier
		if s, err = u.LookupSpecifier(h); err == nil {
			n = FromSpecifier(u, s)
		}
	case r.Kind == KindDependentNameType:
		var t ast.DependentNameType
		if t, err = u.LookupDependentNameType(h); err == nil {
			n = FromDependentName(u, t)
		}
	case r.Kind == KindDependentTemplateSpecializationType:
		var t ast.DependentTemplateSpecializationType
		if t, err = u.LookupDependentTemplateSpecializationType(h); err == nil {
			n = FromDependentTemplateSpecialization(u, t)
		}
	case r.Kind == KindDependentTemplateName:
		var t ast.DependentTemplateName
		if t, err = u.LookupDependentTemplateName(h); err == nil {
			n = FromDependentTemplateName(u, t)
		}
	}
	if err != nil {
		return Node{}, fmt.Errorf("nested: resolving %v: %w", r.Kind, err)
	}
	if n.kind != r.Kind {
		return Node{}, fmt.Errorf("%w: payload %#x is a %v, not a %v", ErrMalformed, r.Payload, n.kind, r.Kind)
	}
	return n, nil
}

// AppendWire appends the wire encoding of r to b.
//
// The encoding is a Protobuf message with the kind as field 1 (varint), the
// payload as field 2 (fixed64) and the context as field 3 (varint). Zero
// fields are omitted.
func (r Raw) AppendWire(b []byte) []byte {
	if r.Kind != KindInvalid {
		b = protowire.AppendTag(b, wireKind, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Kind))
	}
	if r.Payload != 0 {
		b = protowire.AppendTag(b, wirePayload, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, r.Payload)
	}
	if r.Context != 0 {
		b = protowire.AppendTag(b, wireContext, protowire.VarintType)
		b = protowire.AppendVarint(b, r.Context)
	}
	return b
}

// ParseWire parses the encoding produced by [Raw.AppendWire]. Unknown fields
// are skipped.
func ParseWire(b []byte) (Raw, error) {
	var r Raw
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Raw{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		want := protowire.VarintType
		switch num {
		case wirePayload:
			want = protowire.Fixed64Type
		case wireKind, wireContext:
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Raw{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if typ != want {
			return Raw{}, fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
		}

		var v uint64
		if typ == protowire.Fixed64Type {
			v, n = protowire.ConsumeFixed64(b)
		} else {
			v, n = protowire.ConsumeVarint(b)
		}
		if n < 0 {
			return Raw{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case wireKind:
			if v > math.MaxUint8 {
				return Raw{}, fmt.Errorf("%w: kind %d out of range", ErrMalformed, v)
			}
			r.Kind = Kind(v)
		case wirePayload:
			r.Payload = v
		case wireContext:
			r.Context = v
		}
	}
	return r, nil
}

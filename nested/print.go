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
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// Spelling returns the source spelling of this node together with its whole
// qualifier: `::foo::Bar::` for a link, `typename T::type` for a dependent
// type, `T::template apply` for a dependent template name. An [Invalid] node
// spells as the empty string.
func (n Node) Spelling() string {
	switch {
	case n.kind.IsLink():
		return n.specifier().String()
	case n.kind == KindDependentNameType:
		return n.dependentName().String()
	case n.kind == KindDependentTemplateSpecializationType:
		return n.dependentTemplateSpecialization().String()
	case n.kind == KindDependentTemplateName:
		return n.dependentTemplateName().String()
	default:
		return ""
	}
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	var text string
	switch {
	case n.kind.IsLink():
		text = n.specifier().Component()
	case n.kind.IsAnchor():
		text = n.Spelling()
	}
	if text == "" {
		return n.kind.String()
	}
	return fmt.Sprintf("%v(%s)", n.kind, text)
}

// Dump writes a table describing every node of n's chain to w, one row per
// node starting at n, with columns for the kind, identifier, type and
// spelling. Absent values are written as "-".
//
// Columns are aligned by display width, so identifiers outside of ASCII do
// not skew the table.
func Dump(w io.Writer, n Node) error {
	rows := [][]string{{"KIND", "IDENTIFIER", "TYPE", "SPELLING"}}
	for m := range n.Chain() {
		rows = append(rows, dumpRow(m))
	}
	if len(rows) == 1 {
		rows = append(rows, dumpRow(n))
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			pad := widths[i] - uniseg.StringWidth(cell) + 2
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpRow(n Node) []string {
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	var ident string
	if id := n.Identifier(); !id.IsZero() {
		ident = id.Name()
	}
	return []string{
		n.kind.String(),
		orDash(ident),
		orDash(n.Type().String()),
		orDash(n.Spelling()),
	}
}

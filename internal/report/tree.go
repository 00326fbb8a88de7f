// Package report renders the human-readable text reports. Both builders are
// pure functions of the selection, the state mapping, and the filter: they
// perform no I/O and no external lookups.
package report

import (
	"fmt"
	"strings"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

const (
	bullet      = "•"
	hittableYes = "✅"
	hittableNo  = "⚠️"
	enabledYes  = "🟢"
	enabledNo   = "🔴"
	notFound    = "❌"
)

// TreeLegend is appended to every tree report, whatever the outcome.
const TreeLegend = "Legend: ✅ hittable | ⚠️ not hittable | 🟢 enabled | 🔴 disabled"

// rowIndent is the per-level indentation of a rendered tree row.
const rowIndent = "   "

// Tree renders the tree report for a selection. Records without an identifier
// show the placeholder dash and the default status glyphs.
func Tree(records []model.Record, sel model.Selection, states map[string]model.State, f model.Filter) string {
	var b strings.Builder

	switch sel.Outcome {
	case model.NoMatch:
		fmt.Fprintf(&b, "%s No element found with identifier '%s'\n", notFound, f.Identifier)
		b.WriteString(TreeLegend + "\n")
		return b.String()
	case model.TypeMismatch:
		fmt.Fprintf(&b, "%s Element '%s' found, but not of type '%s' (found: %s)\n",
			hittableNo, f.Identifier, f.Type, strings.Join(sel.FoundTypes, ", "))
		b.WriteString(TreeLegend + "\n")
		return b.String()
	}

	b.WriteString(treeHeader(f) + "\n")

	total, hittable, enabled := 0, 0, 0
	for _, i := range sel.Kept {
		r := records[i]
		st := states[r.Identifier] // zero value doubles as the display default

		b.WriteString(strings.Repeat(rowIndent, r.Level))
		b.WriteString(bullet + " " + model.ResolveTypeName(r.ElementType) + " ")
		if r.Identifier != "" {
			b.WriteString(r.Identifier)
		} else {
			b.WriteString("-")
		}
		if r.Label != "" {
			b.WriteString(" (" + r.Label + ")")
		}
		b.WriteString(" " + statusGlyphs(st) + "\n")

		total++
		if st.Hittable {
			hittable++
		}
		if st.Enabled {
			enabled++
		}
	}

	fmt.Fprintf(&b, "Summary: total=%d hittable=%d enabled=%d\n", total, hittable, enabled)
	b.WriteString(TreeLegend + "\n")
	return b.String()
}

func treeHeader(f model.Filter) string {
	switch {
	case f.Identifier != "" && f.Type != "":
		return fmt.Sprintf("🌳 Element tree for identifier '%s' and type '%s'", f.Identifier, f.Type)
	case f.Identifier != "":
		return fmt.Sprintf("🌳 Element tree for identifier '%s'", f.Identifier)
	case f.Type != "":
		return fmt.Sprintf("🌳 Element tree for type '%s'", f.Type)
	default:
		return "🌳 Element tree"
	}
}

// statusGlyphs renders the hittable and enabled glyphs with no separator.
func statusGlyphs(st model.State) string {
	h := hittableNo
	if st.Hittable {
		h = hittableYes
	}
	if st.Enabled {
		return h + enabledYes
	}
	return h + enabledNo
}

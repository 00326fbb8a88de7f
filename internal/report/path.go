package report

import (
	"fmt"
	"strings"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

const (
	pathLink  = "🔗"
	pathArrow = " → "
)

// PathLegend is appended to every path report.
const PathLegend = "Legend: 🔗 target | → parent to child"

// Path renders the root-to-leaf ancestor chain for every record carrying the
// identifier. Dumps normally hold at most one such record, but duplicates
// each get their own line. Zero matches produce a single not-found line.
func Path(records []model.Record, identifier string) string {
	var b strings.Builder
	found := false
	for i, r := range records {
		if identifier == "" || r.Identifier != identifier {
			continue
		}
		found = true
		fmt.Fprintf(&b, "%s %s: %s\n", pathLink, identifier, strings.Join(Segments(records, i), pathArrow))
	}
	if !found {
		fmt.Fprintf(&b, "%s No element found with identifier '%s'\n", notFound, identifier)
	}
	b.WriteString(PathLegend + "\n")
	return b.String()
}

// Segments returns the root-to-leaf chain of records[i] rendered as
// Type[identifier-or-dash] strings.
func Segments(records []model.Record, i int) []string {
	chain := model.AncestorIndices(records, i)
	segments := make([]string, 0, len(chain)+1)
	for j := len(chain) - 1; j >= 0; j-- {
		segments = append(segments, segment(records[chain[j]]))
	}
	return append(segments, segment(records[i]))
}

func segment(r model.Record) string {
	id := r.Identifier
	if id == "" {
		id = "-"
	}
	return model.ResolveTypeName(r.ElementType) + "[" + id + "]"
}

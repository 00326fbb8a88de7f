package model

// Outcome classifies a filtered selection.
type Outcome int

const (
	// Matched means the keep-set holds the direct matches plus their
	// ancestors. The unfiltered case is always Matched.
	Matched Outcome = iota
	// NoMatch means an identifier filter was given but no record carries it.
	NoMatch
	// TypeMismatch means the filter identifier exists but never together
	// with the requested element type.
	TypeMismatch
)

// Selection is the result of filtering a record sequence.
type Selection struct {
	Outcome Outcome
	// Kept holds indices into the record slice, in original dump order:
	// every direct match plus every record on a match's root path. A record
	// that is both appears once.
	Kept []int
	// FoundTypes lists the distinct resolved type names the filter
	// identifier actually carries when the outcome is TypeMismatch.
	FoundTypes []string
}

// Select applies a filter to the record sequence and builds the keep-set.
// Matching compares raw element-type tokens; resolution to human-readable
// names is a render-time concern. A type-only filter that matches nothing
// yields a Matched selection with an empty keep-set.
func Select(records []Record, f Filter) Selection {
	if f.Identifier != "" && !identifierExists(records, f.Identifier) {
		return Selection{Outcome: NoMatch}
	}

	kept := make(map[int]bool)
	matched := false
	for i, r := range records {
		if f.Identifier != "" && r.Identifier != f.Identifier {
			continue
		}
		if f.Type != "" && r.ElementType != f.Type {
			continue
		}
		matched = true
		kept[i] = true
		for _, a := range AncestorIndices(records, i) {
			kept[a] = true
		}
	}

	if !matched {
		if f.Identifier != "" {
			return Selection{
				Outcome:    TypeMismatch,
				FoundTypes: typesForIdentifier(records, f.Identifier),
			}
		}
		return Selection{Outcome: Matched}
	}

	indices := make([]int, 0, len(kept))
	for i := range records {
		if kept[i] {
			indices = append(indices, i)
		}
	}
	return Selection{Outcome: Matched, Kept: indices}
}

// AncestorIndices returns the indices of every record on the root path of
// records[i], nearest ancestor first. The walk tracks the minimum level seen
// and keeps any earlier record strictly below it, so dumps whose indentation
// skips levels still produce a terminating chain.
func AncestorIndices(records []Record, i int) []int {
	var out []int
	lvl := records[i].Level
	for j := i - 1; j >= 0 && lvl > 0; j-- {
		if records[j].Level < lvl {
			out = append(out, j)
			lvl = records[j].Level
		}
	}
	return out
}

func identifierExists(records []Record, identifier string) bool {
	for _, r := range records {
		if r.Identifier == identifier {
			return true
		}
	}
	return false
}

func typesForIdentifier(records []Record, identifier string) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range records {
		if r.Identifier != identifier {
			continue
		}
		name := ResolveTypeName(r.ElementType)
		if !seen[name] {
			seen[name] = true
			types = append(types, name)
		}
	}
	return types
}

package model

import "strconv"

// ChangeType represents the kind of change detected between two dumps.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// Change represents a single difference between two dumps.
type Change struct {
	Type       ChangeType           `yaml:"type"              json:"type"`
	Identifier string               `yaml:"id"                json:"id"`
	Element    string               `yaml:"element,omitempty" json:"element,omitempty"`
	Fields     map[string][2]string `yaml:"fields,omitempty"  json:"fields,omitempty"`
}

// DiffRecords compares two parsed dumps and returns the changes. Records are
// matched by identifier, the only key stable across dumps; unidentified
// records cannot be tracked and are skipped. When an identifier appears more
// than once its first occurrence wins.
func DiffRecords(prev, curr []Record) []Change {
	prevByID := firstByIdentifier(prev)
	currByID := firstByIdentifier(curr)

	var changes []Change

	seen := make(map[string]bool)
	for _, r := range curr {
		if r.Identifier == "" || seen[r.Identifier] {
			continue
		}
		seen[r.Identifier] = true
		prevR, existed := prevByID[r.Identifier]
		if !existed {
			changes = append(changes, Change{
				Type:       ChangeAdded,
				Identifier: r.Identifier,
				Element:    ResolveTypeName(r.ElementType),
			})
			continue
		}
		if fields := diffFields(prevR, r); len(fields) > 0 {
			changes = append(changes, Change{
				Type:       ChangeChanged,
				Identifier: r.Identifier,
				Element:    ResolveTypeName(r.ElementType),
				Fields:     fields,
			})
		}
	}

	seenPrev := make(map[string]bool)
	for _, r := range prev {
		if r.Identifier == "" || seenPrev[r.Identifier] {
			continue
		}
		seenPrev[r.Identifier] = true
		if _, exists := currByID[r.Identifier]; !exists {
			changes = append(changes, Change{
				Type:       ChangeRemoved,
				Identifier: r.Identifier,
				Element:    ResolveTypeName(r.ElementType),
			})
		}
	}

	return changes
}

func firstByIdentifier(records []Record) map[string]Record {
	byID := make(map[string]Record, len(records))
	for _, r := range records {
		if r.Identifier == "" {
			continue
		}
		if _, ok := byID[r.Identifier]; !ok {
			byID[r.Identifier] = r
		}
	}
	return byID
}

func diffFields(prev, curr Record) map[string][2]string {
	fields := make(map[string][2]string)
	if prev.ElementType != curr.ElementType {
		fields["type"] = [2]string{prev.ElementType, curr.ElementType}
	}
	if prev.Label != curr.Label {
		fields["label"] = [2]string{prev.Label, curr.Label}
	}
	if prev.Level != curr.Level {
		fields["level"] = [2]string{strconv.Itoa(prev.Level), strconv.Itoa(curr.Level)}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

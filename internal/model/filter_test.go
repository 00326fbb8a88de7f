package model

import (
	"reflect"
	"testing"
)

// chainRecords is a four-level chain with two identified records.
func chainRecords() []Record {
	return []Record{
		{Level: 0, ElementType: "Application"},
		{Level: 1, ElementType: "Window"},
		{Level: 2, ElementType: "Other", Identifier: "navigationBarView"},
		{Level: 3, ElementType: "Button", Identifier: "leadingButton", Label: "Back"},
	}
}

func TestSelect_NoFilterKeepsAll(t *testing.T) {
	records := chainRecords()
	sel := Select(records, Filter{})
	if sel.Outcome != Matched {
		t.Fatalf("expected Matched, got %v", sel.Outcome)
	}
	if len(sel.Kept) != len(records) {
		t.Errorf("expected %d kept records, got %d", len(records), len(sel.Kept))
	}
}

func TestSelect_IdentifierNotFound(t *testing.T) {
	sel := Select(chainRecords(), Filter{Identifier: "doesNotExist"})
	if sel.Outcome != NoMatch {
		t.Errorf("expected NoMatch, got %v", sel.Outcome)
	}
	if len(sel.Kept) != 0 {
		t.Errorf("expected empty keep-set, got %v", sel.Kept)
	}
}

func TestSelect_TypeMismatch(t *testing.T) {
	sel := Select(chainRecords(), Filter{Identifier: "leadingButton", Type: "Cell"})
	if sel.Outcome != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", sel.Outcome)
	}
	if !reflect.DeepEqual(sel.FoundTypes, []string{"Button"}) {
		t.Errorf("expected found types [Button], got %v", sel.FoundTypes)
	}
}

func TestSelect_TypeMismatch_DistinctTypes(t *testing.T) {
	records := []Record{
		{Level: 0, ElementType: "Button", Identifier: "dup"},
		{Level: 0, ElementType: "Cell", Identifier: "dup"},
		{Level: 0, ElementType: "Button", Identifier: "dup"},
	}
	sel := Select(records, Filter{Identifier: "dup", Type: "Window"})
	if sel.Outcome != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", sel.Outcome)
	}
	if !reflect.DeepEqual(sel.FoundTypes, []string{"Button", "Cell"}) {
		t.Errorf("expected found types [Button Cell], got %v", sel.FoundTypes)
	}
}

func TestSelect_IdentifierKeepsAncestors(t *testing.T) {
	sel := Select(chainRecords(), Filter{Identifier: "leadingButton"})
	if sel.Outcome != Matched {
		t.Fatalf("expected Matched, got %v", sel.Outcome)
	}
	if !reflect.DeepEqual(sel.Kept, []int{0, 1, 2, 3}) {
		t.Errorf("expected full root path kept in order, got %v", sel.Kept)
	}
}

func TestSelect_TypeOnlyFilter(t *testing.T) {
	records := []Record{
		{Level: 0, ElementType: "Window"},
		{Level: 1, ElementType: "Button", Identifier: "a"},
		{Level: 1, ElementType: "Cell", Identifier: "b"},
		{Level: 1, ElementType: "Button"},
	}
	sel := Select(records, Filter{Type: "Button"})
	if sel.Outcome != Matched {
		t.Fatalf("expected Matched, got %v", sel.Outcome)
	}
	// Both buttons (identified or not) plus the shared ancestor window.
	if !reflect.DeepEqual(sel.Kept, []int{0, 1, 3}) {
		t.Errorf("expected kept [0 1 3], got %v", sel.Kept)
	}
}

func TestSelect_TypeOnlyFilter_NoMatchesIsEmptyMatched(t *testing.T) {
	sel := Select(chainRecords(), Filter{Type: "Slider"})
	if sel.Outcome != Matched {
		t.Fatalf("expected Matched, got %v", sel.Outcome)
	}
	if len(sel.Kept) != 0 {
		t.Errorf("expected empty keep-set, got %v", sel.Kept)
	}
}

func TestSelect_MatchThatIsAlsoAncestorKeptOnce(t *testing.T) {
	records := []Record{
		{Level: 0, ElementType: "Other", Identifier: "shared"},
		{Level: 1, ElementType: "Other", Identifier: "shared"},
	}
	sel := Select(records, Filter{Identifier: "shared"})
	if !reflect.DeepEqual(sel.Kept, []int{0, 1}) {
		t.Errorf("expected [0 1] with no duplicates, got %v", sel.Kept)
	}
}

func TestSelect_SiblingSubtreeNotKept(t *testing.T) {
	records := []Record{
		{Level: 0, ElementType: "Window"},
		{Level: 1, ElementType: "Other"},
		{Level: 2, ElementType: "Button", Identifier: "ignored"},
		{Level: 1, ElementType: "Other"},
		{Level: 2, ElementType: "Button", Identifier: "target"},
	}
	sel := Select(records, Filter{Identifier: "target"})
	if !reflect.DeepEqual(sel.Kept, []int{0, 3, 4}) {
		t.Errorf("expected [0 3 4], got %v", sel.Kept)
	}
}

// Indentation that jumps more than one level is preserved literally:
// the walk attaches the deep record to the nearest shallower one.
func TestSelect_LevelJump(t *testing.T) {
	records := []Record{
		{Level: 0, ElementType: "Application"},
		{Level: 3, ElementType: "Button", Identifier: "deep"},
	}
	sel := Select(records, Filter{Identifier: "deep"})
	if sel.Outcome != Matched {
		t.Fatalf("expected Matched, got %v", sel.Outcome)
	}
	if !reflect.DeepEqual(sel.Kept, []int{0, 1}) {
		t.Errorf("expected [0 1], got %v", sel.Kept)
	}
}

func TestAncestorIndices_NearestFirst(t *testing.T) {
	records := chainRecords()
	got := AncestorIndices(records, 3)
	if !reflect.DeepEqual(got, []int{2, 1, 0}) {
		t.Errorf("expected [2 1 0], got %v", got)
	}
}

func TestAncestorIndices_RootHasNone(t *testing.T) {
	if got := AncestorIndices(chainRecords(), 0); len(got) != 0 {
		t.Errorf("expected no ancestors for root, got %v", got)
	}
}

// Round-trip: a record's own identifier always yields a non-NoMatch outcome
// containing that record.
func TestSelect_IdentifierRoundTrip(t *testing.T) {
	records := chainRecords()
	for i, r := range records {
		if r.Identifier == "" {
			continue
		}
		sel := Select(records, Filter{Identifier: r.Identifier})
		if sel.Outcome == NoMatch {
			t.Errorf("identifier %q: unexpected NoMatch", r.Identifier)
			continue
		}
		found := false
		for _, k := range sel.Kept {
			if k == i {
				found = true
			}
		}
		if !found {
			t.Errorf("identifier %q: record %d missing from keep-set %v", r.Identifier, i, sel.Kept)
		}
	}
}

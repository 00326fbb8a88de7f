package model

import "testing"

func TestDiffRecords_Added(t *testing.T) {
	prev := []Record{{Level: 0, ElementType: "Window"}}
	curr := []Record{
		{Level: 0, ElementType: "Window"},
		{Level: 1, ElementType: "Button", Identifier: "submit"},
	}

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %v", len(changes), changes)
	}
	if changes[0].Type != ChangeAdded || changes[0].Identifier != "submit" {
		t.Errorf("unexpected change: %+v", changes[0])
	}
	if changes[0].Element != "Button" {
		t.Errorf("expected resolved element name, got %q", changes[0].Element)
	}
}

func TestDiffRecords_Removed(t *testing.T) {
	prev := []Record{{Level: 0, ElementType: "Alert", Identifier: "errorAlert"}}
	curr := []Record{}

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 || changes[0].Type != ChangeRemoved {
		t.Fatalf("expected one removal, got %v", changes)
	}
	if changes[0].Identifier != "errorAlert" {
		t.Errorf("unexpected identifier: %q", changes[0].Identifier)
	}
}

func TestDiffRecords_Changed(t *testing.T) {
	prev := []Record{{Level: 1, ElementType: "Button", Identifier: "toggle", Label: "Off"}}
	curr := []Record{{Level: 1, ElementType: "Button", Identifier: "toggle", Label: "On"}}

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 || changes[0].Type != ChangeChanged {
		t.Fatalf("expected one field change, got %v", changes)
	}
	if got := changes[0].Fields["label"]; got != [2]string{"Off", "On"} {
		t.Errorf("unexpected label diff: %v", got)
	}
}

func TestDiffRecords_IdenticalDumpsAreQuiet(t *testing.T) {
	records := ParseDump(sampleDump)
	if changes := DiffRecords(records, records); len(changes) != 0 {
		t.Errorf("expected no changes for identical dumps, got %v", changes)
	}
}

func TestDiffRecords_UnidentifiedRecordsIgnored(t *testing.T) {
	prev := []Record{{Level: 0, ElementType: "Window"}}
	curr := []Record{{Level: 0, ElementType: "Other"}}

	if changes := DiffRecords(prev, curr); len(changes) != 0 {
		t.Errorf("unidentified records must not be tracked, got %v", changes)
	}
}

func TestDiffRecords_DuplicateIdentifierFirstWins(t *testing.T) {
	prev := []Record{
		{Level: 1, ElementType: "Cell", Identifier: "row", Label: "A"},
		{Level: 1, ElementType: "Cell", Identifier: "row", Label: "B"},
	}
	curr := []Record{
		{Level: 1, ElementType: "Cell", Identifier: "row", Label: "A"},
	}

	if changes := DiffRecords(prev, curr); len(changes) != 0 {
		t.Errorf("expected no changes when first occurrences match, got %v", changes)
	}
}

package model

// Record is one parsed element row from a hierarchy dump.
// Records form an implicit tree: a record is a descendant of the nearest
// preceding record with a smaller Level. Sibling order equals dump order.
type Record struct {
	Level       int    `yaml:"level"            json:"level"`
	ElementType string `yaml:"type"             json:"type"`
	Identifier  string `yaml:"id,omitempty"     json:"id,omitempty"`
	Label       string `yaml:"label,omitempty"  json:"label,omitempty"`
}

// State is the externally probed runtime state of one identified element.
type State struct {
	Hittable bool `yaml:"hittable" json:"hittable"`
	Enabled  bool `yaml:"enabled"  json:"enabled"`
}

// DefaultState is attached to records without an identifier and to records
// whose probe failed. It is a display placeholder, never an assertion about
// the element.
var DefaultState = State{}

// Filter narrows a render to one identifier and/or one raw element-type token.
// Empty fields mean "no constraint".
type Filter struct {
	Identifier string
	Type       string
}

package output

import "github.com/rafiki270/XCUIDebug/internal/model"

// RecordEntry is one kept record with its resolved type and probed state.
type RecordEntry struct {
	Level      int    `yaml:"level"            json:"level"`
	Type       string `yaml:"type"             json:"type"`
	RawType    string `yaml:"raw_type"         json:"raw_type"`
	Identifier string `yaml:"id,omitempty"     json:"id,omitempty"`
	Label      string `yaml:"label,omitempty"  json:"label,omitempty"`
	Hittable   bool   `yaml:"hittable"         json:"hittable"`
	Enabled    bool   `yaml:"enabled"          json:"enabled"`
}

// TreeResult is the structured form of a tree report.
type TreeResult struct {
	Outcome    string        `yaml:"outcome"               json:"outcome"`
	Identifier string        `yaml:"id,omitempty"          json:"id,omitempty"`
	Type       string        `yaml:"type,omitempty"        json:"type,omitempty"`
	FoundTypes []string      `yaml:"found_types,omitempty" json:"found_types,omitempty"`
	Records    []RecordEntry `yaml:"records"               json:"records"`
	Total      int           `yaml:"total"                 json:"total"`
	Hittable   int           `yaml:"hittable"              json:"hittable"`
	Enabled    int           `yaml:"enabled"               json:"enabled"`
}

// PathResult is the structured form of a path report. Each path is a
// root-to-leaf list of Type[identifier] segments.
type PathResult struct {
	Identifier string     `yaml:"id"              json:"id"`
	Found      bool       `yaml:"found"           json:"found"`
	Paths      [][]string `yaml:"paths,omitempty" json:"paths,omitempty"`
}

// NewTreeResult assembles a TreeResult from a selection and its states.
func NewTreeResult(records []model.Record, sel model.Selection, states map[string]model.State, f model.Filter) TreeResult {
	res := TreeResult{
		Outcome:    outcomeName(sel.Outcome),
		Identifier: f.Identifier,
		Type:       f.Type,
		FoundTypes: sel.FoundTypes,
		Records:    []RecordEntry{},
	}
	for _, i := range sel.Kept {
		r := records[i]
		st := states[r.Identifier]
		res.Records = append(res.Records, RecordEntry{
			Level:      r.Level,
			Type:       model.ResolveTypeName(r.ElementType),
			RawType:    r.ElementType,
			Identifier: r.Identifier,
			Label:      r.Label,
			Hittable:   st.Hittable,
			Enabled:    st.Enabled,
		})
		res.Total++
		if st.Hittable {
			res.Hittable++
		}
		if st.Enabled {
			res.Enabled++
		}
	}
	return res
}

func outcomeName(o model.Outcome) string {
	switch o {
	case model.NoMatch:
		return "not_found"
	case model.TypeMismatch:
		return "type_mismatch"
	default:
		return "matched"
	}
}

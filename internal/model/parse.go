package model

import (
	"regexp"
	"strings"
)

// indentWidth is the number of leading spaces per tree level in a dump.
// Partial indents round down.
const indentWidth = 4

// connector prefixes element rows in some dump flavors.
const connector = "→"

var (
	identifierRe = regexp.MustCompile(`identifier: '([^']*)'`)
	labelRe      = regexp.MustCompile(`label: '([^']*)'`)
)

// bannerPrefixes mark framework metadata sections, not element rows.
var bannerPrefixes = []string{"Attributes:", "Element subtree:"}

// ParseDump converts raw hierarchy-dump text into an ordered record sequence.
// Banner lines and rows without a comma separator are dropped rather than
// reported: the parser favors best-effort reconstruction over failure.
// Indentation that skips levels is kept as-is — the ancestor walk in the
// filter engine tolerates it (see AncestorIndices).
func ParseDump(text string) []Record {
	var records []Record
	for _, raw := range strings.Split(text, "\n") {
		level := leadingSpaces(raw) / indentWidth

		line := strings.TrimSpace(raw)
		line = strings.TrimSpace(strings.TrimPrefix(line, connector))
		if line == "" || isBanner(line) {
			continue
		}

		comma := strings.Index(line, ",")
		if comma < 0 {
			continue
		}

		records = append(records, Record{
			Level:       level,
			ElementType: strings.TrimSpace(line[:comma]),
			Identifier:  firstQuoted(identifierRe, line),
			Label:       firstQuoted(labelRe, line),
		})
	}
	return records
}

func isBanner(line string) bool {
	for _, p := range bannerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// firstQuoted returns the first single-quoted value captured by re, or "".
// Embedded commas inside the value are preserved verbatim.
func firstQuoted(re *regexp.Regexp, line string) string {
	if m := re.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

package utils

import (
	"regexp"
	"strings"
)

// NotFound is the sentinel returned when a field's pattern has no match and
// the rule carries no default.
const NotFound = "N/A"

// FieldRule is one entry of a challan type's extraction schema: a named,
// label-anchored pattern with exactly one capture group.
type FieldRule struct {
	Name     string
	Pattern  *regexp.Regexp
	Required bool
	Default  string // used instead of NotFound when the pattern has no match
}

// Find returns the first capture of the rule's pattern in text, trimmed.
func (r FieldRule) Find(text string) string {
	if m := r.Pattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if r.Default != "" {
		return r.Default
	}
	return NotFound
}

// RuleSet is the ordered extraction schema for one challan type.
type RuleSet []FieldRule

// Extract runs every rule against the full concatenated text and returns the
// raw string value per field name.
func (rs RuleSet) Extract(text string) map[string]string {
	fields := make(map[string]string, len(rs))
	for _, r := range rs {
		fields[r.Name] = r.Find(text)
	}
	return fields
}

// MissingRequired lists required field names whose value is the NotFound sentinel.
func (rs RuleSet) MissingRequired(fields map[string]string) []string {
	var missing []string
	for _, r := range rs {
		if r.Required && fields[r.Name] == NotFound {
			missing = append(missing, r.Name)
		}
	}
	return missing
}

// SectionFrom returns the substring of text starting at the case-insensitive
// position of header. When the header is absent the whole text is returned,
// which widens the search and risks false positives on look-alike labels.
func SectionFrom(text, header string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(header))
	if idx < 0 {
		return text
	}
	return text[idx:]
}

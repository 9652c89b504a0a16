package tabular

import (
	"fmt"
	"regexp"
	"strings"
)

// Normalizer folds a header string into a comparison key.
type Normalizer func(string) string

// NormalizeLoose trims surrounding whitespace and folds case.
// "차변잔액 " and "차변잔액" compare equal; "차변 잔액" does not.
func NormalizeLoose(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

var strictStrip = regexp.MustCompile(`[\s._-]`)

// NormalizeStrict additionally strips internal whitespace and the
// punctuation commonly found in export headers (".", "_", "-"), so that
// "차변 잔액", "차변잔액" and "DR_BAL"-style variants collapse together.
func NormalizeStrict(s string) string {
	return strings.ToUpper(strictStrip.ReplaceAllString(s, ""))
}

// Field describes one logical column to resolve against raw headers.
type Field struct {
	// Name is the canonical field name used in results and error messages.
	Name string

	// Aliases are acceptable header spellings, in preference order.
	Aliases []string

	// Required marks the field as mandatory; unresolved required fields
	// are collected into a MissingColumnsError.
	Required bool
}

// Schema is an ordered set of logical fields plus the normalizer used to
// compare aliases against headers.
type Schema struct {
	// Normalize folds headers and aliases before comparison.
	// Defaults to NormalizeStrict when nil.
	Normalize Normalizer

	// Fields lists the logical columns to resolve.
	Fields []Field
}

// MissingColumnsError reports every unresolved required field at once,
// together with the headers that were actually present.
type MissingColumnsError struct {
	Table   string
	Missing []string
	Headers []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("table %q: required columns not found: %s (available headers: %s)",
		e.Table, strings.Join(e.Missing, ", "), strings.Join(e.Headers, ", "))
}

// FindColumn returns the index of the first header whose normalized form
// equals a normalized alias. Aliases are tried in list order, not header
// order, so earlier aliases win. Returns -1, false when nothing matches.
func FindColumn(headers []string, aliases []string, norm Normalizer) (int, bool) {
	if norm == nil {
		norm = NormalizeStrict
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := norm(h)
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	for _, alias := range aliases {
		if i, ok := index[norm(alias)]; ok {
			return i, true
		}
	}
	return -1, false
}

// Resolve maps every schema field onto a header index. Optional fields that
// do not resolve are simply absent from the result map. If any required
// field is unresolved the full set of missing names is returned in a single
// MissingColumnsError.
func (s *Schema) Resolve(t *Table) (map[string]int, error) {
	cols := make(map[string]int, len(s.Fields))
	var missing []string
	for _, f := range s.Fields {
		if i, ok := FindColumn(t.Headers, f.Aliases, s.Normalize); ok {
			cols[f.Name] = i
		} else if f.Required {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Table: t.Name, Missing: missing, Headers: t.Headers}
	}
	return cols, nil
}

package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseTable parses "schema.table" or "table". Identifiers are lower-cased
// to match unquoted PostgreSQL names.
func ParseTable(raw string) (TableRef, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	schemaName, name, found := strings.Cut(raw, ".")
	if !found {
		schemaName, name = DefaultSchema, raw
	}
	if !identPattern.MatchString(schemaName) || !identPattern.MatchString(name) {
		return TableRef{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return TableRef{Schema: schemaName, Name: name}, nil
}

// ParseTables parses every identifier, failing on the first bad one.
func ParseTables(raw []string) ([]TableRef, error) {
	if len(raw) == 0 {
		return nil, ErrNoTables
	}
	refs := make([]TableRef, 0, len(raw))
	for _, r := range raw {
		ref, err := ParseTable(r)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var readOnlyPrefix = regexp.MustCompile(`(?i)^(select|with)\b`)

// CheckReadOnly accepts a single SELECT or WITH statement. A trailing
// semicolon is allowed; the returned statement has it stripped. Writes that
// slip through a WITH clause are still rejected by the read-only transaction.
func CheckReadOnly(statement string) (string, error) {
	stmt := strings.TrimSpace(statement)
	stmt = strings.TrimSpace(strings.TrimSuffix(stmt, ";"))
	if stmt == "" {
		return "", ErrEmptyStatement
	}
	if strings.Contains(stmt, ";") {
		return "", fmt.Errorf("%w: multiple statements", ErrNotReadOnly)
	}
	if !readOnlyPrefix.MatchString(stmt) {
		return "", ErrNotReadOnly
	}
	return stmt, nil
}

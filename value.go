package criteria

import (
	"fmt"
	"strings"
)

// literal renders a runtime value as the text placed between single quotes
// in a condition. Embedded single quotes are doubled so a value cannot
// terminate the literal early. Backslashes pass through unchanged; the
// output targets PostgreSQL with standard_conforming_strings.
func literal(v any) string {
	return escapeQuotes(fmt.Sprint(v))
}

// escapeQuotes doubles single quotes for safe embedding in a SQL string
// literal.
func escapeQuotes(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

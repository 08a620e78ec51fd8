package criteria

import "strings"

// Column is an immutable SQL column reference or derived expression,
// optionally tagged with an output alias for use in a projection.
//
// Columns are created by Root methods (C, All, Count, ToChar) and by the
// Builder expression helpers (Lower, Upper, Concat). They carry no binding
// back to the root that produced them; the expression string is the whole
// payload.
type Column struct {
	name  string
	alias string
}

// Name returns the column expression string, e.g. "m.first_name" or
// "LOWER(m.email)".
func (c Column) Name() string { return c.name }

// Alias returns the output alias, or the empty string when none was set.
func (c Column) Alias() string { return c.alias }

// As returns a copy of the column tagged with the given output alias.
func (c Column) As(alias string) Column {
	return Column{name: c.name, alias: alias}
}

// Lower wraps the column expression in LOWER(...). Any output alias on
// the input is not carried over.
func (b *Builder) Lower(column Column) Column {
	return Column{name: "LOWER(" + column.name + ")"}
}

// Upper wraps the column expression in UPPER(...). Any output alias on
// the input is not carried over.
func (b *Builder) Upper(column Column) Column {
	return Column{name: "UPPER(" + column.name + ")"}
}

// Concat builds a CONCAT(a || b || ...) expression from a mix of Column
// and string arguments. String literals are single-quoted, with embedded
// quotes doubled. Any other argument type is rejected.
func (b *Builder) Concat(parts ...any) (Column, error) {
	var sb strings.Builder
	sb.Grow(len(parts) * 12)
	sb.WriteString("CONCAT(")
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(" || ")
		}
		switch p := part.(type) {
		case Column:
			sb.WriteString(p.name)
		case string:
			sb.WriteByte('\'')
			sb.WriteString(escapeQuotes(p))
			sb.WriteByte('\'')
		default:
			return Column{}, ErrInvalidConcatArg
		}
	}
	sb.WriteByte(')')
	return Column{name: sb.String()}, nil
}

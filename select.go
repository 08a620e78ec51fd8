package criteria

import "strings"

// Selection carries a partial "SELECT ... FROM " clause produced by
// Select, MultiSelect, Count, or CountColumns. The FROM table, alias, and
// JOIN suffix are appended by Query.SQL.
type Selection struct {
	data string
}

// Data returns the partial SELECT clause text.
func (s Selection) Data() string { return s.data }

// Distinct carries a PostgreSQL "DISTINCT ON (...)" fragment produced by
// SelectDistinctOn. It is mutually exclusive with Query.Distinct(true).
type Distinct struct {
	data string
}

// Data returns the DISTINCT ON expression text.
func (d Distinct) Data() string { return d.data }

// Select returns a projection of all columns of the root:
// "SELECT DISTINCT alias.* FROM ".
func (b *Builder) Select(root *Root) Selection {
	return Selection{data: "SELECT DISTINCT " + root.alias + ".* FROM "}
}

// Count returns a row-count projection over the root:
// "SELECT COUNT(DISTINCT alias.*) FROM ".
func (b *Builder) Count(root *Root) Selection {
	return Selection{data: "SELECT COUNT(DISTINCT " + root.alias + ".*) FROM "}
}

// CountColumns returns a count projection over specific columns:
// "SELECT COUNT(DISTINCT col1, col2) FROM ".
func (b *Builder) CountColumns(columns ...Column) Selection {
	return Selection{data: "SELECT COUNT(DISTINCT " + joinColumns(columns) + ") FROM "}
}

// MultiSelect returns a projection of the given columns in argument
// order, appending " AS alias " for columns tagged with an output alias:
// "SELECT DISTINCT col1, col2 AS total , ... FROM ".
func (b *Builder) MultiSelect(columns ...Column) Selection {
	var sb strings.Builder
	sb.Grow(len(columns) * 24)
	sb.WriteString("SELECT DISTINCT ")
	for i, c := range columns {
		sb.WriteString(c.name)
		if c.alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(c.alias)
			sb.WriteByte(' ')
		}
		if i < len(columns)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString(" FROM ")
	return Selection{data: sb.String()}
}

// SelectDistinctOn returns a "DISTINCT ON (col1, col2)" fragment for the
// given columns. Apply it with Query.DistinctOn.
func (b *Builder) SelectDistinctOn(columns ...Column) Distinct {
	return Distinct{data: "DISTINCT ON (" + joinColumns(columns) + ")"}
}

// joinColumns joins column expressions with ", " for SELECT, COUNT, and
// DISTINCT ON lists. Output aliases are ignored here.
func joinColumns(columns []Column) string {
	var sb strings.Builder
	sb.Grow(len(columns) * 16)
	for i, c := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.name)
	}
	return sb.String()
}

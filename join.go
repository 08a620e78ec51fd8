package criteria

// JoinType is the SQL join variant emitted between the FROM table and a
// joined table. The constant value is the exact SQL keyword sequence, so
// the set is closed by construction and rendering needs no lookup.
type JoinType string

const (
	// InnerJoin returns only rows with a match in both tables.
	InnerJoin JoinType = "JOIN"

	// CrossJoin produces the cartesian product of both tables.
	CrossJoin JoinType = "CROSS JOIN"

	// LeftOuterJoin keeps all rows from the FROM table, with NULLs for
	// unmatched joined rows.
	LeftOuterJoin JoinType = "LEFT OUTER JOIN"

	// RightOuterJoin keeps all rows from the joined table, with NULLs
	// for unmatched FROM rows.
	RightOuterJoin JoinType = "RIGHT OUTER JOIN"

	// FullOuterJoin keeps all rows from both tables.
	FullOuterJoin JoinType = "FULL OUTER JOIN"
)

// SQL returns the SQL keyword(s) for the join type.
func (j JoinType) SQL() string { return string(j) }

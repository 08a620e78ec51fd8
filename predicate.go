package criteria

import "strings"

// Predicate is an immutable, opaque SQL boolean condition fragment.
// Predicates are produced only by Builder factory methods and composed
// with And / Or.
type Predicate struct {
	condition string
}

// Condition returns the raw condition string.
func (p Predicate) Condition() string { return p.condition }

// LikeOperator controls where the % wildcard is placed in a LIKE
// expression. The zero value wraps the value on both sides.
type LikeOperator int

const (
	// LikeAll wraps the value with % on both sides: %value%.
	// Use for substring searches.
	LikeAll LikeOperator = iota

	// LikeStart appends % after the value: value%.
	// Use for prefix searches.
	LikeStart

	// LikeEnd prepends % before the value: %value.
	// Use for suffix searches.
	LikeEnd
)

// pattern applies the wildcard placement to an already-escaped value.
func (op LikeOperator) pattern(v string) string {
	switch op {
	case LikeStart:
		return v + "%"
	case LikeEnd:
		return "%" + v
	default:
		return "%" + v + "%"
	}
}

// EQ returns an equality predicate: column = 'value'.
func (b *Builder) EQ(column Column, value any) Predicate {
	return compare(column, "=", value)
}

// GT returns a greater-than predicate: column > 'value'.
func (b *Builder) GT(column Column, value any) Predicate {
	return compare(column, ">", value)
}

// LT returns a less-than predicate: column < 'value'.
func (b *Builder) LT(column Column, value any) Predicate {
	return compare(column, "<", value)
}

// GTE returns a greater-than-or-equal predicate: column >= 'value'.
func (b *Builder) GTE(column Column, value any) Predicate {
	return compare(column, ">=", value)
}

// LTE returns a less-than-or-equal predicate: column <= 'value'.
func (b *Builder) LTE(column Column, value any) Predicate {
	return compare(column, "<=", value)
}

// In returns a membership predicate: column IN ('v1','v2',...).
func (b *Builder) In(column Column, values ...any) Predicate {
	return Predicate{condition: " " + column.name + " IN ('" + joinValues(values) + "') "}
}

// NotIn returns an exclusion predicate: column NOT IN ('v1','v2',...).
func (b *Builder) NotIn(column Column, values ...any) Predicate {
	return Predicate{condition: " " + column.name + " NOT IN ('" + joinValues(values) + "') "}
}

// Like returns a LIKE predicate with the given wildcard placement.
func (b *Builder) Like(column Column, value any, op LikeOperator) Predicate {
	return Predicate{condition: " " + column.name + " LIKE '" + op.pattern(literal(value)) + "' "}
}

// NotLike returns a NOT LIKE predicate with the given wildcard placement.
func (b *Builder) NotLike(column Column, value any, op LikeOperator) Predicate {
	return Predicate{condition: " " + column.name + " NOT LIKE '" + op.pattern(literal(value)) + "' "}
}

// Between returns a range predicate: column BETWEEN 'lo' and 'hi'.
// Both bounds are inclusive.
func (b *Builder) Between(column Column, lo, hi any) Predicate {
	return Predicate{condition: " " + column.name + " BETWEEN '" + literal(lo) + "' and '" + literal(hi) + "' "}
}

// IsNull returns a null test: column IS NULL.
func (b *Builder) IsNull(column Column) Predicate {
	return Predicate{condition: column.name + " IS NULL "}
}

// NotNull returns a non-null test: column IS NOT NULL.
func (b *Builder) NotNull(column Column) Predicate {
	return Predicate{condition: column.name + " IS NOT NULL "}
}

// And combines predicates with AND: (p1 and p2 and ...). It fails when
// called with no predicates.
func (b *Builder) And(predicates ...Predicate) (Predicate, error) {
	if len(predicates) == 0 {
		return Predicate{}, ErrNoPredicates
	}
	return Predicate{condition: joinPredicates(" and ", predicates)}, nil
}

// Or combines predicates with OR: (p1 or p2 or ...). It fails when
// called with no predicates.
func (b *Builder) Or(predicates ...Predicate) (Predicate, error) {
	if len(predicates) == 0 {
		return Predicate{}, ErrNoPredicates
	}
	return Predicate{condition: joinPredicates(" or ", predicates)}, nil
}

func compare(column Column, op string, value any) Predicate {
	return Predicate{condition: " " + column.name + " " + op + " '" + literal(value) + "' "}
}

// joinValues renders IN / NOT IN list values separated by ','. The outer
// quotes are supplied by the caller.
func joinValues(values []any) string {
	var sb strings.Builder
	sb.Grow(len(values) * 8)
	for i, v := range values {
		if i > 0 {
			sb.WriteString("','")
		}
		sb.WriteString(literal(v))
	}
	return sb.String()
}

// joinPredicates wraps the conditions in one parenthesis pair joined by
// the logical operator.
func joinPredicates(op string, predicates []Predicate) string {
	var sb strings.Builder
	sb.WriteString(" (")
	for i, p := range predicates {
		if i > 0 {
			sb.WriteString(op)
		}
		sb.WriteString(p.condition)
	}
	sb.WriteString(") ")
	return sb.String()
}

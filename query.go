package criteria

import (
	"strconv"
	"strings"
)

// Query is the fluent accumulator that assembles the fragments produced
// by a Builder into the final SQL string. Obtain one from Builder.Query;
// every setter returns the Query for chaining, and SQL renders the
// statement.
//
// Each part is set at most once; later calls replace earlier ones.
// Validation that spans fragments (DISTINCT vs DISTINCT ON, OFFSET
// requiring LIMIT) happens in SQL.
type Query struct {
	builder    *Builder
	selection  *Selection
	where      *Predicate
	distinctOn *Distinct
	distinct   bool
	orderBy    string
	groupBy    string
	limit      int
	offset     int64
	hasOffset  bool
	err        error
}

// Select sets the SELECT clause fragment.
func (q *Query) Select(s Selection) *Query {
	q.selection = &s
	return q
}

// Where sets the WHERE predicate. A predicate with a blank condition is
// rejected; the error is surfaced by SQL.
func (q *Query) Where(p Predicate) *Query {
	if strings.TrimSpace(p.condition) == "" {
		q.fail(ErrBlankWhere)
		return q
	}
	q.where = &p
	return q
}

// DistinctOn sets the DISTINCT ON clause. Mutually exclusive with
// Distinct(true).
func (q *Query) DistinctOn(d Distinct) *Query {
	q.distinctOn = &d
	return q
}

// Distinct controls whether the DISTINCT keyword is kept (true) or
// stripped (false, the default) from the SELECT clause at render time.
func (q *Query) Distinct(distinct bool) *Query {
	q.distinct = distinct
	return q
}

// OrderBy sets the ORDER BY clause from the given terms, in priority
// order.
func (q *Query) OrderBy(orders ...Order) *Query {
	var sb strings.Builder
	sb.Grow(len(orders) * 20)
	for i, o := range orders {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(o.column.name)
		sb.WriteByte(' ')
		sb.WriteString(string(o.direction))
	}
	q.orderBy = sb.String()
	return q
}

// GroupBy sets the GROUP BY clause from the given columns.
func (q *Query) GroupBy(columns ...Column) *Query {
	var sb strings.Builder
	sb.Grow(len(columns) * 16)
	for i, c := range columns {
		if i > 0 {
			sb.WriteString(" ,")
		}
		sb.WriteString(c.name)
	}
	q.groupBy = sb.String()
	return q
}

// Limit sets the LIMIT value. Values <= 0 leave the clause unset.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Offset sets the OFFSET value. Rendering fails unless a positive limit
// is also set.
func (q *Query) Offset(n int64) *Query {
	q.offset = n
	q.hasOffset = true
	return q
}

// SQL renders the complete SELECT statement in fixed clause order:
// SELECT, FROM, JOINs in declaration order, WHERE, GROUP BY, ORDER BY,
// LIMIT, OFFSET. Rendering is idempotent and has no side effects; calling
// it twice with unchanged state yields the identical string.
func (q *Query) SQL() (string, error) {
	switch {
	case q.err != nil:
		return "", q.err
	case q.builder == nil:
		return "", ErrMissingBuilder
	case q.selection == nil:
		return "", ErrMissingSelect
	case q.builder.from == nil:
		return "", ErrFromMissing
	}
	sel, err := q.selectClause()
	if err != nil {
		return "", err
	}
	offset, err := q.offsetClause()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(256)
	sb.WriteString(sel)
	q.fromClause(&sb)
	q.joinClause(&sb)
	q.whereClause(&sb)
	q.groupByClause(&sb)
	q.orderByClause(&sb)
	q.limitClause(&sb)
	sb.WriteString(offset)
	return sb.String(), nil
}

// fail records the first construction error; SQL reports it instead of
// rendering.
func (q *Query) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

// selectClause resolves the SELECT text against the distinct state.
// Distinct(false) with no DISTINCT ON strips every DISTINCT keyword from
// the fragment (including inside COUNT); a DISTINCT ON fragment replaces
// the keyword; Distinct(true) keeps the fragment verbatim.
func (q *Query) selectClause() (string, error) {
	var distinctOn string
	if q.distinctOn != nil {
		distinctOn = q.distinctOn.data
	}
	switch {
	case q.distinct && distinctOn != "":
		return "", ErrDistinctConflict
	case !q.distinct && distinctOn == "":
		return strings.ReplaceAll(q.selection.data, "DISTINCT ", ""), nil
	case distinctOn != "":
		return strings.ReplaceAll(q.selection.data, "DISTINCT", distinctOn), nil
	default:
		return q.selection.data, nil
	}
}

// fromClause appends "table alias" for the FROM root.
func (q *Query) fromClause(sb *strings.Builder) {
	from := q.builder.from
	sb.WriteString(from.Table())
	sb.WriteByte(' ')
	sb.WriteString(from.alias)
}

// joinClause appends every join in declaration order as
// "JOINTYPE table alias ON source = target[ AND extra]".
func (q *Query) joinClause(sb *strings.Builder) {
	for _, root := range q.builder.joins {
		sb.WriteByte(' ')
		sb.WriteString(root.joinType.SQL())
		sb.WriteByte(' ')
		sb.WriteString(root.Table())
		sb.WriteByte(' ')
		sb.WriteString(root.alias)
		sb.WriteString(" ON ")
		sb.WriteString(root.sourceColumn.name)
		sb.WriteString(" = ")
		sb.WriteString(root.targetColumn.name)
		if root.joinCondition != nil {
			sb.WriteString(" AND ")
			sb.WriteString(root.joinCondition.condition)
		}
		sb.WriteByte(' ')
	}
}

func (q *Query) whereClause(sb *strings.Builder) {
	if q.where == nil {
		return
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(q.where.condition)
}

func (q *Query) groupByClause(sb *strings.Builder) {
	if q.groupBy == "" {
		return
	}
	sb.WriteString(" GROUP BY ")
	sb.WriteString(q.groupBy)
}

func (q *Query) orderByClause(sb *strings.Builder) {
	if q.orderBy == "" {
		return
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(q.orderBy)
}

func (q *Query) limitClause(sb *strings.Builder) {
	if q.limit <= 0 {
		return
	}
	sb.WriteString(" LIMIT ")
	sb.WriteString(strconv.Itoa(q.limit))
}

// offsetClause renders " OFFSET n", failing when no positive limit is
// set.
func (q *Query) offsetClause() (string, error) {
	if !q.hasOffset {
		return "", nil
	}
	if q.limit < 1 {
		return "", ErrOffsetWithoutLimit
	}
	return " OFFSET " + strconv.FormatInt(q.offset, 10), nil
}

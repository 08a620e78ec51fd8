// Package criteria assembles PostgreSQL SELECT statements from typed
// entity descriptions instead of hand-written SQL text.
//
// A Builder is the per-query context: it owns exactly one FROM root and
// any number of JOIN roots, and its factory methods produce the immutable
// fragments (columns, predicates, projections, sort terms) that a Query
// assembles into the final SQL string.
//
// # Building a Query
//
//	cb := criteria.New()
//	orders, err := cb.From(Order)
//	if err != nil { ... }
//	customerID, _ := orders.C("customerId")
//	customers, err := cb.Join(Customer, customerID, "id", criteria.LeftOuterJoin)
//	if err != nil { ... }
//
//	active, _ := orders.C("active")
//	createdAt, _ := orders.C("createdAt")
//	sql, err := cb.Query().
//	    Select(cb.Select(orders)).
//	    Where(cb.EQ(active, true)).
//	    OrderBy(cb.Desc(createdAt)).
//	    Limit(20).
//	    SQL()
//
// # Roots and Aliases
//
// The FROM root is always aliased "m". JOIN roots receive the first free
// alias from the sequence j, j1, j2, ... in declaration order, so joining
// the same table twice never collides.
//
// # Predicates
//
// Predicate factories render a single condition with the value inlined as
// a quoted literal:
//
//	cb.EQ(col, true)                        //  m.active = 'true'
//	cb.In(col, "OPEN", "PENDING")           //  m.status IN ('OPEN','PENDING')
//	cb.Like(col, "john", criteria.LikeStart) //  m.name LIKE 'john%'
//	cb.Between(col, 1, 10)                  //  m.total BETWEEN '1' and '10'
//
// Compound conditions are built with And / Or, which wrap their operands
// in a single parenthesis pair.
//
// Embedded single quotes in values are doubled, but identifiers and
// literals are otherwise interpolated verbatim. The rendered string must
// only ever be built from trusted, program-controlled inputs; it is not a
// defense against hostile values.
//
// # Distinct
//
// Projections are rendered with SELECT DISTINCT up front. The Query
// decides its fate at render time: Distinct(false) (the default) strips
// the keyword, Distinct(true) keeps it, and DistinctOn replaces it with a
// PostgreSQL DISTINCT ON (...) clause. DISTINCT and DISTINCT ON are
// mutually exclusive.
//
// # Concurrency
//
// A Builder and its Query are owned by a single goroutine. Only the name
// resolution caches in package schema are shared process-wide.
package criteria

package criteria

import "errors"

// Standard sentinel errors for query construction. Every failure is a
// synchronous caller-input error: nothing is retried, silently corrected,
// or recoverable mid-build.
var (
	// ErrFromDefined is returned when From is called on a builder that
	// already has a FROM root.
	ErrFromDefined = errors.New("criteria: from entity already defined")

	// ErrFromMissing is returned when a JOIN is declared, or a query is
	// rendered, before a FROM root exists.
	ErrFromMissing = errors.New("criteria: from entity not defined")

	// ErrNoPredicates is returned when And or Or is called with no
	// predicates.
	ErrNoPredicates = errors.New("criteria: no predicates given")

	// ErrBlankWhere is returned when Where is called with a predicate
	// whose condition is blank.
	ErrBlankWhere = errors.New("criteria: blank where condition")

	// ErrDistinctConflict is returned at render time when both
	// Distinct(true) and a DISTINCT ON fragment are set.
	ErrDistinctConflict = errors.New("criteria: either DISTINCT or DISTINCT ON can be used, not both")

	// ErrOffsetWithoutLimit is returned at render time when an offset is
	// set without a positive limit.
	ErrOffsetWithoutLimit = errors.New("criteria: offset requires a positive limit")

	// ErrMissingBuilder is returned when a Query is rendered without a
	// bound Builder.
	ErrMissingBuilder = errors.New("criteria: query is not bound to a builder")

	// ErrMissingSelect is returned when a Query is rendered without a
	// select fragment.
	ErrMissingSelect = errors.New("criteria: select clause is not set")

	// ErrInvalidConcatArg is returned when Concat receives an argument
	// that is neither a Column nor a string.
	ErrInvalidConcatArg = errors.New("criteria: concat accepts only Column or string arguments")
)

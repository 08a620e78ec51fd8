package criteria

import (
	"github.com/syssam/criteria/schema"
)

// Root is a table reference bound to one SQL alias: either the FROM table
// or a JOIN target. It is the factory for column references and derived
// expressions scoped to that alias.
//
// Roots are created by Builder.From and Builder.Join, which assign the
// alias; a Root is never usable before that. The alias is immutable for
// the lifetime of the builder.
type Root struct {
	entity *schema.Entity
	alias  string

	// Join wiring, set only on roots declared via Builder.Join.
	joinType      JoinType
	sourceColumn  Column
	targetColumn  Column
	joinCondition *Predicate
}

// Entity returns the entity the root is bound to.
func (r *Root) Entity() *schema.Entity { return r.entity }

// Alias returns the SQL alias assigned to the root ("m", "j", "j1", ...).
func (r *Root) Alias() string { return r.alias }

// Table returns the resolved SQL table name for the root's entity.
func (r *Root) Table() string { return r.entity.TableName() }

// All returns a wildcard column reference: "alias.*".
func (r *Root) All() Column {
	return Column{name: r.alias + ".*"}
}

// C returns a column reference for the given entity field, resolved to
// its SQL column name and qualified with the root's alias. Use Column.As
// to tag the result with an output alias for a projection.
func (r *Root) C(field string) (Column, error) {
	name, err := r.entity.ColumnName(field)
	if err != nil {
		return Column{}, err
	}
	return Column{name: r.alias + "." + name}, nil
}

// Count returns a COUNT expression over the given field.
func (r *Root) Count(field string) (Column, error) {
	c, err := r.C(field)
	if err != nil {
		return Column{}, err
	}
	return Column{name: " COUNT (" + c.name + ") "}, nil
}

// ToChar returns a TO_CHAR expression formatting the given field with a
// PostgreSQL date/time pattern, e.g. "YYYY-MM-DD".
func (r *Root) ToChar(field, format string) (Column, error) {
	c, err := r.C(field)
	if err != nil {
		return Column{}, err
	}
	return Column{name: " TO_CHAR (" + c.name + " , '" + format + "') "}, nil
}

// AndOn attaches an extra predicate to the join's ON clause, appended
// with AND after the source = target condition. Calling it again replaces
// the previous predicate.
func (r *Root) AndOn(p Predicate) {
	r.joinCondition = &p
}

// join attaches the wiring that makes the root usable as a JOIN target.
func (r *Root) join(jt JoinType, source, target Column) {
	r.joinType = jt
	r.sourceColumn = source
	r.targetColumn = target
}

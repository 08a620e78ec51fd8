package schema

import (
	"strings"
	"sync"
)

// Field describes a single entity field and its SQL column mapping.
type Field struct {
	// Name is the field identifier on the entity, e.g. "createdAt".
	Name string

	// Column is the declared SQL column name. When empty, the column
	// name is derived by snake-casing Name.
	Column string
}

// Entity describes a typed object and its SQL table mapping.
//
// Entities are immutable by convention: declare them once at startup and
// never modify them afterwards, as resolved names are memoized on first use.
type Entity struct {
	// Name is the entity identifier, e.g. "Order".
	Name string

	// Table is the declared SQL table name. When empty, the table name
	// is derived by snake-casing Name.
	Table string

	// Fields lists the fields declared directly on this entity.
	Fields []Field

	// Parent is the immediate parent entity, if any. Field lookup falls
	// back to the parent when a field is not declared on the entity
	// itself. Deeper ancestor chains are not walked.
	Parent *Entity
}

// Process-wide memoization of resolved names. Entries are pure functions
// of their keys, so concurrent first-time computation for the same key
// converges to the same value.
var (
	tableNames  sync.Map // *Entity -> string
	columnNames sync.Map // columnKey -> string
)

// columnKey identifies a resolved column by entity identity and field name.
type columnKey struct {
	entity *Entity
	field  string
}

// TableName returns the SQL table name for the entity: the declared Table
// if non-empty, otherwise the snake-cased entity name. The result is
// memoized after the first call.
func (e *Entity) TableName() string {
	if name, ok := tableNames.Load(e); ok {
		return name.(string)
	}
	name := e.Table
	if name == "" {
		name = snake(e.Name)
	}
	actual, _ := tableNames.LoadOrStore(e, name)
	return actual.(string)
}

// ColumnName returns the SQL column name for the given field: the declared
// Column if non-empty, otherwise the snake-cased field name. The field is
// looked up on the entity and then on its immediate parent. The result is
// memoized per (entity, field) pair.
func (e *Entity) ColumnName(field string) (string, error) {
	key := columnKey{entity: e, field: field}
	if name, ok := columnNames.Load(key); ok {
		return name.(string), nil
	}
	f, ok := e.field(field)
	if !ok {
		return "", &FieldNotFoundError{Entity: e.Name, Field: field}
	}
	name := f.Column
	if name == "" {
		name = snake(field)
	}
	actual, _ := columnNames.LoadOrStore(key, name)
	return actual.(string), nil
}

// field looks up a field by name on the entity, falling back to the
// immediate parent only.
func (e *Entity) field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	if e.Parent != nil {
		for _, f := range e.Parent.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// snake converts an identifier to snake_case, inserting an underscore only
// at a lowercase-to-uppercase boundary. Uppercase runs are kept together,
// so "HTTPCode" becomes "httpcode" and "createdAt" becomes "created_at".
func snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Package schema declares entity metadata for SQL name resolution.
//
// An Entity describes how a typed object maps to a database table: the
// table name, the set of fields, and an optional parent entity whose
// fields are inherited. Names that are not declared explicitly are
// derived by snake-casing the identifier.
//
// # Declaring Entities
//
// Entities are plain values, built once at startup:
//
//	var Customer = &schema.Entity{
//	    Name: "Customer",
//	    Fields: []schema.Field{
//	        {Name: "id"},
//	        {Name: "fullName", Column: "full_name"},
//	        {Name: "createdAt"},
//	    },
//	}
//
// # Name Resolution
//
// Table and column names are resolved lazily and memoized process-wide:
//
//	Customer.TableName()          // "customer"
//	Customer.ColumnName("createdAt") // "created_at", nil
//
// Resolution is a pure function of its inputs, so the caches are safe to
// share between concurrent callers.
package schema

package criteria

// OrderType is the sort direction in an ORDER BY clause. The constant
// value is the lowercase SQL keyword.
type OrderType string

const (
	// Ascending sorts smallest first.
	Ascending OrderType = "asc"

	// Descending sorts largest first.
	Descending OrderType = "desc"
)

// Order is a single ORDER BY term pairing a column with a direction.
type Order struct {
	column    Column
	direction OrderType
}

// Column returns the column the term sorts by.
func (o Order) Column() Column { return o.column }

// Direction returns the sort direction.
func (o Order) Direction() OrderType { return o.direction }

// Asc returns an ascending Order for the given column.
func (b *Builder) Asc(column Column) Order {
	return Order{column: column, direction: Ascending}
}

// Desc returns a descending Order for the given column.
func (b *Builder) Desc(column Column) Order {
	return Order{column: column, direction: Descending}
}

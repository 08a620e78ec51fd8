package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/criteria/schema"
)

func TestTableName(t *testing.T) {
	t.Run("Declared", func(t *testing.T) {
		e := &schema.Entity{Name: "Customer", Table: "customers"}
		assert.Equal(t, "customers", e.TableName())
	})

	t.Run("Derived", func(t *testing.T) {
		tests := []struct {
			name     string
			expected string
		}{
			{"Order", "order"},
			{"OrderItem", "order_item"},
			{"HTTPLog", "httplog"},
			{"AppointmentSlot", "appointment_slot"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := &schema.Entity{Name: tt.name}
				assert.Equal(t, tt.expected, e.TableName())
			})
		}
	})

	t.Run("Memoized", func(t *testing.T) {
		e := &schema.Entity{Name: "Provider"}
		require.Equal(t, "provider", e.TableName())
		// Mutating the declaration after the first resolution must not
		// change the resolved name: the cache entry wins.
		e.Table = "renamed"
		assert.Equal(t, "provider", e.TableName())
	})
}

func TestColumnName(t *testing.T) {
	t.Run("Declared", func(t *testing.T) {
		e := &schema.Entity{
			Name:   "User",
			Fields: []schema.Field{{Name: "fullName", Column: "full_legal_name"}},
		}
		name, err := e.ColumnName("fullName")
		require.NoError(t, err)
		assert.Equal(t, "full_legal_name", name)
	})

	t.Run("Derived", func(t *testing.T) {
		tests := []struct {
			field    string
			expected string
		}{
			{"id", "id"},
			{"createdAt", "created_at"},
			{"userID", "user_id"},
			{"HTTPCode", "httpcode"},
			{"appointmentDate", "appointment_date"},
			{"already_snake", "already_snake"},
		}
		fields := make([]schema.Field, 0, len(tests))
		for _, tt := range tests {
			fields = append(fields, schema.Field{Name: tt.field})
		}
		e := &schema.Entity{Name: "Sample", Fields: fields}
		for _, tt := range tests {
			t.Run(tt.field, func(t *testing.T) {
				name, err := e.ColumnName(tt.field)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, name)
			})
		}
	})

	t.Run("ParentFallback", func(t *testing.T) {
		base := &schema.Entity{
			Name:   "BaseEntity",
			Fields: []schema.Field{{Name: "createdAt"}},
		}
		e := &schema.Entity{
			Name:   "Appointment",
			Fields: []schema.Field{{Name: "startTime"}},
			Parent: base,
		}
		name, err := e.ColumnName("createdAt")
		require.NoError(t, err)
		assert.Equal(t, "created_at", name)
	})

	t.Run("GrandparentNotWalked", func(t *testing.T) {
		grand := &schema.Entity{
			Name:   "AuditedEntity",
			Fields: []schema.Field{{Name: "auditedBy"}},
		}
		parent := &schema.Entity{Name: "BaseEntity", Parent: grand}
		e := &schema.Entity{Name: "Order", Parent: parent}
		_, err := e.ColumnName("auditedBy")
		assert.True(t, schema.IsFieldNotFound(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		e := &schema.Entity{Name: "Empty"}
		_, err := e.ColumnName("missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrFieldNotFound))
		assert.True(t, schema.IsFieldNotFound(err))
		assert.EqualError(t, err, `schema: no such field "missing" on Empty`)

		// Wrapped error.
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, schema.IsFieldNotFound(wrapped))

		// Non-matching error.
		assert.False(t, schema.IsFieldNotFound(errors.New("other error")))
		assert.False(t, schema.IsFieldNotFound(nil))
	})

	t.Run("Memoized", func(t *testing.T) {
		e := &schema.Entity{
			Name:   "Slot",
			Fields: []schema.Field{{Name: "startTime"}},
		}
		name, err := e.ColumnName("startTime")
		require.NoError(t, err)
		require.Equal(t, "start_time", name)
		// Same story as table names: the first resolution sticks.
		e.Fields[0].Column = "begins_at"
		name, err = e.ColumnName("startTime")
		require.NoError(t, err)
		assert.Equal(t, "start_time", name)
	})
}

func TestConcurrentResolution(t *testing.T) {
	e := &schema.Entity{
		Name: "Booking",
		Fields: []schema.Field{
			{Name: "id"},
			{Name: "customerID"},
			{Name: "bookedAt"},
		},
	}
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if got := e.TableName(); got != "booking" {
				return fmt.Errorf("table name = %q", got)
			}
			name, err := e.ColumnName("customerID")
			if err != nil {
				return err
			}
			if name != "customer_id" {
				return fmt.Errorf("column name = %q", name)
			}
			_, err = e.ColumnName("missing")
			if !schema.IsFieldNotFound(err) {
				return fmt.Errorf("expected field-not-found, got %v", err)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

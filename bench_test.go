package criteria_test

import (
	"testing"

	"github.com/syssam/criteria"
)

func BenchmarkQuery_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cb := criteria.New()
		orders, _ := cb.From(orderEntity)
		status, _ := orders.C("status")
		_, _ = cb.Query().
			Select(cb.Select(orders)).
			Where(cb.EQ(status, "OPEN")).
			Limit(10).
			SQL()
	}
}

func BenchmarkQuery_WithJoins(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cb := criteria.New()
		orders, _ := cb.From(orderEntity)
		customerID, _ := orders.C("customerId")
		customers, _ := cb.Join(customerEntity, customerID, "id", criteria.LeftOuterJoin)
		name, _ := customers.C("name")
		active, _ := orders.C("active")
		createdAt, _ := orders.C("createdAt")
		id, _ := orders.C("id")
		where, _ := cb.And(
			cb.EQ(active, true),
			cb.Like(name, "john", criteria.LikeStart),
		)
		_, _ = cb.Query().
			Select(cb.MultiSelect(id, name.As("customer_name"))).
			Where(where).
			OrderBy(cb.Desc(createdAt)).
			Limit(20).
			Offset(40).
			SQL()
	}
}

func BenchmarkColumnResolution(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cb := criteria.New()
		orders, _ := cb.From(orderEntity)
		_, _ = orders.C("customerId")
		_, _ = orders.C("createdAt")
	}
}

//go:build unit

package datastore_test

import (
	"context"
	"testing"

	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Matches(t *testing.T) {
	row := datastore.Row{"status": "available", "price": 120.0, "visible": true, "note": nil}

	tests := []struct {
		name   string
		filter datastore.Filter
		want   bool
	}{
		{"eq string", datastore.Col("status").Eq("available"), true},
		{"neq string", datastore.Col("status").Neq("available"), false},
		{"number compare with int", datastore.Col("price").Gte(120), true},
		{"number lt", datastore.Col("price").Lt(100), false},
		{"bool eq", datastore.Col("visible").Eq(true), true},
		{"null is null", datastore.Col("note").IsNull(), true},
		{"missing is null", datastore.Col("absent").IsNull(), true},
		{"null never equals", datastore.Col("note").Eq(""), false},
		{"null never differs", datastore.Col("note").Neq("x"), false},
		{"in", datastore.Col("status").In("booked", "available"), true},
		{"empty in", datastore.Col("status").In(), false},
		{"any of", datastore.AnyOf(datastore.Col("status").Eq("x"), datastore.Col("note").IsNull()), true},
		{"all of", datastore.AllOf(datastore.Col("status").Eq("available"), datastore.Col("price").Gt(200)), false},
		{"strings compare lexically", datastore.Col("status").Gt("a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(row))
		})
	}
}

func TestQuery_ReferencedColumns(t *testing.T) {
	q := datastore.From("t").
		Select("id", "status").
		Eq("type", "double").
		Or(datastore.Col("status").Eq("available"), datastore.Col("status").IsNull()).
		Order("created_at", false)

	want := []string{"id", "status", "type", "created_at"}
	if diff := cmp.Diff(want, q.ReferencedColumns()); diff != "" {
		t.Errorf("ReferencedColumns() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnconfigured(t *testing.T) {
	c := datastore.NewUnconfigured()

	_, err := c.Select(context.Background(), datastore.From("rooms"))
	assert.True(t, errs.Is(err, errs.ErrNotConfigured))

	_, err = c.Insert(context.Background(), "bookings", datastore.Row{"a": 1})
	assert.True(t, errs.Is(err, errs.ErrNotConfigured))
}

func TestRow(t *testing.T) {
	row := datastore.Row{
		"name":   "  Ocean Suite ",
		"price":  "150.5",
		"beds":   2.0,
		"tags":   []any{"wifi", nil, "pool"},
		"absent": nil,
	}

	assert.Equal(t, "Ocean Suite", row.String("name"))
	assert.Equal(t, 150.5, *row.Float("price"))
	assert.Equal(t, 2, *row.Int("beds"))
	assert.Nil(t, row.Float("absent"))
	assert.Nil(t, row.StringPtr("absent"))
	assert.Equal(t, []string{"wifi", "pool"}, row.Strings("tags"))
}

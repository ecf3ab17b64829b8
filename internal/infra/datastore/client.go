// Package datastore is a small table-oriented query surface over a relational
// store. Callers build a Query, and implementations decide how to run it.
package datastore

import (
	"context"

	"resort-booking/internal/pkg/errs"
)

//go:generate mockgen -source=client.go -destination=../../../tests/mock/datastore/mock_client.go -package=datastore

type Client interface {
	Select(ctx context.Context, q *Query) ([]Row, error)
	Insert(ctx context.Context, table string, record Row) (Row, error)
}

// Unconfigured is used when the datastore URL or key is missing. Every call
// fails with errs.ErrNotConfigured.
type Unconfigured struct{}

func NewUnconfigured() *Unconfigured {
	return &Unconfigured{}
}

func (Unconfigured) Select(context.Context, *Query) ([]Row, error) {
	return nil, errs.ErrNotConfigured
}

func (Unconfigured) Insert(context.Context, string, Row) (Row, error) {
	return nil, errs.ErrNotConfigured
}

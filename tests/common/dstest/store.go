//go:build unit || e2e

// Package dstest provides an in-memory datastore.Client for repository and
// use case tests. Tables have a fixed column set; queries that name an
// unknown table or column fail like a schema mismatch would.
package dstest

import (
	"context"
	"sort"
	"sync"

	"resort-booking/internal/infra/datastore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type table struct {
	columns map[string]struct{}
	rows    []datastore.Row
}

type Store struct {
	mu      sync.Mutex
	tables  map[string]*table
	failing map[string]error
	selects []*datastore.Query
}

func NewStore() *Store {
	return &Store{
		tables:  make(map[string]*table),
		failing: make(map[string]error),
	}
}

// CreateTable registers a table with the given columns. Existing rows are
// dropped.
func (s *Store) CreateTable(name string, columns ...string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		cols[c] = struct{}{}
	}
	s.tables[name] = &table{columns: cols}
	return s
}

// Seed appends rows without column checks beyond the table's schema.
func (s *Store) Seed(name string, rows ...datastore.Row) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tables[name]
	for _, r := range rows {
		t.rows = append(t.rows, clone(r))
	}
	return s
}

// Fail makes every call touching table return err.
func (s *Store) Fail(name string, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[name] = err
	return s
}

func (s *Store) Rows(name string) []datastore.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[name]
	if !ok {
		return nil
	}
	out := make([]datastore.Row, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, clone(r))
	}
	return out
}

// Selects returns every query received, including failed ones.
func (s *Store) Selects() []*datastore.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*datastore.Query(nil), s.selects...)
}

func (s *Store) Select(_ context.Context, q *datastore.Query) ([]datastore.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selects = append(s.selects, q)
	t, err := s.lookup(q.Table)
	if err != nil {
		return nil, err
	}
	for _, c := range q.ReferencedColumns() {
		if _, ok := t.columns[c]; !ok {
			return nil, undefinedColumn(q.Table, c)
		}
	}

	var out []datastore.Row
	for _, r := range t.rows {
		if q.MatchesAll(r) {
			out = append(out, project(r, q.Columns))
		}
	}

	if len(q.Orders) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.Orders {
				a, b := out[i][o.Column], out[j][o.Column]
				if datastore.Col(o.Column).Eq(b).Matches(datastore.Row{o.Column: a}) {
					continue
				}
				less := datastore.Col(o.Column).Lt(b).Matches(datastore.Row{o.Column: a})
				if o.Ascending {
					return less
				}
				return !less
			}
			return false
		})
	}
	if q.LimitN > 0 && len(out) > q.LimitN {
		out = out[:q.LimitN]
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, name string, record datastore.Row) (datastore.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	for c := range record {
		if _, ok := t.columns[c]; !ok {
			return nil, undefinedColumn(name, c)
		}
	}

	row := clone(record)
	if _, ok := t.columns["id"]; ok && row["id"] == nil {
		row["id"] = uuid.NewString()
	}
	t.rows = append(t.rows, row)
	return clone(row), nil
}

func (s *Store) lookup(name string) (*table, error) {
	if err, ok := s.failing[name]; ok {
		return nil, err
	}
	t, ok := s.tables[name]
	if !ok {
		return nil, &pgconn.PgError{Code: "42P01", Message: `relation "` + name + `" does not exist`}
	}
	return t, nil
}

func undefinedColumn(tableName, col string) error {
	return &pgconn.PgError{Code: "42703", Message: `column "` + col + `" of relation "` + tableName + `" does not exist`}
}

func project(r datastore.Row, cols []string) datastore.Row {
	if len(cols) == 0 {
		return clone(r)
	}
	out := make(datastore.Row, len(cols))
	for _, c := range cols {
		out[c] = r[c]
	}
	return out
}

func clone(r datastore.Row) datastore.Row {
	out := make(datastore.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

var _ datastore.Client = (*Store)(nil)

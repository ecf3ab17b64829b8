package datastore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres runs queries through a pgx pool. Each call gets its own timeout
// and is attempted exactly once.
type Postgres struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewPostgres(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *Postgres {
	return &Postgres{pool: pool, timeout: timeout, logger: logger}
}

func (p *Postgres) Select(ctx context.Context, q *Query) ([]Row, error) {
	sql, args, err := CompileSelect(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "select "+q.Table)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, errs.Wrap(err, "select "+q.Table)
	}

	p.logger.Debug("datastore select",
		slog.String("table", q.Table),
		slog.Int("rows", len(out)))
	return out, nil
}

func (p *Postgres) Insert(ctx context.Context, table string, record Row) (Row, error) {
	sql, args, err := CompileInsert(table, record)
	if err != nil {
		return nil, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "insert "+table)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, errs.Wrap(err, "insert "+table)
	}
	if len(out) == 0 {
		return Row{}, nil
	}
	return out[0], nil
}

func (p *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func collectRows(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = pgconv.NormalizeValue(fd.DataTypeOID, values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CompileSelect renders q as parameterized SQL. Identifiers are quoted, all
// values travel as arguments.
func CompileSelect(q *Query) (string, []any, error) {
	if q == nil || q.Table == "" {
		return "", nil, errs.New("datastore: query has no table")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(quoteList(q.Columns))
	}
	b.WriteString(" FROM ")
	b.WriteString(quote(q.Table))

	var args []any
	if len(q.Filters) > 0 {
		where, err := compileFilter(AllOf(q.Filters...), &args)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	if len(q.Orders) > 0 {
		parts := make([]string, len(q.Orders))
		for i, o := range q.Orders {
			dir := "DESC"
			if o.Ascending {
				dir = "ASC"
			}
			parts[i] = quote(o.Column) + " " + dir
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if q.LimitN > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.LimitN))
	}

	return b.String(), args, nil
}

// CompileInsert renders a single-row insert returning the stored row.
// Columns are emitted in sorted order.
func CompileInsert(table string, record Row) (string, []any, error) {
	if table == "" {
		return "", nil, errs.New("datastore: insert has no table")
	}
	if len(record) == 0 {
		return "", nil, errs.New("datastore: insert has no columns")
	}

	cols := make([]string, 0, len(record))
	for c := range record {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	args := make([]any, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		args[i] = record[c]
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		quote(table), quoteList(cols), strings.Join(placeholders, ", "))
	return sql, args, nil
}

func compileFilter(f Filter, args *[]any) (string, error) {
	switch f.kind {
	case kindAll, kindAny:
		if len(f.Children) == 0 {
			if f.kind == kindAll {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		joiner := " AND "
		if f.kind == kindAny {
			joiner = " OR "
		}
		parts := make([]string, 0, len(f.Children))
		for _, c := range f.Children {
			s, err := compileFilter(c, args)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, joiner) + ")", nil
	}

	if f.Column == "" {
		return "", errs.New("datastore: filter has no column")
	}
	col := quote(f.Column)

	switch f.Op {
	case OpIsNull:
		return col + " IS NULL", nil
	case OpIn:
		if len(f.Values) == 0 {
			return "FALSE", nil
		}
		ph := make([]string, len(f.Values))
		for i, v := range f.Values {
			*args = append(*args, v)
			ph[i] = "$" + strconv.Itoa(len(*args))
		}
		return col + " IN (" + strings.Join(ph, ", ") + ")", nil
	case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		*args = append(*args, f.Value)
		return col + " " + string(f.Op) + " $" + strconv.Itoa(len(*args)), nil
	default:
		return "", errs.New("datastore: unsupported operator " + string(f.Op))
	}
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

func quoteList(idents []string) string {
	parts := make([]string, len(idents))
	for i, id := range idents {
		parts[i] = quote(id)
	}
	return strings.Join(parts, ", ")
}

package datastore

type Op string

const (
	OpEq     Op = "="
	OpNeq    Op = "<>"
	OpLt     Op = "<"
	OpLte    Op = "<="
	OpGt     Op = ">"
	OpGte    Op = ">="
	OpIn     Op = "IN"
	OpIsNull Op = "IS NULL"
)

type filterKind int

const (
	kindLeaf filterKind = iota
	kindAll
	kindAny
)

// Filter is a predicate over one row. Leaves compare a column; AllOf and
// AnyOf combine children.
type Filter struct {
	kind     filterKind
	Column   string
	Op       Op
	Value    any
	Values   []any
	Children []Filter
}

type Column string

func Col(name string) Column {
	return Column(name)
}

func (c Column) leaf(op Op, v any) Filter {
	return Filter{kind: kindLeaf, Column: string(c), Op: op, Value: v}
}

func (c Column) Eq(v any) Filter  { return c.leaf(OpEq, v) }
func (c Column) Neq(v any) Filter { return c.leaf(OpNeq, v) }
func (c Column) Lt(v any) Filter  { return c.leaf(OpLt, v) }
func (c Column) Lte(v any) Filter { return c.leaf(OpLte, v) }
func (c Column) Gt(v any) Filter  { return c.leaf(OpGt, v) }
func (c Column) Gte(v any) Filter { return c.leaf(OpGte, v) }
func (c Column) IsNull() Filter   { return c.leaf(OpIsNull, nil) }

func (c Column) In(vs ...any) Filter {
	return Filter{kind: kindLeaf, Column: string(c), Op: OpIn, Values: vs}
}

func AllOf(fs ...Filter) Filter {
	return Filter{kind: kindAll, Children: fs}
}

func AnyOf(fs ...Filter) Filter {
	return Filter{kind: kindAny, Children: fs}
}

func (f Filter) IsAll() bool  { return f.kind == kindAll }
func (f Filter) IsAny() bool  { return f.kind == kindAny }
func (f Filter) IsLeaf() bool { return f.kind == kindLeaf }

type Order struct {
	Column    string
	Ascending bool
}

// Query is a single-table select. Top-level filters are ANDed.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Orders  []Order
	LimitN  int
}

func From(table string) *Query {
	return &Query{Table: table}
}

func (q *Query) Select(cols ...string) *Query {
	q.Columns = append(q.Columns, cols...)
	return q
}

func (q *Query) Where(fs ...Filter) *Query {
	q.Filters = append(q.Filters, fs...)
	return q
}

func (q *Query) Eq(col string, v any) *Query {
	return q.Where(Col(col).Eq(v))
}

func (q *Query) In(col string, vs ...any) *Query {
	return q.Where(Col(col).In(vs...))
}

// Or adds one disjunction of fs to the conjunction.
func (q *Query) Or(fs ...Filter) *Query {
	return q.Where(AnyOf(fs...))
}

func (q *Query) Order(col string, ascending bool) *Query {
	q.Orders = append(q.Orders, Order{Column: col, Ascending: ascending})
	return q
}

func (q *Query) Limit(n int) *Query {
	q.LimitN = n
	return q
}

// ReferencedColumns lists every column named by the select list, filters
// and ordering, in first-seen order.
func (q *Query) ReferencedColumns() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range q.Columns {
		add(c)
	}
	var walk func(fs []Filter)
	walk = func(fs []Filter) {
		for _, f := range fs {
			if f.kind == kindLeaf {
				add(f.Column)
				continue
			}
			walk(f.Children)
		}
	}
	walk(q.Filters)
	for _, o := range q.Orders {
		add(o.Column)
	}
	return out
}

// StringValues converts a string slice for use with In.
func StringValues(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

package datastore

import (
	"fmt"
	"strings"
)

// Matches evaluates the filter against a row in memory with SQL-like null
// handling: comparisons against null are false.
func (f Filter) Matches(row Row) bool {
	switch f.kind {
	case kindAll:
		for _, c := range f.Children {
			if !c.Matches(row) {
				return false
			}
		}
		return true
	case kindAny:
		for _, c := range f.Children {
			if c.Matches(row) {
				return true
			}
		}
		return false
	}

	v := row[f.Column]
	switch f.Op {
	case OpIsNull:
		return v == nil
	case OpIn:
		if v == nil {
			return false
		}
		for _, want := range f.Values {
			if cmp, ok := compare(v, want); ok && cmp == 0 {
				return true
			}
		}
		return false
	}

	if v == nil || f.Value == nil {
		return false
	}
	cmp, ok := compare(v, f.Value)
	if !ok {
		return false
	}
	switch f.Op {
	case OpEq:
		return cmp == 0
	case OpNeq:
		return cmp != 0
	case OpLt:
		return cmp < 0
	case OpLte:
		return cmp <= 0
	case OpGt:
		return cmp > 0
	case OpGte:
		return cmp >= 0
	default:
		return false
	}
}

// MatchesAll reports whether the row passes every top-level filter.
func (q *Query) MatchesAll(row Row) bool {
	for _, f := range q.Filters {
		if !f.Matches(row) {
			return false
		}
	}
	return true
}

func compare(a, b any) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if _, isStr := a.(string); !isStr {
			if fb, ok := toFloat(b); ok {
				switch {
				case fa < fb:
					return -1, true
				case fa > fb:
					return 1, true
				default:
					return 0, true
				}
			}
		}
	}
	if ba, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0, false
		}
		if ba == bb {
			return 0, true
		}
		return 1, true
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b)), true
}

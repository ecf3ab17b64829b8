package datastore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one record keyed by column name. Values are loosely typed: strings,
// float64/int numbers, bools, time.Time, slices, maps or nil.
type Row map[string]any

// String returns the trimmed textual form of a column, "" for null.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (r Row) StringPtr(col string) *string {
	if r[col] == nil {
		return nil
	}
	s := r.String(col)
	return &s
}

// Float parses numeric columns, including numbers stored as text. Empty or
// non-numeric values yield nil.
func (r Row) Float(col string) *float64 {
	f, ok := toFloat(r[col])
	if !ok {
		return nil
	}
	return &f
}

func (r Row) Int(col string) *int {
	f, ok := toFloat(r[col])
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}

func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

func (r Row) Time(col string) *time.Time {
	switch v := r[col].(type) {
	case time.Time:
		t := v.UTC()
		return &t
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil
		}
		return &t
	default:
		return nil
	}
}

// Strings reads an array column. JSON-encoded arrays are decoded.
func (r Row) Strings(col string) []string {
	switch v := r[col].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if it == nil {
				continue
			}
			out = append(out, fmt.Sprint(it))
		}
		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

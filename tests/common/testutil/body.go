//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyEdit changes one key of a request body map.
type BodyEdit func(map[string]any)

// Set overwrites key; a nil value removes it.
func Set(key string, value any) BodyEdit {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Rename moves the value under from to to, keeping absent keys absent.
func Rename(from, to string) BodyEdit {
	return func(m map[string]any) {
		if v, ok := m[from]; ok {
			delete(m, from)
			m[to] = v
		}
	}
}

// BodyMap round-trips v through JSON so tests can vary a typed request body
// key by key.
func BodyMap(t *testing.T, v any, edits ...BodyEdit) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, e := range edits {
		e(m)
	}
	return m
}

//go:build unit

package validate_test

import (
	"strings"
	"testing"

	"resort-booking/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "keeps leading plus", input: " +1 (555) 123-4567 ", want: "+15551234567"},
		{name: "strips separators", input: "555.123.4567", want: "5551234567"},
		{name: "plus not at start is dropped", input: "1+555", want: "1555"},
		{name: "no digits", input: "call me", want: ""},
		{name: "plus only", input: "+", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.NormalizePhone(tt.input))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", "+", "++44 20 7946 0958", "+1-800-FLOWERS", "00 44 (0) 20",
		"abc", "١٢٣٤٥٦٧", "+ 1 2 3", "\t+49\n30 1234567 ", "++", "0",
	}

	for _, in := range inputs {
		once := validate.NormalizePhone(in)
		assert.Equal(t, once, validate.NormalizePhone(once), "input %q", in)
	}
}

func TestIsValidPhone(t *testing.T) {
	t.Run("digit-only lengths 7 to 15 are valid", func(t *testing.T) {
		for n := 7; n <= 15; n++ {
			assert.True(t, validate.IsValidPhone(strings.Repeat("5", n)), "length %d", n)
		}
	})

	t.Run("lengths 6 and 16 are invalid", func(t *testing.T) {
		assert.False(t, validate.IsValidPhone(strings.Repeat("5", 6)))
		assert.False(t, validate.IsValidPhone(strings.Repeat("5", 16)))
	})

	t.Run("formatting is ignored", func(t *testing.T) {
		assert.True(t, validate.IsValidPhone("+1 (555) 123-4567"))
		assert.True(t, validate.IsValidPhone("  555-1234  "))
	})

	t.Run("no digits", func(t *testing.T) {
		assert.False(t, validate.IsValidPhone(""))
		assert.False(t, validate.IsValidPhone("+"))
		assert.False(t, validate.IsValidPhone("phone"))
	})
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"  guest@resort.example.com  ", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"a@b.c", false},
		{"@b.co", false},
		{"a@@b.co", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.IsValidEmail(tt.input))
		})
	}
}

func TestDates(t *testing.T) {
	assert.True(t, validate.IsYMD("2025-02-30"))
	assert.False(t, validate.IsCalendarDate("2025-02-30"))
	assert.True(t, validate.IsCalendarDate("2024-02-29"))
	assert.False(t, validate.IsYMD("2025-6-1"))
	assert.False(t, validate.IsYMD("2025-06-01T00:00:00Z"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, validate.IsUUID("3f2504e0-4f89-41d3-9a0c-0305e82c3301"))
	assert.True(t, validate.IsUUID("3F2504E0-4F89-41D3-9A0C-0305E82C3301"))
	assert.False(t, validate.IsUUID("not-a-uuid"))
	assert.False(t, validate.IsUUID("3f2504e0-4f89-61d3-9a0c-0305e82c3301"), "version 6 nibble")
	assert.False(t, validate.IsUUID("3f2504e0-4f89-41d3-7a0c-0305e82c3301"), "variant nibble")
	assert.False(t, validate.IsUUID("00000000-0000-0000-0000-000000000000"))
}

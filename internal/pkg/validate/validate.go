// Package validate holds the pure input checks shared by the booking and
// quote flows. None of these functions have side effects.
package validate

import (
	"regexp"
	"strings"
	"time"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
	dateLayout     = "2006-01-02"
)

var (
	// Coarse local@domain.tld shape. Not RFC 5322: quoted locals, IP
	// literals and single-letter TLDs are rejected, and some invalid
	// addresses (e.g. "a@b..co") are accepted.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// 8-4-4-4-12 hex with version nibble 1-5 and RFC 4122 variant nibble.
	uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

// NormalizePhone trims the input and strips every non-digit. A leading '+'
// survives. Input without digits yields "".
func NormalizePhone(input string) string {
	raw := strings.TrimSpace(input)
	hadPlus := strings.HasPrefix(raw, "+")

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if hadPlus {
		return "+" + digits
	}
	return digits
}

// IsValidPhone requires 7 to 15 digits after normalization.
func IsValidPhone(input string) bool {
	digits := strings.TrimPrefix(NormalizePhone(input), "+")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(digits) >= minPhoneDigits && len(digits) <= maxPhoneDigits
}

// IsValidEmail is a syntactic shape check only, see emailPattern.
func IsValidEmail(input string) bool {
	return emailPattern.MatchString(strings.TrimSpace(input))
}

// IsYMD reports whether s has the strict YYYY-MM-DD shape. It does not
// check that the date exists; use IsCalendarDate for that.
func IsYMD(s string) bool {
	return ymdPattern.MatchString(s)
}

// IsCalendarDate reports whether s is YYYY-MM-DD and names a real date.
func IsCalendarDate(s string) bool {
	if !IsYMD(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsUUID reports whether s is a canonical v1-v5 UUID string.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

package booking

import (
	"resort-booking/internal/pkg/validate"
)

// StayDates is a half-open night range [start, end) in YYYY-MM-DD form.
// Lexicographic comparison of the strings equals calendar comparison.
type StayDates struct {
	start string
	end   string
}

// NewStayDates applies the booking date rules in order: format, not in the
// past relative to today, and end strictly after start.
func NewStayDates(start, end, today string) (StayDates, error) {
	if !validate.IsCalendarDate(start) || !validate.IsCalendarDate(end) {
		return StayDates{}, ErrInvalidDateFormat
	}
	if start < today {
		return StayDates{}, ErrCheckInInPast
	}
	if end <= start {
		return StayDates{}, ErrInvertedRange
	}
	return StayDates{start: start, end: end}, nil
}

// NewOptionalStayDates validates a range where both ends may be absent.
// No past check is applied.
func NewOptionalStayDates(start, end string) (*StayDates, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start != "" && !validate.IsCalendarDate(start) {
		return nil, ErrInvalidDateFormat
	}
	if end != "" && !validate.IsCalendarDate(end) {
		return nil, ErrInvalidDateFormat
	}
	if start != "" && end != "" && end <= start {
		return nil, ErrInvertedRange
	}
	return &StayDates{start: start, end: end}, nil
}

func (s StayDates) Start() string { return s.start }
func (s StayDates) End() string   { return s.end }

// Contains reports whether date is one of the stay's nights.
func (s StayDates) Contains(date string) bool {
	return date >= s.start && date < s.end
}


package availability

import (
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/validate"
)

var (
	ErrMissingFields     = errs.NewValidation("roomType, checkIn, and checkOut are required")
	ErrInvalidDateFormat = errs.NewValidation("Invalid date format")
)

// Scope selects which reservations consume capacity: those tied to UnitIDs
// when present, otherwise those labelled RoomType.
type Scope struct {
	UnitIDs  []string
	RoomType string
}

// Occupancy is what the reservation lookup saw: the unit id of every row
// that had one, and the total row count.
type Occupancy struct {
	UnitIDs []string
	Rows    int
}

// DateRange is the queried stay. Both bounds are YYYY-MM-DD and the order is
// not enforced.
type DateRange struct {
	CheckIn  string
	CheckOut string
}

// OverlapBounds gives the inclusive limits a reservation [start, end] must
// meet to touch the range: start <= latestStart and end >= earliestEnd.
// A stay ending on the query's check-in day therefore counts as overlapping.
// TODO: revisit once same-day turnover is confirmed to be allowed; switching
// to start < checkOut && end > checkIn changes observable results.
func (r DateRange) OverlapBounds() (latestStart, earliestEnd string) {
	return r.CheckOut, r.CheckIn
}

func (r DateRange) IsWellFormed() bool {
	return validate.IsYMD(r.CheckIn) && validate.IsYMD(r.CheckOut)
}

type Result struct {
	Available      bool
	Remaining      int
	Capacity       int
	RequestedRooms int
}

// Compute derives the result from unit capacity and reserved count.
func Compute(capacity, reserved, requested int) Result {
	if requested < 1 {
		requested = 1
	}
	if capacity < 0 {
		capacity = 0
	}
	remaining := capacity - reserved
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Available:      remaining >= requested,
		Remaining:      remaining,
		Capacity:       capacity,
		RequestedRooms: requested,
	}
}

// ReservedCount counts distinct non-empty unit ids; when no row carries a
// unit id, every overlapping row consumes one unit.
func (o Occupancy) ReservedCount() int {
	seen := make(map[string]struct{}, len(o.UnitIDs))
	for _, id := range o.UnitIDs {
		if id == "" {
			continue
		}
		seen[id] = struct{}{}
	}
	if len(seen) > 0 {
		return len(seen)
	}
	return o.Rows
}

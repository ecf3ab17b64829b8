package room

import "time"

// Room is a catalog entry maintained by back-office tooling. It is read-only
// here.
type Room struct {
	ID          string
	Name        string
	Slug        *string
	Description *string
	Capacity    *int
	Beds        *int
	Bathrooms   *int
	SizeM2      *float64
	Price       *float64
	Currency    string
	Amenities   []string
	Images      []string
	Visible     bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Rates holds the cheapest nightly rate per board tier for a room type.
type Rates struct {
	BedOnly         *float64
	BedAndBreakfast *float64
	HalfBoard       *float64
	FullBoard       *float64
}

// MinimumRates folds per-unit rates into per-tier minimums, ignoring nulls.
func MinimumRates(units []Rates) Rates {
	var out Rates
	for _, u := range units {
		out.BedOnly = minOf(out.BedOnly, u.BedOnly)
		out.BedAndBreakfast = minOf(out.BedAndBreakfast, u.BedAndBreakfast)
		out.HalfBoard = minOf(out.HalfBoard, u.HalfBoard)
		out.FullBoard = minOf(out.FullBoard, u.FullBoard)
	}
	return out
}

func minOf(cur, v *float64) *float64 {
	if v == nil {
		return cur
	}
	if cur == nil || *v < *cur {
		x := *v
		return &x
	}
	return cur
}

package booking

import (
	"time"

	"github.com/jinzhu/copier"
)

// LegacyRequest is the flat booking_requests shape older consumers read.
// Fields named like a Reservation or QuoteRequest accessor are filled by
// copier; the rest are set explicitly.
type LegacyRequest struct {
	Type        string
	FirstName   *string
	LastName    *string
	FullName    *string
	Email       string
	Phone       string
	StartDate   string
	EndDate     string
	Guests      int
	Children    int
	Rooms       int
	Room        *string
	Nationality *string
	IDDocument  *string
	Notes       *string
	CreatedAt   time.Time
}

func LegacyFromReservation(r *Reservation) (LegacyRequest, error) {
	var out LegacyRequest
	if err := copier.Copy(&out, r); err != nil {
		return LegacyRequest{}, err
	}
	out.Type = r.requestType
	out.Guests = r.adults
	out.Room = r.roomLabel
	return out, nil
}

func LegacyFromQuote(q *QuoteRequest) (LegacyRequest, error) {
	var out LegacyRequest
	if err := copier.Copy(&out, q); err != nil {
		return LegacyRequest{}, err
	}
	out.Type = q.inquiryType
	out.Guests = q.adults
	if len(q.roomTypes) > 0 {
		room := q.roomTypes[0]
		out.Room = &room
	}
	return out, nil
}

//go:build unit || e2e

package builder

import (
	"resort-booking/internal/domain/booking"
)

// BookingBuilder produces booking inputs that pass every rule when "today"
// is DefaultToday.
type BookingBuilder struct {
	StartDate   string
	EndDate     string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Type        string
	Room        string
	BoardType   string
	BoardPlan   []booking.BoardNight
	RoomID      string
	RoomTypes   []string
	Adults      int
	Children    int
	Rooms       int
	TotalPrice  *float64
	Notes       string
	Nationality string
	IDDocument  string
}

const DefaultToday = "2025-06-01"

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 (555) 123-4567",
		Type:      "room",
		RoomTypes: []string{"double"},
		Adults:    2,
		Rooms:     1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate, b.EndDate = start, end
	return b
}

func (b *BookingBuilder) WithBoardPlan(nights ...booking.BoardNight) *BookingBuilder {
	b.BoardPlan = nights
	return b
}

func (b *BookingBuilder) BuildSubmission() booking.Submission {
	return booking.Submission{
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		Type:        b.Type,
		Room:        b.Room,
		BoardType:   b.BoardType,
		BoardPlan:   b.BoardPlan,
		RoomID:      b.RoomID,
		RoomTypes:   b.RoomTypes,
		Adults:      b.Adults,
		Children:    b.Children,
		Rooms:       b.Rooms,
		TotalPrice:  b.TotalPrice,
		Notes:       b.Notes,
		Nationality: b.Nationality,
		IDDocument:  b.IDDocument,
	}
}

// BuildRequestBody renders the submission as the JSON body the booking
// endpoint accepts.
func (b *BookingBuilder) BuildRequestBody() map[string]any {
	body := map[string]any{
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"first_name": b.FirstName,
		"last_name":  b.LastName,
		"email":      b.Email,
		"phone":      b.Phone,
		"type":       b.Type,
		"room_types": b.RoomTypes,
		"guests":     b.Adults,
		"children":   b.Children,
		"rooms":      b.Rooms,
	}
	if b.RoomID != "" {
		body["room_id"] = b.RoomID
	}
	if b.BoardType != "" {
		body["board_type"] = b.BoardType
	}
	if len(b.BoardPlan) > 0 {
		body["board_plan"] = b.BoardPlan
	}
	if b.TotalPrice != nil {
		body["total_price"] = *b.TotalPrice
	}
	return body
}

func (b *BookingBuilder) BuildQuoteSubmission() booking.QuoteSubmission {
	return booking.QuoteSubmission{
		InquiryType: b.Type,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Adults:      b.Adults,
		Children:    b.Children,
		Rooms:       b.Rooms,
		RoomTypes:   b.RoomTypes,
	}
}

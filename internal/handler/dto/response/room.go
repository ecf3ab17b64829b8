package response

import (
	"time"

	"resort-booking/internal/domain/room"
)

type RoomResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        *string    `json:"slug"`
	Description *string    `json:"description"`
	Capacity    *int       `json:"capacity"`
	Beds        *int       `json:"beds"`
	Bathrooms   *int       `json:"bathrooms"`
	SizeM2      *float64   `json:"size_m2"`
	Price       *float64   `json:"price"`
	Currency    string     `json:"currency"`
	Amenities   []string   `json:"amenities"`
	Images      []string   `json:"images"`
	Visible     bool       `json:"visible"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func FromRoom(r room.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Capacity:    r.Capacity,
		Beds:        r.Beds,
		Bathrooms:   r.Bathrooms,
		SizeM2:      r.SizeM2,
		Price:       r.Price,
		Currency:    r.Currency,
		Amenities:   nonNil(r.Amenities),
		Images:      nonNil(r.Images),
		Visible:     r.Visible,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRooms(rs []room.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRoom(r))
	}
	return out
}

type RoomTypesResponse struct {
	Types []string `json:"types"`
}

type RatesBody struct {
	BedOnly         *float64 `json:"bed_only"`
	BedAndBreakfast *float64 `json:"bed_and_breakfast"`
	HalfBoard       *float64 `json:"half_board"`
	FullBoard       *float64 `json:"full_board"`
}

type RatesResponse struct {
	Type  string    `json:"type"`
	Rates RatesBody `json:"rates"`
}

func FromRates(roomType string, r room.Rates) RatesResponse {
	return RatesResponse{
		Type: roomType,
		Rates: RatesBody{
			BedOnly:         r.BedOnly,
			BedAndBreakfast: r.BedAndBreakfast,
			HalfBoard:       r.HalfBoard,
			FullBoard:       r.FullBoard,
		},
	}
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

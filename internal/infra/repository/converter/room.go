package converter

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/pkg/ptr"
)

func RowToRoom(row datastore.Row) room.Room {
	currency := booking.Currency
	if c := ptr.NonEmpty(row.String("currency")); c != nil {
		currency = *c
	}
	return room.Room{
		ID:          row.String("id"),
		Name:        row.String("name"),
		Slug:        row.StringPtr("slug"),
		Description: row.StringPtr("description"),
		Capacity:    row.Int("capacity"),
		Beds:        row.Int("beds"),
		Bathrooms:   row.Int("bathrooms"),
		SizeM2:      row.Float("size_m2"),
		Price:       row.Float("price"),
		Currency:    currency,
		Amenities:   row.Strings("amenities"),
		Images:      row.Strings("images"),
		Visible:     row.Bool("visible"),
		CreatedAt:   row.Time("created_at"),
		UpdatedAt:   row.Time("updated_at"),
	}
}

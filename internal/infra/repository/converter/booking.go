package converter

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra/datastore"
)

func ReservationToRow(res *booking.Reservation) datastore.Row {
	return datastore.Row{
		"id":             res.ID().String(),
		"room_id":        optional(res.RoomID()),
		"room_type":      optional(res.RoomType()),
		"room_types":     stringsOrEmpty(res.RoomTypes()),
		"first_name":     optional(res.FirstName()),
		"last_name":      optional(res.LastName()),
		"email":          res.Email(),
		"phone":          nullIfEmpty(res.Phone()),
		"start_date":     res.StartDate(),
		"end_date":       res.EndDate(),
		"guests":         res.Adults(),
		"children":       res.Children(),
		"rooms":          res.Rooms(),
		"board_type":     optional(res.BoardType()),
		"board_plan":     res.BoardPlan().Nights(),
		"total_price":    optionalFloat(res.TotalPrice()),
		"currency":       res.Currency(),
		"status":         res.Status().String(),
		"payment_status": res.PaymentStatus(),
		"notes":          optional(res.Notes()),
		"created_at":     res.CreatedAt(),
	}
}

func QuoteToRow(q *booking.QuoteRequest) datastore.Row {
	return datastore.Row{
		"id":           q.ID().String(),
		"inquiry_type": q.InquiryType(),
		"first_name":   optional(q.FirstName()),
		"last_name":    optional(q.LastName()),
		"email":        q.Email(),
		"phone":        nullIfEmpty(q.Phone()),
		"start_date":   nullIfEmpty(q.StartDate()),
		"end_date":     nullIfEmpty(q.EndDate()),
		"adults":       q.Adults(),
		"children":     q.Children(),
		"rooms":        q.Rooms(),
		"room_types":   stringsOrEmpty(q.RoomTypes()),
		"notes":        optional(q.Notes()),
		"status":       q.Status(),
		"created_at":   q.CreatedAt(),
	}
}

func LegacyRequestToRow(l booking.LegacyRequest) datastore.Row {
	return datastore.Row{
		"type":        nullIfEmpty(l.Type),
		"first_name":  optional(l.FirstName),
		"last_name":   optional(l.LastName),
		"full_name":   optional(l.FullName),
		"email":       nullIfEmpty(l.Email),
		"phone":       nullIfEmpty(l.Phone),
		"start_date":  nullIfEmpty(l.StartDate),
		"end_date":    nullIfEmpty(l.EndDate),
		"guests":      l.Guests,
		"children":    l.Children,
		"rooms":       l.Rooms,
		"room":        optional(l.Room),
		"nationality": optional(l.Nationality),
		"id_document": optional(l.IDDocument),
		"notes":       optional(l.Notes),
		"created_at":  l.CreatedAt,
	}
}

// optional unwraps a nullable string so the datastore sees a typed value or
// a bare nil.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optionalFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func stringsOrEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

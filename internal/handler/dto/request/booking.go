package request

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

// Accepted input keys, in precedence order.
var (
	roomTypeKeys  = []string{"roomType", "room_type", "room"}
	checkInKeys   = []string{"checkIn", "check_in", "startDate", "start_date"}
	checkOutKeys  = []string{"checkOut", "check_out", "endDate", "end_date"}
	roomCountKeys = []string{"rooms", "quantity"}
	unitIDKeys    = []string{"roomIds", "room_ids"}

	bookingStartKeys = []string{"start_date", "check_in", "checkIn", "startDate"}
	bookingEndKeys   = []string{"end_date", "check_out", "checkOut", "endDate"}
	adultKeys        = []string{"guests", "adults"}
	childKeys        = []string{"children", "kids"}
	bookingRoomKeys  = []string{"rooms", "num_rooms"}
	inquiryTypeKeys  = []string{"inquiry_type", "type"}
)

func (b Body) ToAvailabilityInput() queries.AvailabilityInput {
	ids := b.Strings(unitIDKeys...)
	if len(ids) == 0 {
		if id := b.String("room_id"); id != "" {
			ids = []string{id}
		}
	}
	return queries.AvailabilityInput{
		RoomType:       b.String(roomTypeKeys...),
		UnitIDs:        ids,
		CheckIn:        b.String(checkInKeys...),
		CheckOut:       b.String(checkOutKeys...),
		RequestedRooms: b.Int(1, 1, roomCountKeys...),
	}
}

func (b Body) ToBookingSubmission() booking.Submission {
	return booking.Submission{
		StartDate:   b.String(bookingStartKeys...),
		EndDate:     b.String(bookingEndKeys...),
		FirstName:   b.String("first_name", "firstName"),
		LastName:    b.String("last_name", "lastName"),
		Email:       b.String("email"),
		Phone:       b.String("phone"),
		Type:        b.String("type"),
		Room:        b.String("room"),
		BoardType:   b.String("board_type", "boardType"),
		BoardPlan:   booking.ParseBoardPlan(b.Raw("board_plan", "boardPlan")),
		RoomID:      b.String("room_id", "roomId"),
		RoomTypes:   booking.ParseRoomTypes(b.Raw("room_types", "roomTypes")),
		Adults:      b.Int(1, 1, adultKeys...),
		Children:    b.Int(0, 0, childKeys...),
		Rooms:       b.Int(1, 1, bookingRoomKeys...),
		TotalPrice:  b.Float("total_price", "totalPrice"),
		Notes:       b.String("notes"),
		Nationality: b.String("nationality"),
		IDDocument:  b.String("id_document"),
	}
}

func (b Body) ToQuoteSubmission() booking.QuoteSubmission {
	return booking.QuoteSubmission{
		InquiryType: b.String(inquiryTypeKeys...),
		FirstName:   b.String("first_name", "firstName"),
		LastName:    b.String("last_name", "lastName"),
		Email:       b.String("email"),
		Phone:       b.String("phone"),
		StartDate:   b.String(bookingStartKeys...),
		EndDate:     b.String(bookingEndKeys...),
		Adults:      b.Int(1, 1, "adults", "guests"),
		Children:    b.Int(0, 0, childKeys...),
		Rooms:       b.Int(1, 1, bookingRoomKeys...),
		RoomTypes:   booking.ParseRoomTypes(b.Raw("room_types", "roomTypes")),
		Notes:       b.String("notes"),
	}
}

func (b Body) ToContactInput() commands.ContactInput {
	return commands.ContactInput{
		Name:    b.String("name"),
		Email:   b.String("email"),
		Company: b.String("company"),
		Subject: b.String("subject"),
		Message: b.String("message"),
	}
}

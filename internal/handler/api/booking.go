package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	MsgBookingConfirmed = "Booking confirmed! We will contact you soon with details."
	MsgQuoteSubmitted   = "Quote request submitted successfully. We will contact you shortly."
)

type BookingHandler struct {
	availability queries.AvailabilityQueries
	bookings     commands.BookingCommands
	quotes       commands.QuoteCommands
	contacts     commands.ContactCommands
}

func NewBookingHandler(
	availability queries.AvailabilityQueries,
	bookings commands.BookingCommands,
	quotes commands.QuoteCommands,
	contacts commands.ContactCommands,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		bookings:     bookings,
		quotes:       quotes,
		contacts:     contacts,
	}
}

// @Summary Check availability
// @Description Remaining capacity of a room type (or explicit unit ids) for a date range
// @Tags booking
// @Accept json
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	body, err := reqdto.BindBody(c)
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	result, err := h.availability.CheckAvailability(c.Request.Context(), body.ToAvailabilityInput())
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Submit booking
// @Description Validate, normalize and store a booking request with status pending
// @Tags booking
// @Accept json
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} resdto.MessageResponse
// @Failure 409 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /api/booking [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	body, err := reqdto.BindBody(c)
	if err != nil {
		httperr.Abort(c, httperr.KeyMessage, err)
		return
	}

	id, err := h.bookings.SubmitBooking(c.Request.Context(), body.ToBookingSubmission())
	if err != nil {
		httperr.Abort(c, httperr.KeyMessage, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: MsgBookingConfirmed, ID: id.String()})
}

// @Summary Submit quote request
// @Description Store a non-binding inquiry; only email is required
// @Tags booking
// @Accept json
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/quote [post]
func (h *BookingHandler) SubmitQuote(c *gin.Context) {
	body, err := reqdto.BindBody(c)
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	id, err := h.quotes.SubmitQuote(c.Request.Context(), body.ToQuoteSubmission())
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: MsgQuoteSubmitted, ID: id.String()})
}

// @Summary Contact form
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} resdto.AckResponse
// @Failure 400 {object} map[string]string
// @Router /api/contact [post]
func (h *BookingHandler) SubmitContact(c *gin.Context) {
	body, err := reqdto.BindBody(c)
	if err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	if err := h.contacts.SubmitContact(c.Request.Context(), body.ToContactInput()); err != nil {
		httperr.Abort(c, httperr.KeyError, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AckResponse{OK: true})
}

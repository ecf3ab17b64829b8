package repository

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	tableBookings        = "bookings"
	tableQuotes          = "quotes"
	tableBookingRequests = "booking_requests"
)

type BookingRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewBookingRepository(client datastore.Client, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{client: client, logger: logger}
}

// Create inserts the reservation exactly once. No retry on failure.
func (r *BookingRepository) Create(ctx context.Context, res *booking.Reservation) (uuid.UUID, error) {
	if _, err := r.client.Insert(ctx, tableBookings, converter.ReservationToRow(res)); err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, "failed to insert booking", err)
	}
	return res.ID(), nil
}

type QuoteRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewQuoteRepository(client datastore.Client, logger *slog.Logger) *QuoteRepository {
	return &QuoteRepository{client: client, logger: logger}
}

func (r *QuoteRepository) Create(ctx context.Context, q *booking.QuoteRequest) (uuid.UUID, error) {
	if _, err := r.client.Insert(ctx, tableQuotes, converter.QuoteToRow(q)); err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, "failed to insert quote", err)
	}
	return q.ID(), nil
}

type LegacyRequestRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewLegacyRequestRepository(client datastore.Client, logger *slog.Logger) *LegacyRequestRepository {
	return &LegacyRequestRepository{client: client, logger: logger}
}

func (r *LegacyRequestRepository) Create(ctx context.Context, req booking.LegacyRequest) error {
	if _, err := r.client.Insert(ctx, tableBookingRequests, converter.LegacyRequestToRow(req)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to insert booking request", err)
	}
	return nil
}

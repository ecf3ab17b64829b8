package commands

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra/lock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commands

type BookingRepository interface {
	Create(ctx context.Context, res *booking.Reservation) (uuid.UUID, error)
}

type LegacyRequestRepository interface {
	Create(ctx context.Context, req booking.LegacyRequest) error
}

// BookingOptions switches on the reserve-if-available path. Zero value keeps
// the plain validate-then-insert flow with no lock.
type BookingOptions struct {
	EnforceAvailability bool
	LockTimeout         time.Duration
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, sub booking.Submission) (uuid.UUID, error)
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	sideWriter   *SideWriter
	factory      *booking.Factory
	availability queries.AvailabilityQueries
	locker       lock.Locker
	opts         BookingOptions
	logger       *slog.Logger
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	sideWriter *SideWriter,
	factory *booking.Factory,
	availability queries.AvailabilityQueries,
	locker lock.Locker,
	opts BookingOptions,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		sideWriter:   sideWriter,
		factory:      factory,
		availability: availability,
		locker:       locker,
		opts:         opts,
		logger:       logger,
	}
}

func (u *bookingUseCaseImpl) SubmitBooking(ctx context.Context, sub booking.Submission) (uuid.UUID, error) {
	res, err := u.factory.CreateReservation(sub)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if u.opts.EnforceAvailability && res.RoomType() != nil {
		id, err = u.reserveIfAvailable(ctx, res)
	} else {
		id, err = u.bookingRepo.Create(ctx, res)
	}
	if err != nil {
		return uuid.Nil, err
	}

	u.logger.Info("booking created",
		slog.String("booking_id", id.String()),
		slog.String("start_date", res.StartDate()),
		slog.String("end_date", res.EndDate()))

	legacy, err := booking.LegacyFromReservation(res)
	if err != nil {
		u.logger.Warn("failed to build legacy booking request", slog.String("error", err.Error()))
		return id, nil
	}
	u.sideWriter.Write(ctx, legacy)

	return id, nil
}

// reserveIfAvailable holds a lock on room type and stay so that the check
// and the insert are not interleaved with another booking for the same key.
func (u *bookingUseCaseImpl) reserveIfAvailable(ctx context.Context, res *booking.Reservation) (uuid.UUID, error) {
	key := *res.RoomType() + "|" + res.StartDate() + "|" + res.EndDate()

	lockCtx := ctx
	if u.opts.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, u.opts.LockTimeout)
		defer cancel()
	}
	release, err := u.locker.Acquire(lockCtx, key)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "acquire booking lock")
	}
	defer release()

	result, err := u.availability.CheckAvailability(ctx, queries.AvailabilityInput{
		RoomType:       *res.RoomType(),
		CheckIn:        res.StartDate(),
		CheckOut:       res.EndDate(),
		RequestedRooms: res.Rooms(),
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !result.Available {
		return uuid.Nil, errs.ErrNoAvailability
	}

	return u.bookingRepo.Create(ctx, res)
}

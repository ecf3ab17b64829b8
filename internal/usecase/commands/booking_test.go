//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra/lock"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/testutil"
	commandsmock "resort-booking/tests/mock/commands"
	lockmock "resort-booking/tests/mock/lock"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingDeps struct {
	bookings     *commandsmock.MockBookingRepository
	legacy       *commandsmock.MockLegacyRequestRepository
	availability *queriesmock.MockAvailabilityQueries
	locker       *lockmock.MockLocker
}

// newSideWriter registers its drain after the controller so pending legacy
// calls land before gomock verifies expectations.
func newSideWriter(t *testing.T, repo commands.LegacyRequestRepository, timeout time.Duration) *commands.SideWriter {
	t.Helper()
	w := commands.NewSideWriter(repo, timeout, testutil.DiscardLogger())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, w.Wait(ctx))
	})
	return w
}

func newBookingUseCase(t *testing.T, opts commands.BookingOptions, sideWriteTimeout time.Duration) (commands.BookingCommands, bookingDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := bookingDeps{
		bookings:     commandsmock.NewMockBookingRepository(ctrl),
		legacy:       commandsmock.NewMockLegacyRequestRepository(ctrl),
		availability: queriesmock.NewMockAvailabilityQueries(ctrl),
		locker:       lockmock.NewMockLocker(ctrl),
	}
	uc := commands.NewBookingUseCase(
		deps.bookings,
		newSideWriter(t, deps.legacy, sideWriteTimeout),
		booking.NewFactory(clock.NewMockClockOnDate(builder.DefaultToday)),
		deps.availability,
		deps.locker,
		opts,
		testutil.DiscardLogger(),
	)
	return uc, deps
}

func TestSubmitBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the booking and the legacy request", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, commands.BookingOptions{}, 0)

		var stored *booking.Reservation
		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *booking.Reservation) (uuid.UUID, error) {
				stored = res
				return res.ID(), nil
			})
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.LegacyRequest) error {
				assert.Equal(t, "room", req.Type)
				assert.Equal(t, 2, req.Guests)
				if assert.NotNil(t, req.Room) {
					assert.Equal(t, "double", *req.Room)
				}
				return nil
			})

		id, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.Equal(t, booking.StatusPending, stored.Status())
	})

	t.Run("validation failure touches nothing", func(t *testing.T) {
		uc, _ := newBookingUseCase(t, commands.BookingOptions{}, 0)

		sub := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Email = "not-an-email" }).BuildSubmission()
		_, err := uc.SubmitBooking(ctx, sub)

		v, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid email address", v.Error())
	})

	t.Run("datastore error surfaces and skips the legacy write", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, commands.BookingOptions{}, 0)
		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Wrap(errors.New(`relation "bookings" does not exist`), "failed to insert booking"))

		_, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		require.Error(t, err)
		assert.Equal(t, `relation "bookings" does not exist`, errs.RootMessage(err))
	})

	t.Run("legacy write failure is tolerated", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, commands.BookingOptions{}, time.Second)
		want := uuid.New()
		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(want, nil)
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("booking_requests unavailable"))

		id, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("legacy write outlives a cancelled request", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, commands.BookingOptions{}, 0)
		reqCtx, cancel := context.WithCancel(ctx)

		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *booking.Reservation) (uuid.UUID, error) {
				cancel()
				return res.ID(), nil
			})
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, _ booking.LegacyRequest) error {
				assert.NoError(t, c.Err())
				return c.Err()
			})

		_, err := uc.SubmitBooking(reqCtx, builder.NewBookingBuilder().BuildSubmission())
		require.NoError(t, err)
	})

	t.Run("response does not wait for the legacy write", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, commands.BookingOptions{}, 3*time.Second)
		release := make(chan struct{})

		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, _ booking.LegacyRequest) error {
				select {
				case <-release:
				case <-c.Done():
				}
				return nil
			})

		start := time.Now()
		_, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		elapsed := time.Since(start)
		close(release)

		require.NoError(t, err)
		assert.Less(t, elapsed, 500*time.Millisecond)
	})
}

func TestSubmitBooking_EnforceAvailability(t *testing.T) {
	ctx := context.Background()
	opts := commands.BookingOptions{EnforceAvailability: true, LockTimeout: 50 * time.Millisecond}

	t.Run("inserts under the lock when capacity remains", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, opts, 0)
		released := false

		gomock.InOrder(
			deps.locker.EXPECT().Acquire(gomock.Any(), "double|2025-06-10|2025-06-12").
				Return(func() { released = true }, nil),
			deps.availability.EXPECT().CheckAvailability(gomock.Any(), queries.AvailabilityInput{
				RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1,
			}).Return(availability.Result{Available: true, Remaining: 2, Capacity: 3, RequestedRooms: 1}, nil),
			deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, res *booking.Reservation) (uuid.UUID, error) {
					assert.False(t, released)
					return res.ID(), nil
				}),
		)
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("no availability is a conflict", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, opts, 0)
		deps.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
		deps.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(availability.Result{Available: false, Remaining: 0, Capacity: 3, RequestedRooms: 1}, nil)

		_, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		assert.True(t, errs.Is(err, errs.ErrNoAvailability))
	})

	t.Run("lock timeout surfaces", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, opts, 0)
		deps.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, lock.ErrLockTimeout)

		_, err := uc.SubmitBooking(ctx, builder.NewBookingBuilder().BuildSubmission())
		assert.True(t, errs.Is(err, lock.ErrLockTimeout))
	})

	t.Run("bookings without a room type skip the check", func(t *testing.T) {
		uc, deps := newBookingUseCase(t, opts, 0)
		deps.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		deps.legacy.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		sub := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomTypes = nil }).BuildSubmission()
		_, err := uc.SubmitBooking(ctx, sub)
		require.NoError(t, err)
	})
}

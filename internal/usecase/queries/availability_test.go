//go:build unit

package queries_test

import (
	"context"
	"testing"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/testutil"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAvailability(t *testing.T) (queries.AvailabilityQueries, *queriesmock.MockInventoryReader, *queriesmock.MockOccupancyReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inventory := queriesmock.NewMockInventoryReader(ctrl)
	occupancy := queriesmock.NewMockOccupancyReader(ctrl)
	return queries.NewAvailabilityQueries(inventory, occupancy, testutil.DiscardLogger()), inventory, occupancy
}

func TestCheckAvailability_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   queries.AvailabilityInput
		err  error
	}{
		{name: "missing room type and units", in: queries.AvailabilityInput{CheckIn: "2025-06-10", CheckOut: "2025-06-12"}, err: availability.ErrMissingFields},
		{name: "missing check-in", in: queries.AvailabilityInput{RoomType: "double", CheckOut: "2025-06-12"}, err: availability.ErrMissingFields},
		{name: "blank check-out", in: queries.AvailabilityInput{RoomType: "double", CheckIn: "2025-06-10", CheckOut: "  "}, err: availability.ErrMissingFields},
		{name: "missing fields win over bad format", in: queries.AvailabilityInput{CheckIn: "junk", CheckOut: "2025-06-12"}, err: availability.ErrMissingFields},
		{name: "malformed check-in", in: queries.AvailabilityInput{RoomType: "double", CheckIn: "06/10/2025", CheckOut: "2025-06-12"}, err: availability.ErrInvalidDateFormat},
		{name: "malformed check-out", in: queries.AvailabilityInput{RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-6-12"}, err: availability.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _, _ := newAvailability(t)

			_, err := q.CheckAvailability(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.err)
			_, ok := errs.AsValidation(err)
			assert.True(t, ok)
		})
	}
}

func TestCheckAvailability_Compute(t *testing.T) {
	ctx := context.Background()

	t.Run("room type resolves units before counting", func(t *testing.T) {
		q, inventory, occupancy := newAvailability(t)
		units := []string{"u1", "u2", "u3"}
		rng := availability.DateRange{CheckIn: "2025-06-10", CheckOut: "2025-06-12"}

		inventory.EXPECT().AvailableUnitIDs(gomock.Any(), "double").Return(units, nil)
		occupancy.EXPECT().Overlapping(gomock.Any(), availability.Scope{UnitIDs: units, RoomType: "double"}, rng).
			Return(availability.Occupancy{UnitIDs: []string{"u1", "u2", "u2"}, Rows: 3}, nil)

		res, err := q.CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: " double ", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: false, Remaining: 1, Capacity: 3, RequestedRooms: 2}, res)
	})

	t.Run("explicit units skip the inventory lookup", func(t *testing.T) {
		q, _, occupancy := newAvailability(t)
		const a = "0F8FAD5B-D9CB-469F-A165-70867728950E"

		occupancy.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, scope availability.Scope, _ availability.DateRange) (availability.Occupancy, error) {
				assert.Equal(t, []string{"0f8fad5b-d9cb-469f-a165-70867728950e"}, scope.UnitIDs)
				return availability.Occupancy{}, nil
			})

		res, err := q.CheckAvailability(ctx, queries.AvailabilityInput{
			UnitIDs: []string{a, a, "bogus"}, CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Capacity)
		assert.True(t, res.Available)
	})

	t.Run("requested rooms below one counts as one", func(t *testing.T) {
		q, inventory, occupancy := newAvailability(t)
		inventory.EXPECT().AvailableUnitIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		occupancy.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(availability.Occupancy{}, nil)

		res, err := q.CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: -4,
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: false, Remaining: 0, Capacity: 0, RequestedRooms: 1}, res)
	})

	t.Run("not configured propagates", func(t *testing.T) {
		q, inventory, _ := newAvailability(t)
		inventory.EXPECT().AvailableUnitIDs(gomock.Any(), gomock.Any()).Return(nil, errs.ErrNotConfigured)

		_, err := q.CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		assert.True(t, errs.Is(err, errs.ErrNotConfigured))
	})
}

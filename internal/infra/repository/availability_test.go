//go:build unit

package repository_test

import (
	"context"
	"testing"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/dstest"
	"resort-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unitA = "0f8fad5b-d9cb-469f-a165-70867728950e"
	unitB = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	unitC = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
)

func checker(store *dstest.Store) queries.AvailabilityQueries {
	logger := testutil.DiscardLogger()
	return queries.NewAvailabilityQueries(
		repository.NewInventoryRepository(store, logger),
		repository.NewOccupancyRepository(store, logger),
		logger,
	)
}

func standardStore() *dstest.Store {
	return dstest.NewStore().
		CreateTable("hotel_rooms", "id", "type", "status").
		CreateTable("room_reservations", "id", "room_id", "room_type", "check_in", "check_out").
		Seed("hotel_rooms",
			datastore.Row{"id": unitA, "type": "double", "status": "available"},
			datastore.Row{"id": unitB, "type": "double", "status": "available"},
			datastore.Row{"id": unitC, "type": "double", "status": nil},
			datastore.Row{"id": "9b2e1c64-1111-4a7b-8c0d-123456789abc", "type": "double", "status": "maintenance"},
			datastore.Row{"id": "9b2e1c64-2222-4a7b-8c0d-123456789abc", "type": "single", "status": "available"},
		)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity 3 with two distinct units reserved", func(t *testing.T) {
		store := standardStore().Seed("room_reservations",
			datastore.Row{"id": "r1", "room_id": unitA, "check_in": "2025-06-09", "check_out": "2025-06-11"},
			datastore.Row{"id": "r2", "room_id": unitB, "check_in": "2025-06-11", "check_out": "2025-06-13"},
			datastore.Row{"id": "r3", "room_id": unitB, "check_in": "2025-06-10", "check_out": "2025-06-11"},
		)

		one, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: true, Remaining: 1, Capacity: 3, RequestedRooms: 1}, one)

		two, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 2,
		})
		require.NoError(t, err)
		assert.False(t, two.Available)
		assert.Equal(t, 1, two.Remaining)
	})

	t.Run("touching boundary counts as overlapping", func(t *testing.T) {
		store := standardStore().Seed("room_reservations",
			datastore.Row{"id": "r1", "room_id": unitA, "check_in": "2025-06-12", "check_out": "2025-06-14"},
		)

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("non overlapping reservations are ignored", func(t *testing.T) {
		store := standardStore().Seed("room_reservations",
			datastore.Row{"id": "r1", "room_id": unitA, "check_in": "2025-06-01", "check_out": "2025-06-09"},
			datastore.Row{"id": "r2", "room_id": unitB, "check_in": "2025-06-13", "check_out": "2025-06-20"},
		)

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 3,
		})
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("falls back to room_type column and start/end dates", func(t *testing.T) {
		store := dstest.NewStore().
			CreateTable("hotel_rooms", "id", "room_type", "status").
			CreateTable("room_reservations", "id", "room_id", "room_type", "start_date", "end_date").
			Seed("hotel_rooms",
				datastore.Row{"id": unitA, "room_type": "suite", "status": "available"},
				datastore.Row{"id": unitB, "room_type": "suite", "status": "available"},
			).
			Seed("room_reservations",
				datastore.Row{"id": "r1", "room_id": unitA, "start_date": "2025-06-10", "end_date": "2025-06-11"},
			)

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "suite", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: true, Remaining: 1, Capacity: 2, RequestedRooms: 1}, res)
	})

	t.Run("name column is the last inventory candidate", func(t *testing.T) {
		store := dstest.NewStore().
			CreateTable("hotel_rooms", "id", "name", "status").
			CreateTable("room_reservations", "id", "room_id", "room_type", "check_in", "check_out").
			Seed("hotel_rooms", datastore.Row{"id": unitA, "name": "Villa", "status": "available"})

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "Villa", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Capacity)
	})

	t.Run("first working candidate wins even when empty", func(t *testing.T) {
		store := dstest.NewStore().
			CreateTable("hotel_rooms", "id", "type", "room_type", "status").
			CreateTable("room_reservations", "id", "room_id", "room_type", "check_in", "check_out").
			Seed("hotel_rooms", datastore.Row{"id": unitA, "type": nil, "room_type": "double", "status": "available"})

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Capacity)
		assert.False(t, res.Available)
	})

	t.Run("no usable schema degrades to unavailable", func(t *testing.T) {
		store := dstest.NewStore().CreateTable("hotel_rooms", "id")

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: false, Remaining: 0, Capacity: 0, RequestedRooms: 1}, res)
	})

	t.Run("reservation lookup failure leaves capacity untouched", func(t *testing.T) {
		store := standardStore().Fail("room_reservations", errs.New("connection reset by peer"))

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: true, Remaining: 3, Capacity: 3, RequestedRooms: 2}, res)
	})

	t.Run("capacity lookup queries type columns in order", func(t *testing.T) {
		store := dstest.NewStore().CreateTable("hotel_rooms", "id", "status")

		_, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)

		var tried []string
		for _, q := range store.Selects() {
			if q.Table != "hotel_rooms" {
				continue
			}
			for _, f := range q.Filters {
				if f.IsLeaf() && f.Op == datastore.OpEq {
					tried = append(tried, f.Column)
				}
			}
		}
		assert.Equal(t, []string{"type", "room_type", "name"}, tried)
	})

	t.Run("explicit unit ids scope the reservation lookup", func(t *testing.T) {
		store := standardStore().Seed("room_reservations",
			datastore.Row{"id": "r1", "room_id": unitA, "check_in": "2025-06-10", "check_out": "2025-06-11"},
			datastore.Row{"id": "r2", "room_id": unitB, "check_in": "2025-06-10", "check_out": "2025-06-11"},
		)

		res, err := checker(store).CheckAvailability(ctx, queries.AvailabilityInput{
			UnitIDs: []string{unitA, unitC, "not-a-uuid"}, CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: true, Remaining: 1, Capacity: 2, RequestedRooms: 1}, res)
	})

	t.Run("datastore not configured is an error", func(t *testing.T) {
		logger := testutil.DiscardLogger()
		unconfigured := datastore.NewUnconfigured()
		q := queries.NewAvailabilityQueries(
			repository.NewInventoryRepository(unconfigured, logger),
			repository.NewOccupancyRepository(unconfigured, logger),
			logger,
		)

		_, err := q.CheckAvailability(ctx, queries.AvailabilityInput{
			RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12",
		})
		assert.True(t, errs.Is(err, errs.ErrNotConfigured))
	})
}

func TestOccupancyRepository_Overlapping(t *testing.T) {
	ctx := context.Background()
	rng := availability.DateRange{CheckIn: "2025-06-10", CheckOut: "2025-06-12"}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "starts on query check-out", start: "2025-06-12", end: "2025-06-14", want: true},
		{name: "ends on query check-in", start: "2025-06-08", end: "2025-06-10", want: true},
		{name: "inside", start: "2025-06-10", end: "2025-06-11", want: true},
		{name: "covers", start: "2025-06-01", end: "2025-06-30", want: true},
		{name: "entirely before", start: "2025-06-01", end: "2025-06-09", want: false},
		{name: "entirely after", start: "2025-06-13", end: "2025-06-15", want: false},
	}

	for _, tt := range tests {
		t.Run("check_in/check_out: "+tt.name, func(t *testing.T) {
			store := standardStore().Seed("room_reservations",
				datastore.Row{"id": "r1", "room_id": unitA, "room_type": "double", "check_in": tt.start, "check_out": tt.end},
			)
			occ, err := repository.NewOccupancyRepository(store, testutil.DiscardLogger()).
				Overlapping(ctx, availability.Scope{RoomType: "double"}, rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, occ.Rows == 1)
		})

		t.Run("start_date/end_date: "+tt.name, func(t *testing.T) {
			store := dstest.NewStore().
				CreateTable("room_reservations", "id", "room_id", "room_type", "start_date", "end_date").
				Seed("room_reservations",
					datastore.Row{"id": "r1", "room_id": unitA, "room_type": "double", "start_date": tt.start, "end_date": tt.end},
				)
			occ, err := repository.NewOccupancyRepository(store, testutil.DiscardLogger()).
				Overlapping(ctx, availability.Scope{RoomType: "double"}, rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, occ.Rows == 1)
		})
	}
}

func TestInventoryRepository_Catalog(t *testing.T) {
	ctx := context.Background()
	logger := testutil.DiscardLogger()

	store := dstest.NewStore().
		CreateTable("hotel_rooms", "id", "type", "status",
			"rate_bed_only", "rate_bed_and_breakfast", "rate_half_board", "rate_full_board").
		Seed("hotel_rooms",
			datastore.Row{"id": unitA, "type": "double", "status": "available", "rate_bed_only": 100.0, "rate_half_board": 150.0},
			datastore.Row{"id": unitB, "type": "double", "status": "available", "rate_bed_only": 90.0, "rate_half_board": nil},
			datastore.Row{"id": unitC, "type": "double", "status": "maintenance", "rate_bed_only": 10.0},
			datastore.Row{"type": "single", "status": "available"},
			datastore.Row{"type": "", "status": "available"},
		)
	repo := repository.NewInventoryRepository(store, logger)

	types, err := repo.RoomTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"double", "single"}, types)

	rates, err := repo.RatesForType(ctx, "double")
	require.NoError(t, err)
	assert.Len(t, rates, 2)
}

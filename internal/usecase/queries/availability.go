package queries

import (
	"context"
	"log/slog"
	"strings"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/pkg/validate"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/mock_availability.go -package=queries

type InventoryReader interface {
	AvailableUnitIDs(ctx context.Context, roomType string) ([]string, error)
}

type OccupancyReader interface {
	Overlapping(ctx context.Context, scope availability.Scope, rng availability.DateRange) (availability.Occupancy, error)
}

// AvailabilityInput names either a room type or an explicit unit id set.
type AvailabilityInput struct {
	RoomType       string
	UnitIDs        []string
	CheckIn        string
	CheckOut       string
	RequestedRooms int
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, in AvailabilityInput) (availability.Result, error)
}

type availabilityQueriesImpl struct {
	inventory InventoryReader
	occupancy OccupancyReader
	logger    *slog.Logger
}

func NewAvailabilityQueries(inventory InventoryReader, occupancy OccupancyReader, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		inventory: inventory,
		occupancy: occupancy,
		logger:    logger,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, in AvailabilityInput) (availability.Result, error) {
	roomType := strings.TrimSpace(in.RoomType)
	rng := availability.DateRange{
		CheckIn:  strings.TrimSpace(in.CheckIn),
		CheckOut: strings.TrimSpace(in.CheckOut),
	}
	unitIDs := distinctUnitIDs(in.UnitIDs)

	if (roomType == "" && len(in.UnitIDs) == 0) || rng.CheckIn == "" || rng.CheckOut == "" {
		return availability.Result{}, availability.ErrMissingFields
	}
	if !rng.IsWellFormed() {
		return availability.Result{}, availability.ErrInvalidDateFormat
	}

	var err error
	if len(in.UnitIDs) == 0 {
		unitIDs, err = q.inventory.AvailableUnitIDs(ctx, roomType)
		if err != nil {
			return availability.Result{}, err
		}
	}

	occ, err := q.occupancy.Overlapping(ctx, availability.Scope{UnitIDs: unitIDs, RoomType: roomType}, rng)
	if err != nil {
		return availability.Result{}, err
	}

	result := availability.Compute(len(unitIDs), occ.ReservedCount(), in.RequestedRooms)

	q.logger.Debug("availability checked",
		slog.String("room_type", roomType),
		slog.String("check_in", rng.CheckIn),
		slog.String("check_out", rng.CheckOut),
		slog.Int("capacity", result.Capacity),
		slog.Int("remaining", result.Remaining))

	return result, nil
}

// distinctUnitIDs keeps well-formed ids once each, in input order.
func distinctUnitIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if !validate.IsUUID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

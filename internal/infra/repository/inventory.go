package repository

import (
	"context"
	"log/slog"
	"sort"

	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/datastore"
)

const (
	tableInventory   = "hotel_rooms"
	statusAvailable  = "available"
	columnStatus     = "status"
	columnInventory  = "id"
	columnTypeLabel  = "type"
	rateBedOnly      = "rate_bed_only"
	rateBedBreakfast = "rate_bed_and_breakfast"
	rateHalfBoard    = "rate_half_board"
	rateFullBoard    = "rate_full_board"
)

// Columns that may carry the room-type label, in lookup order.
var inventoryTypeColumns = []string{"type", "room_type", "name"}

type InventoryRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewInventoryRepository(client datastore.Client, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{client: client, logger: logger}
}

func availableStatus() datastore.Filter {
	return datastore.AnyOf(
		datastore.Col(columnStatus).Eq(statusAvailable),
		datastore.Col(columnStatus).IsNull(),
	)
}

// AvailableUnitIDs returns ids of in-service units of roomType. When no
// candidate column works the result is empty, not an error.
func (r *InventoryRepository) AvailableUnitIDs(ctx context.Context, roomType string) ([]string, error) {
	strategies := make([]lookupStrategy, 0, len(inventoryTypeColumns))
	for _, col := range inventoryTypeColumns {
		col := col
		strategies = append(strategies, lookupStrategy{
			name: tableInventory + "." + col,
			query: func() *datastore.Query {
				return datastore.From(tableInventory).
					Select(columnInventory, columnStatus).
					Eq(col, roomType).
					Where(availableStatus())
			},
		})
	}

	rows, ok, err := firstSuccessful(ctx, r.client, r.logger, strategies)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to resolve inventory units", err)
	}
	if !ok {
		r.logger.Warn("no inventory schema matched; treating capacity as zero",
			slog.String("room_type", roomType))
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if s := row.String(columnStatus); s != "" && s != statusAvailable {
			continue
		}
		if id := row.String(columnInventory); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// RoomTypes returns distinct non-empty type labels, sorted.
func (r *InventoryRepository) RoomTypes(ctx context.Context) ([]string, error) {
	rows, err := r.client.Select(ctx, datastore.From(tableInventory).Select(columnTypeLabel))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list room types", err)
	}

	seen := make(map[string]struct{}, len(rows))
	types := make([]string, 0, len(rows))
	for _, row := range rows {
		t := row.String(columnTypeLabel)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

// RatesForType returns the rate columns of every available unit of roomType.
func (r *InventoryRepository) RatesForType(ctx context.Context, roomType string) ([]room.Rates, error) {
	q := datastore.From(tableInventory).
		Select(rateBedOnly, rateBedBreakfast, rateHalfBoard, rateFullBoard, columnStatus, columnTypeLabel).
		Eq(columnTypeLabel, roomType).
		Eq(columnStatus, statusAvailable)

	rows, err := r.client.Select(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to fetch rates", err)
	}

	out := make([]room.Rates, 0, len(rows))
	for _, row := range rows {
		out = append(out, room.Rates{
			BedOnly:         row.Float(rateBedOnly),
			BedAndBreakfast: row.Float(rateBedBreakfast),
			HalfBoard:       row.Float(rateHalfBoard),
			FullBoard:       row.Float(rateFullBoard),
		})
	}
	return out, nil
}

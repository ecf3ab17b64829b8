package repository

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/datastore"
)

const tableReservations = "room_reservations"

type datePair struct {
	start string
	end   string
}

// overlapping selects rows whose [start, end] columns satisfy rng's overlap
// bounds.
func (p datePair) overlapping(rng availability.DateRange) datastore.Filter {
	latestStart, earliestEnd := rng.OverlapBounds()
	return datastore.AllOf(
		datastore.Col(p.start).Lte(latestStart),
		datastore.Col(p.end).Gte(earliestEnd),
	)
}

// Reservation date column pairs, in lookup order.
var reservationDatePairs = []datePair{
	{start: "check_in", end: "check_out"},
	{start: "start_date", end: "end_date"},
}

type OccupancyRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewOccupancyRepository(client datastore.Client, logger *slog.Logger) *OccupancyRepository {
	return &OccupancyRepository{client: client, logger: logger}
}

// Overlapping returns reservations whose stay touches rng under the inclusive
// overlap rule. When no date-column pair works the result is empty.
func (r *OccupancyRepository) Overlapping(ctx context.Context, scope availability.Scope, rng availability.DateRange) (availability.Occupancy, error) {
	strategies := make([]lookupStrategy, 0, len(reservationDatePairs))
	for _, pair := range reservationDatePairs {
		pair := pair
		strategies = append(strategies, lookupStrategy{
			name: tableReservations + "." + pair.start + "/" + pair.end,
			query: func() *datastore.Query {
				q := datastore.From(tableReservations).Or(pair.overlapping(rng))
				if len(scope.UnitIDs) > 0 {
					return q.In("room_id", datastore.StringValues(scope.UnitIDs)...)
				}
				return q.Eq("room_type", scope.RoomType)
			},
		})
	}

	rows, ok, err := firstSuccessful(ctx, r.client, r.logger, strategies)
	if err != nil {
		return availability.Occupancy{}, infra.WrapRepoErr(r.logger, "failed to fetch overlapping reservations", err)
	}
	if !ok {
		r.logger.Warn("no reservation schema matched; treating reserved count as zero",
			slog.String("room_type", scope.RoomType))
		return availability.Occupancy{}, nil
	}

	occ := availability.Occupancy{Rows: len(rows)}
	for _, row := range rows {
		if id := row.String("room_id"); id != "" {
			occ.UnitIDs = append(occ.UnitIDs, id)
		}
	}
	return occ, nil
}

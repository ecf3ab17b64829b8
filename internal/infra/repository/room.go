package repository

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/infra/repository/converter"
	"resort-booking/internal/pkg/errs"
)

const tableRooms = "rooms"

type RoomRepository struct {
	client datastore.Client
	logger *slog.Logger
}

func NewRoomRepository(client datastore.Client, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{client: client, logger: logger}
}

// ListVisible returns visible catalog rooms, cheapest first.
func (r *RoomRepository) ListVisible(ctx context.Context) ([]room.Room, error) {
	q := datastore.From(tableRooms).
		Eq("visible", true).
		Order("price", true)

	rows, err := r.client.Select(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list rooms", err)
	}

	out := make([]room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.RowToRoom(row))
	}
	return out, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*room.Room, error) {
	return r.findOne(ctx, "id", id)
}

func (r *RoomRepository) FindBySlug(ctx context.Context, slug string) (*room.Room, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *RoomRepository) findOne(ctx context.Context, col, value string) (*room.Room, error) {
	rows, err := r.client.Select(ctx, datastore.From(tableRooms).Eq(col, value).Limit(1))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to get room", err)
	}
	if len(rows) == 0 {
		return nil, errs.Mark(errs.New("room "+col+" "+value), errs.ErrRoomNotFound)
	}
	rm := converter.RowToRoom(rows[0])
	return &rm, nil
}

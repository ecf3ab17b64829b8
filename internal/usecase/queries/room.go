package queries

import (
	"context"
	"strings"

	"resort-booking/internal/domain/room"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/validate"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/mock_room.go -package=queries

var ErrRateTypeRequired = errs.NewValidation("type is required")

type RoomReader interface {
	ListVisible(ctx context.Context) ([]room.Room, error)
	FindByID(ctx context.Context, id string) (*room.Room, error)
	FindBySlug(ctx context.Context, slug string) (*room.Room, error)
}

type RoomTypeReader interface {
	RoomTypes(ctx context.Context) ([]string, error)
	RatesForType(ctx context.Context, roomType string) ([]room.Rates, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]room.Room, error)
	// GetRoom resolves a uuid as an id and anything else as a slug.
	GetRoom(ctx context.Context, ref string) (*room.Room, error)
	RoomTypes(ctx context.Context) ([]string, error)
	Rates(ctx context.Context, roomType string) (room.Rates, error)
}

type roomQueriesImpl struct {
	rooms RoomReader
	types RoomTypeReader
}

func NewRoomQueries(rooms RoomReader, types RoomTypeReader) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, types: types}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]room.Room, error) {
	return q.rooms.ListVisible(ctx)
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, ref string) (*room.Room, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errs.ErrRoomNotFound
	}
	if validate.IsUUID(ref) {
		return q.rooms.FindByID(ctx, ref)
	}
	return q.rooms.FindBySlug(ctx, ref)
}

func (q *roomQueriesImpl) RoomTypes(ctx context.Context) ([]string, error) {
	return q.types.RoomTypes(ctx)
}

func (q *roomQueriesImpl) Rates(ctx context.Context, roomType string) (room.Rates, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return room.Rates{}, ErrRateTypeRequired
	}
	units, err := q.types.RatesForType(ctx, roomType)
	if err != nil {
		return room.Rates{}, err
	}
	return room.MinimumRates(units), nil
}

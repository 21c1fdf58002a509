package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetHotel(ctx context.Context, id string) (*Hotel, error)
	ListHotels(ctx context.Context, filter HotelFilter) ([]*Hotel, int, error)
	GetRoom(ctx context.Context, id string) (*Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]*Room, error)

	// FindRoom returns the hotel's room of the given type, if it sells one.
	FindRoom(ctx context.Context, hotelID, roomType string) (*Room, error)

	GetRateCard(ctx context.Context, roomID, board string) (*RateCard, error)
	GetFlightBlock(ctx context.Context, id string) (*FlightBlock, error)

	// FindFlightBlock returns the seat block serving the city, if any.
	FindFlightBlock(ctx context.Context, cityID string) (*FlightBlock, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetHotel(ctx context.Context, id string) (*Hotel, error) {
	const query = `
		SELECT id, city_id, name, stars, created_at
		FROM public.hotels
		WHERE id = $1
	`
	var h Hotel
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&h.ID, &h.CityID, &h.Name, &h.Stars, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) ListHotels(ctx context.Context, filter HotelFilter) ([]*Hotel, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "city_id", "name", "stars", "created_at",
		"count(*) OVER() as total_count",
	).From("public.hotels")

	if filter.CityID != "" {
		query = query.Where(squirrel.Eq{"city_id": filter.CityID})
	}

	query = query.OrderBy("name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.CityID, &h.Name, &h.Stars, &h.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}

	return hotels, total, nil
}

func (r *pgxRepository) GetRoom(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT id, hotel_id, room_type, total_rooms, created_at
		FROM public.rooms
		WHERE id = $1
	`
	var room Room
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&room.ID, &room.HotelID, &room.RoomType, &room.TotalRooms, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) ListRooms(ctx context.Context, hotelID string) ([]*Room, error) {
	const query = `
		SELECT id, hotel_id, room_type, total_rooms, created_at
		FROM public.rooms
		WHERE hotel_id = $1
		ORDER BY room_type ASC
	`
	rows, err := r.pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.RoomType, &room.TotalRooms, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &room)
	}
	return rooms, nil
}

func (r *pgxRepository) FindRoom(ctx context.Context, hotelID, roomType string) (*Room, error) {
	const query = `
		SELECT id, hotel_id, room_type, total_rooms, created_at
		FROM public.rooms
		WHERE hotel_id = $1 AND room_type = $2
	`
	var room Room
	err := r.pool.QueryRow(ctx, query, hotelID, roomType).
		Scan(&room.ID, &room.HotelID, &room.RoomType, &room.TotalRooms, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) GetRateCard(ctx context.Context, roomID, board string) (*RateCard, error) {
	const query = `
		SELECT rc.room_id, r.room_type, rc.board, rc.single, rc.double,
		       rc.extra_bed, rc.child_price, rc.currency
		FROM public.rate_cards rc
		JOIN public.rooms r ON rc.room_id = r.id
		WHERE rc.room_id = $1 AND rc.board = $2
	`
	var rc RateCard
	err := r.pool.QueryRow(ctx, query, roomID, board).
		Scan(&rc.RoomID, &rc.RoomType, &rc.Board, &rc.Single, &rc.Double,
			&rc.ExtraBed, &rc.ChildPrice, &rc.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRateNotFound
		}
		return nil, fmt.Errorf("get rate card failed: %w", err)
	}
	return &rc, nil
}

func (r *pgxRepository) GetFlightBlock(ctx context.Context, id string) (*FlightBlock, error) {
	const query = `
		SELECT id, city_id, name, seat_price, seats
		FROM public.flight_blocks
		WHERE id = $1
	`
	var fb FlightBlock
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&fb.ID, &fb.CityID, &fb.Name, &fb.SeatPrice, &fb.Seats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightBlockNotFound
		}
		return nil, fmt.Errorf("get flight block failed: %w", err)
	}
	return &fb, nil
}

func (r *pgxRepository) FindFlightBlock(ctx context.Context, cityID string) (*FlightBlock, error) {
	// Cheapest block wins when a city has several.
	const query = `
		SELECT id, city_id, name, seat_price, seats
		FROM public.flight_blocks
		WHERE city_id = $1
		ORDER BY seat_price ASC
		LIMIT 1
	`
	var fb FlightBlock
	err := r.pool.QueryRow(ctx, query, cityID).
		Scan(&fb.ID, &fb.CityID, &fb.Name, &fb.SeatPrice, &fb.Seats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightBlockNotFound
		}
		return nil, fmt.Errorf("find flight block failed: %w", err)
	}
	return &fb, nil
}

package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, hotel_id, room_type, price_per_night, discount_pct, capacity, amenities, image_urls, is_available, created_at`

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetRoomByID(ctx context.Context, id string) (Room, error) {
	sql := `SELECT ` + roomColumns + `
            FROM quickstay.room
            WHERE id=$1;
        `

	room, err := scanRoom(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Room{}, ErrRoomNotFound
	}

	if err != nil {
		return Room{}, fmt.Errorf("failed to fetch room with id %v: %w", id, err)
	}

	return room, nil
}

func (r *Repository) ListRooms(ctx context.Context) ([]Room, error) {
	sql := `SELECT ` + roomColumns + `
            FROM quickstay.room
            ORDER BY created_at DESC;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}

	defer rows.Close()

	return scanRooms(rows)
}

func (r *Repository) ListRoomsPerHotel(ctx context.Context, hotelID string) ([]Room, error) {
	sql := `SELECT ` + roomColumns + `
            FROM quickstay.room
            WHERE hotel_id=$1
            ORDER BY created_at DESC;
        `

	rows, err := r.conn.Query(ctx, sql, hotelID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms for hotel '%v': %w", hotelID, err)
	}

	defer rows.Close()

	return scanRooms(rows)
}

func (r *Repository) InsertRoom(ctx context.Context, room Room) (Room, error) {
	sql := `
			INSERT INTO quickstay.room(
			hotel_id, room_type, price_per_night, discount_pct, capacity, amenities, image_urls, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		room.HotelID,
		room.RoomType,
		room.PricePerNight,
		room.DiscountPct,
		room.Capacity,
		room.Amenities,
		room.ImageURLs,
		room.IsAvailable,
	).Scan(&room.ID, &room.CreatedAt)

	if err != nil {
		return Room{}, fmt.Errorf("failed to insert room: %w", err)
	}

	return room, nil
}

func (r *Repository) SetRoomAvailability(ctx context.Context, id string, available bool) error {
	sql := `
            UPDATE quickstay.room
            SET is_available=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, available, id)

	if err != nil {
		return fmt.Errorf("failed to update room '%v' availability: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func scanRoom(row pgx.Row) (Room, error) {
	var room Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.RoomType,
		&room.PricePerNight,
		&room.DiscountPct,
		&room.Capacity,
		&room.Amenities,
		&room.ImageURLs,
		&room.IsAvailable,
		&room.CreatedAt,
	)

	return room, err
}

func scanRooms(rows pgx.Rows) ([]Room, error) {
	var rooms []Room

	for rows.Next() {
		room, err := scanRoom(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms rows: %w", err)
	}

	return rooms, nil
}

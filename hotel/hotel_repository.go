package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const hotelColumns = `id, name, address, city, contact, owner_id, created_at`

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetHotelByID(ctx context.Context, id string) (Hotel, error) {
	sql := `SELECT ` + hotelColumns + `
            FROM quickstay.hotel
            WHERE id=$1;
        `

	hotel, err := scanHotel(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Hotel{}, ErrHotelNotFound
	}

	if err != nil {
		return Hotel{}, fmt.Errorf("failed to fetch hotel with id %v: %w", id, err)
	}

	return hotel, nil
}

func (r *Repository) ListHotels(ctx context.Context) ([]Hotel, error) {
	sql := `SELECT ` + hotelColumns + `
            FROM quickstay.hotel
            ORDER BY created_at DESC;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}

	defer rows.Close()

	var hotels []Hotel

	for rows.Next() {
		hotel, err := scanHotel(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning hotel row: %w", err)
		}

		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotels rows: %w", err)
	}

	return hotels, nil
}

func (r *Repository) InsertHotel(ctx context.Context, hotel Hotel) (Hotel, error) {
	sql := `
			INSERT INTO quickstay.hotel(name, address, city, contact, owner_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		hotel.Name,
		hotel.Address,
		hotel.City,
		hotel.Contact,
		hotel.OwnerID,
	).Scan(&hotel.ID, &hotel.CreatedAt)

	if err != nil {
		return Hotel{}, fmt.Errorf("failed to insert hotel: %w", err)
	}

	return hotel, nil
}

func scanHotel(row pgx.Row) (Hotel, error) {
	var hotel Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Address,
		&hotel.City,
		&hotel.Contact,
		&hotel.OwnerID,
		&hotel.CreatedAt,
	)

	return hotel, err
}

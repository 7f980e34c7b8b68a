package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const bookingColumns = `id, reference, user_id, room_id, hotel_id, check_in, check_out, guests, total_price, status, payment_status, refund_status, created_at, updated_at`

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetActiveBookingsForRoom(ctx context.Context, roomID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM quickstay.booking
            WHERE room_id=$1 AND status IN ('pending', 'confirmed');
        `

	rows, err := r.conn.Query(ctx, sql, roomID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for room '%v': %w", roomID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM quickstay.booking
            WHERE id=$1;
        `

	booking, err := scanBooking(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM quickstay.booking
            WHERE user_id=$1
            ORDER BY check_in;
        `

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetUserBookingsForRoom(ctx context.Context, userID, roomID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM quickstay.booking
            WHERE user_id=$1 AND room_id=$2;
        `

	rows, err := r.conn.Query(ctx, sql, userID, roomID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v' and room '%v': %w", userID, roomID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

// InsertBooking persists a new booking. The booking_no_overlap exclusion
// constraint is the serialization point for concurrent creates on the same
// room; the losing insert comes back as ErrRoomUnavailable.
func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO quickstay.booking(
			reference, user_id, room_id, hotel_id, check_in, check_out, guests, total_price, status, payment_status, refund_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		booking.Reference,
		booking.UserID,
		booking.RoomID,
		booking.HotelID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Guests,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.RefundStatus,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return Booking{}, mapInsertError(err)
	}

	return booking, nil
}

func (r *Repository) SetBookingState(ctx context.Context, id string, status Status, paymentStatus PaymentStatus, refundStatus RefundStatus) error {
	sql := `
            UPDATE quickstay.booking
            SET status=$1, payment_status=$2, refund_status=$3, updated_at=now()
            WHERE id=$4;
        `

	tag, err := r.conn.Exec(ctx, sql, status, paymentStatus, refundStatus, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' state: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// exclusion_violation: another non-terminal booking holds an
		// overlapping range for this room
		case "23P01":
			return ErrRoomUnavailable
		// unique_violation on the reference
		case "23505":
			return ErrDuplicateBooking
		}
	}

	return fmt.Errorf("failed to insert booking: %w", err)
}

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.RoomID,
		&booking.HotelID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.RefundStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	return booking, err
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

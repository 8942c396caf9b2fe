package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &pgBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_pg")),
	}
}

// Movie, theater and showtime are stored as JSON snapshots: a booking keeps
// what the user actually booked even if the catalog changes afterwards.
func (r *pgBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	movieJSON, err := json.Marshal(booking.Movie)
	if err != nil {
		return fmt.Errorf("marshal movie snapshot: %w", err)
	}
	theaterJSON, err := json.Marshal(booking.Theater)
	if err != nil {
		return fmt.Errorf("marshal theater snapshot: %w", err)
	}
	showtimeJSON, err := json.Marshal(booking.Showtime)
	if err != nil {
		return fmt.Errorf("marshal showtime snapshot: %w", err)
	}

	query := `
		INSERT INTO bookings (booking_id, user_id, movie, theater, showtime,
		                      show_date, seats, total_price, qr_code_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Exec(ctx, query,
		booking.BookingID,
		booking.UserID,
		movieJSON,
		theaterJSON,
		showtimeJSON,
		booking.Date,
		booking.Seats,
		booking.TotalPrice,
		booking.QRCodeURL,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *pgBookingRepository) FindByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `
		SELECT booking_id, user_id, movie, theater, showtime, show_date,
		       seats, total_price, qr_code_url, created_at
		FROM bookings
		WHERE booking_id = $1
	`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return booking, nil
}

func (r *pgBookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT booking_id, user_id, movie, theater, showtime, show_date,
		       seats, total_price, qr_code_url, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *pgBookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking      entity.Booking
		movieJSON    []byte
		theaterJSON  []byte
		showtimeJSON []byte
	)

	err := row.Scan(
		&booking.BookingID,
		&booking.UserID,
		&movieJSON,
		&theaterJSON,
		&showtimeJSON,
		&booking.Date,
		&booking.Seats,
		&booking.TotalPrice,
		&booking.QRCodeURL,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(movieJSON, &booking.Movie); err != nil {
		return nil, fmt.Errorf("unmarshal movie snapshot: %w", err)
	}
	if err := json.Unmarshal(theaterJSON, &booking.Theater); err != nil {
		return nil, fmt.Errorf("unmarshal theater snapshot: %w", err)
	}
	if err := json.Unmarshal(showtimeJSON, &booking.Showtime); err != nil {
		return nil, fmt.Errorf("unmarshal showtime snapshot: %w", err)
	}

	return &booking, nil
}

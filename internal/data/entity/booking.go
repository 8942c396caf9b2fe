package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is immutable once created: the ledger never touches a record
// after Create.
type Booking struct {
	BookingID  string    `db:"booking_id"`
	UserID     uuid.UUID `db:"user_id"`
	Movie      Movie     `db:"-"`
	Theater    Theater   `db:"-"`
	Showtime   Showtime  `db:"-"`
	Date       time.Time `db:"show_date"`
	Seats      []string  `db:"seats"`
	TotalPrice int       `db:"total_price"`
	QRCodeURL  string    `db:"qr_code_url"`
	CreatedAt  time.Time `db:"created_at"`
}

package response

import (
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/usecase"
)

// SessionResponse mirrors the in-progress selection. Unset steps are
// omitted so the client can tell how far the flow has advanced.
type SessionResponse struct {
	Movie      *MovieResponse   `json:"movie,omitempty"`
	Date       string           `json:"date,omitempty"`
	Theater    *entity.Theater  `json:"theater,omitempty"`
	Showtime   *entity.Showtime `json:"showtime,omitempty"`
	Seats      []string         `json:"seats"`
	TotalPrice int              `json:"total_price"`
}

func SessionToResponse(sess *usecase.BookingSession) SessionResponse {
	out := SessionResponse{
		Seats:      sess.Seats,
		TotalPrice: sess.TotalPrice,
	}
	if out.Seats == nil {
		out.Seats = []string{}
	}
	if sess.Movie != nil {
		movie := MovieToResponse(sess.Movie)
		out.Movie = &movie
	}
	if sess.Date != nil {
		out.Date = sess.Date.Format("2006-01-02")
	}
	out.Theater = sess.Theater
	out.Showtime = sess.Showtime
	return out
}

type BookingResponse struct {
	BookingID  string          `json:"booking_id"`
	Movie      MovieResponse   `json:"movie"`
	Theater    entity.Theater  `json:"theater"`
	Showtime   entity.Showtime `json:"showtime"`
	Date       string          `json:"date"`
	Seats      []string        `json:"seats"`
	TotalPrice int             `json:"total_price"`
	QRCodeURL  string          `json:"qr_code_url"`
	CreatedAt  time.Time       `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  booking.BookingID,
		Movie:      MovieToResponse(&booking.Movie),
		Theater:    booking.Theater,
		Showtime:   booking.Showtime,
		Date:       booking.Date.Format("2006-01-02"),
		Seats:      booking.Seats,
		TotalPrice: booking.TotalPrice,
		QRCodeURL:  booking.QRCodeURL,
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}

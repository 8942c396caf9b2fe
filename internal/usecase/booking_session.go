package usecase

import (
	"fmt"
	"time"

	"cinebook/internal/data/entity"

	"github.com/google/uuid"
)

// BookingSession tracks one user's in-progress selection as it moves
// through movie → date → theater → showtime → seats → payment. Each choice
// invalidates everything downstream of it, so the fields can never describe
// an impossible combination. TotalPrice is always recomputed from the seat
// catalog, never adjusted independently.
//
// The session is not safe for concurrent use; the session service
// serializes access per user.
type BookingSession struct {
	Movie      *entity.Movie
	Date       *time.Time
	Theater    *entity.Theater
	Showtime   *entity.Showtime
	Seats      []string
	TotalPrice int
}

func NewBookingSession() *BookingSession {
	return &BookingSession{}
}

// ChooseMovie starts a selection over. Downstream fields are cleared
// unconditionally, even when re-choosing the same movie.
func (s *BookingSession) ChooseMovie(movie *entity.Movie) {
	m := *movie
	s.Movie = &m
	s.Date = nil
	s.Theater = nil
	s.Showtime = nil
	s.Seats = nil
	s.TotalPrice = 0
}

func (s *BookingSession) ChooseDate(date time.Time) error {
	if s.Movie == nil {
		return fmt.Errorf("choose a movie first: %w", ErrInvalidTransition)
	}

	d := date
	s.Date = &d
	s.Theater = nil
	s.Showtime = nil
	s.Seats = nil
	s.TotalPrice = 0
	return nil
}

func (s *BookingSession) ChooseTheater(theater entity.Theater) error {
	if s.Date == nil {
		return fmt.Errorf("choose a date first: %w", ErrInvalidTransition)
	}

	t := theater
	s.Theater = &t
	s.Showtime = nil
	s.Seats = nil
	s.TotalPrice = 0
	return nil
}

func (s *BookingSession) ChooseShowtime(showtime entity.Showtime) error {
	if s.Theater == nil {
		return fmt.Errorf("choose a theater first: %w", ErrInvalidTransition)
	}

	st := showtime
	s.Showtime = &st
	s.Seats = nil
	s.TotalPrice = 0
	return nil
}

// SelectSeats replaces the seat selection and recomputes the total price
// from the supplied seat catalog. Ids that are not in the catalog are
// silently dropped; that is the guard against selections outliving a
// seat-map refresh. Picking a booked seat is an error: session state must
// never overwrite the booked baseline. Display order follows catalog order.
func (s *BookingSession) SelectSeats(seatIDs []string, seatCatalog []entity.Seat) error {
	if s.Showtime == nil {
		return fmt.Errorf("choose a showtime first: %w", ErrInvalidTransition)
	}

	wanted := make(map[string]bool, len(seatIDs))
	for _, id := range seatIDs {
		wanted[id] = true
	}

	var (
		selected []string
		total    int
	)
	for _, seat := range seatCatalog {
		if !wanted[seat.ID] {
			continue
		}
		if seat.Status == entity.SeatStatusBooked {
			return NewValidationError("seat_ids", fmt.Sprintf("Seat %s is already booked", seat.ID))
		}
		selected = append(selected, seat.ID)
		total += seat.Price
	}

	s.Seats = selected
	s.TotalPrice = total
	return nil
}

// PaymentReady reports whether the selection is complete enough to pay for.
func (s *BookingSession) PaymentReady() error {
	if s.Movie == nil || s.Date == nil || s.Theater == nil || s.Showtime == nil {
		return fmt.Errorf("selection is missing required steps: %w", ErrIncompleteSelection)
	}
	if len(s.Seats) == 0 {
		return fmt.Errorf("no seats selected: %w", ErrIncompleteSelection)
	}
	return nil
}

// Reset clears the whole selection.
func (s *BookingSession) Reset() {
	*s = BookingSession{}
}

// Draft captures the completed selection for the ledger. PaymentReady must
// hold before calling.
func (s *BookingSession) Draft() BookingDraft {
	seats := append([]string(nil), s.Seats...)
	return BookingDraft{
		Movie:      *s.Movie,
		Theater:    *s.Theater,
		Showtime:   *s.Showtime,
		Date:       *s.Date,
		Seats:      seats,
		TotalPrice: s.TotalPrice,
	}
}

// BookingDraft is the immutable snapshot a completed session hands to the
// ledger.
type BookingDraft struct {
	UserID     uuid.UUID // set by the session service
	Movie      entity.Movie
	Theater    entity.Theater
	Showtime   entity.Showtime
	Date       time.Time
	Seats      []string
	TotalPrice int
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionFixture struct {
	repo     *repository.Repository
	sessions SessionService
	movie    *entity.Movie
	token    uuid.UUID
	userID   uuid.UUID
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewRepository(nil, log)
	ctx := context.Background()

	movie := testMovie("Kalki 2898 AD")
	if err := repo.Movie.Create(ctx, movie); err != nil {
		t.Fatalf("seed movie: %v", err)
	}
	for _, chain := range testChains {
		if err := repo.Chain.Add(ctx, chain); err != nil {
			t.Fatalf("seed chain: %v", err)
		}
	}

	availability := NewAvailabilityService(repo, log)
	ledger := NewLedgerService(repo, log)
	sessions := NewSessionService(repo, availability, ledger, log)

	return &sessionFixture{
		repo:     repo,
		sessions: sessions,
		movie:    movie,
		token:    uuid.New(),
		userID:   uuid.New(),
	}
}

// advance walks the fixture's session through the whole funnel using seats
// the generator actually reports as available.
func (f *sessionFixture) advance(t *testing.T) *BookingSession {
	t.Helper()
	ctx := context.Background()

	if _, err := f.sessions.ChooseMovie(ctx, f.token, &request.ChooseMovieRequest{MovieID: f.movie.ID.String()}); err != nil {
		t.Fatalf("choose movie: %v", err)
	}
	if _, err := f.sessions.ChooseDate(ctx, f.token, &request.ChooseDateRequest{Date: "2026-09-05"}); err != nil {
		t.Fatalf("choose date: %v", err)
	}
	if _, err := f.sessions.ChooseTheater(ctx, f.token, &request.ChooseTheaterRequest{City: "Hyderabad", TheaterID: "t-hyderabad-1"}); err != nil {
		t.Fatalf("choose theater: %v", err)
	}

	showtime := GenerateShowtimes("t-hyderabad-1")[0]
	if _, err := f.sessions.ChooseShowtime(ctx, f.token, &request.ChooseShowtimeRequest{ShowtimeID: showtime.ID}); err != nil {
		t.Fatalf("choose showtime: %v", err)
	}

	seatIDs, want := pickAvailableSeats(t, showtime.ID, 2)
	sess, err := f.sessions.SelectSeats(ctx, f.token, &request.SelectSeatsRequest{SeatIDs: seatIDs})
	if err != nil {
		t.Fatalf("select seats: %v", err)
	}
	if sess.TotalPrice != want {
		t.Fatalf("total = %d, want %d", sess.TotalPrice, want)
	}
	return sess
}

// pickAvailableSeats returns the ids and summed price of the first n
// available seats on a showtime at default pricing.
func pickAvailableSeats(t *testing.T, showtimeID string, n int) ([]string, int) {
	t.Helper()
	var (
		ids   []string
		total int
	)
	for _, seat := range GenerateSeats(showtimeID, testPricing) {
		if seat.Status != entity.SeatStatusAvailable {
			continue
		}
		ids = append(ids, seat.ID)
		total += seat.Price
		if len(ids) == n {
			return ids, total
		}
	}
	t.Fatalf("showtime %s has fewer than %d available seats", showtimeID, n)
	return nil, 0
}

func TestSessionFullFunnel(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)

	booking, err := f.sessions.Confirm(ctx, f.token, f.userID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if booking.Movie.Title != "Kalki 2898 AD" || booking.UserID != f.userID {
		t.Errorf("booking snapshot wrong: %+v", booking)
	}

	// Confirmation resets the funnel for the next booking.
	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Movie != nil || len(sess.Seats) != 0 {
		t.Errorf("session not reset after confirm: %+v", sess)
	}
}

func TestSessionChooseMovieUnknown(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.sessions.ChooseMovie(context.Background(), f.token, &request.ChooseMovieRequest{MovieID: uuid.NewString()})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSessionChooseTheaterValidatesDerivation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	if _, err := f.sessions.ChooseMovie(ctx, f.token, &request.ChooseMovieRequest{MovieID: f.movie.ID.String()}); err != nil {
		t.Fatalf("choose movie: %v", err)
	}
	if _, err := f.sessions.ChooseDate(ctx, f.token, &request.ChooseDateRequest{Date: "2026-09-05"}); err != nil {
		t.Fatalf("choose date: %v", err)
	}

	// Hyderabad derives exactly two theaters; a third id does not exist.
	_, err := f.sessions.ChooseTheater(ctx, f.token, &request.ChooseTheaterRequest{City: "Hyderabad", TheaterID: "t-hyderabad-9"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSessionChooseShowtimeBeforeTheater(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.sessions.ChooseShowtime(context.Background(), f.token, &request.ChooseShowtimeRequest{ShowtimeID: "st-t-hyderabad-1-09:00AM"})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("got %v, want ErrInvalidTransition", err)
	}
}

func TestSessionSelectBookedSeat(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)

	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}

	var bookedID string
	for _, seat := range GenerateSeats(sess.Showtime.ID, testPricing) {
		if seat.Status == entity.SeatStatusBooked {
			bookedID = seat.ID
			break
		}
	}
	if bookedID == "" {
		t.Fatal("no booked seat on showtime")
	}

	_, err = f.sessions.SelectSeats(ctx, f.token, &request.SelectSeatsRequest{SeatIDs: []string{bookedID}})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestSessionConfirmWithoutSeats(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)
	if _, err := f.sessions.SelectSeats(ctx, f.token, &request.SelectSeatsRequest{}); err != nil {
		t.Fatalf("clear seats: %v", err)
	}

	_, err := f.sessions.Confirm(ctx, f.token, f.userID)
	if !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("got %v, want ErrIncompleteSelection", err)
	}

	// The rejected confirm leaves every upstream choice in place.
	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Movie == nil || sess.Showtime == nil {
		t.Errorf("rejected confirm cleared the session: %+v", sess)
	}
}

func TestSessionConfirmRetryAfterLedgerFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.repo.Booking = &failingBookingRepository{}
	before := f.advance(t)

	_, err := f.sessions.Confirm(ctx, f.token, f.userID)
	if !errors.Is(err, ErrBookingCreation) {
		t.Fatalf("got %v, want ErrBookingCreation", err)
	}

	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Movie == nil || sess.Showtime == nil || sess.TotalPrice != before.TotalPrice {
		t.Fatalf("failed confirm mutated the session: %+v", sess)
	}

	// Storage comes back; the untouched session confirms cleanly.
	f.repo.Booking = repository.NewMemoryBookingRepository(zap.NewNop())
	if _, err := f.sessions.Confirm(ctx, f.token, f.userID); err != nil {
		t.Fatalf("retry confirm: %v", err)
	}
}

func TestSessionSurvivesMovieDeletion(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)

	if err := f.repo.Movie.Delete(ctx, f.movie.ID); err != nil {
		t.Fatalf("delete movie: %v", err)
	}

	// The session keeps its snapshot and can still confirm.
	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Movie == nil || sess.Movie.Title != "Kalki 2898 AD" {
		t.Fatalf("movie deletion reached the session: %+v", sess)
	}
	if _, err := f.sessions.Confirm(ctx, f.token, f.userID); err != nil {
		t.Errorf("confirm after deletion: %v", err)
	}
}

func TestSessionClear(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)
	f.sessions.Clear(ctx, f.token)

	sess, err := f.sessions.Get(ctx, f.token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Movie != nil {
		t.Errorf("cleared session still populated: %+v", sess)
	}
}

func TestSessionsIsolatedPerToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.advance(t)

	other, err := f.sessions.Get(ctx, uuid.New())
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if other.Movie != nil {
		t.Errorf("fresh token sees another user's selection: %+v", other)
	}
}

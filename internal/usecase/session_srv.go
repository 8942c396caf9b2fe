package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService keeps one active BookingSession per authenticated session
// token and validates every choice against what the availability generators
// actually return for the current catalog.
type SessionService interface {
	Get(ctx context.Context, token uuid.UUID) (*BookingSession, error)
	ChooseMovie(ctx context.Context, token uuid.UUID, req *request.ChooseMovieRequest) (*BookingSession, error)
	ChooseDate(ctx context.Context, token uuid.UUID, req *request.ChooseDateRequest) (*BookingSession, error)
	ChooseTheater(ctx context.Context, token uuid.UUID, req *request.ChooseTheaterRequest) (*BookingSession, error)
	ChooseShowtime(ctx context.Context, token uuid.UUID, req *request.ChooseShowtimeRequest) (*BookingSession, error)
	SelectSeats(ctx context.Context, token uuid.UUID, req *request.SelectSeatsRequest) (*BookingSession, error)
	Confirm(ctx context.Context, token uuid.UUID, userID uuid.UUID) (*entity.Booking, error)
	Clear(ctx context.Context, token uuid.UUID)
}

type sessionService struct {
	mu           sync.Mutex
	sessions     map[uuid.UUID]*BookingSession
	repo         *repository.Repository
	availability AvailabilityService
	ledger       LedgerService
	log          *zap.Logger
}

func NewSessionService(
	repo *repository.Repository,
	availability AvailabilityService,
	ledger LedgerService,
	log *zap.Logger,
) SessionService {
	return &sessionService{
		sessions:     make(map[uuid.UUID]*BookingSession),
		repo:         repo,
		availability: availability,
		ledger:       ledger,
		log:          log.With(zap.String("service", "session")),
	}
}

// session returns the live BookingSession for a token, creating an empty
// one on first use. Callers must hold s.mu.
func (s *sessionService) session(token uuid.UUID) *BookingSession {
	sess, ok := s.sessions[token]
	if !ok {
		sess = NewBookingSession()
		s.sessions[token] = sess
	}
	return sess
}

// snapshot returns an independent copy so callers never see later mutations.
func snapshot(sess *BookingSession) *BookingSession {
	out := *sess
	out.Seats = append([]string(nil), sess.Seats...)
	return &out
}

func (s *sessionService) Get(ctx context.Context, token uuid.UUID) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.session(token)), nil
}

func (s *sessionService) ChooseMovie(ctx context.Context, token uuid.UUID, req *request.ChooseMovieRequest) (*BookingSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, NewValidationError("movie_id", "Must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to load movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("load movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	sess.ChooseMovie(movie)

	s.log.Info("Booking movie chosen",
		zap.String("token", token.String()),
		zap.String("movie", movie.Title),
	)
	return snapshot(sess), nil
}

func (s *sessionService) ChooseDate(ctx context.Context, token uuid.UUID, req *request.ChooseDateRequest) (*BookingSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, NewValidationError("date", "Must be a date in 2006-01-02 format")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	if err := sess.ChooseDate(date); err != nil {
		return nil, err
	}

	s.log.Info("Booking date chosen",
		zap.String("token", token.String()),
		zap.String("date", req.Date),
	)
	return snapshot(sess), nil
}

func (s *sessionService) ChooseTheater(ctx context.Context, token uuid.UUID, req *request.ChooseTheaterRequest) (*BookingSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// The theater must be one the generator currently derives for the city.
	theaters, err := s.availability.TheatersForCity(ctx, req.City)
	if err != nil {
		return nil, fmt.Errorf("derive theaters: %w", err)
	}

	var theater *entity.Theater
	for i := range theaters {
		if theaters[i].ID == req.TheaterID {
			theater = &theaters[i]
			break
		}
	}
	if theater == nil {
		return nil, fmt.Errorf("theater %s in %s: %w", req.TheaterID, req.City, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	if err := sess.ChooseTheater(*theater); err != nil {
		return nil, err
	}

	s.log.Info("Booking theater chosen",
		zap.String("token", token.String()),
		zap.String("theater_id", theater.ID),
	)
	return snapshot(sess), nil
}

func (s *sessionService) ChooseShowtime(ctx context.Context, token uuid.UUID, req *request.ChooseShowtimeRequest) (*BookingSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	if sess.Theater == nil {
		return nil, fmt.Errorf("choose a theater first: %w", ErrInvalidTransition)
	}

	showtimes := GenerateShowtimes(sess.Theater.ID)
	var showtime *entity.Showtime
	for i := range showtimes {
		if showtimes[i].ID == req.ShowtimeID {
			showtime = &showtimes[i]
			break
		}
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowtimeID, ErrNotFound)
	}

	if err := sess.ChooseShowtime(*showtime); err != nil {
		return nil, err
	}

	s.log.Info("Booking showtime chosen",
		zap.String("token", token.String()),
		zap.String("showtime_id", showtime.ID),
	)
	return snapshot(sess), nil
}

func (s *sessionService) SelectSeats(ctx context.Context, token uuid.UUID, req *request.SelectSeatsRequest) (*BookingSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	if sess.Showtime == nil {
		return nil, fmt.Errorf("choose a showtime first: %w", ErrInvalidTransition)
	}

	pricing, err := s.repo.Pricing.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing: %w", err)
	}
	seatCatalog := GenerateSeats(sess.Showtime.ID, pricing)

	if err := sess.SelectSeats(req.SeatIDs, seatCatalog); err != nil {
		return nil, err
	}

	s.log.Info("Booking seats selected",
		zap.String("token", token.String()),
		zap.Strings("seats", sess.Seats),
		zap.Int("total_price", sess.TotalPrice),
	)
	return snapshot(sess), nil
}

// Confirm finalizes the session into a booking. On ledger failure the
// session is left exactly as it was so the user can retry the payment.
func (s *sessionService) Confirm(ctx context.Context, token uuid.UUID, userID uuid.UUID) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(token)
	if err := sess.PaymentReady(); err != nil {
		return nil, err
	}

	draft := sess.Draft()
	draft.UserID = userID

	booking, err := s.ledger.CreateBooking(ctx, draft)
	if err != nil {
		s.log.Warn("Booking confirmation failed, session preserved",
			zap.Error(err),
			zap.String("token", token.String()),
		)
		return nil, err
	}

	sess.Reset()

	s.log.Info("Booking confirmed",
		zap.String("token", token.String()),
		zap.String("booking_id", booking.BookingID),
	)
	return booking, nil
}

func (s *sessionService) Clear(ctx context.Context, token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService mints and serves finalized bookings. Records are immutable
// once created: either a complete booking is written or none is. The ledger
// does not cross-check seat assignments between bookings; there is no real
// inventory behind the derived seat maps.
type LedgerService interface {
	CreateBooking(ctx context.Context, draft BookingDraft) (*entity.Booking, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}

type ledgerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLedgerService(repo *repository.Repository, log *zap.Logger) LedgerService {
	return &ledgerService{
		repo: repo,
		log:  log.With(zap.String("service", "ledger")),
	}
}

func (s *ledgerService) CreateBooking(ctx context.Context, draft BookingDraft) (*entity.Booking, error) {
	bookingID := utils.GenerateBookingID()

	booking := &entity.Booking{
		BookingID:  bookingID,
		UserID:     draft.UserID,
		Movie:      draft.Movie,
		Theater:    draft.Theater,
		Showtime:   draft.Showtime,
		Date:       draft.Date,
		Seats:      append([]string(nil), draft.Seats...),
		TotalPrice: draft.TotalPrice,
		QRCodeURL:  fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=%s", bookingID),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to write booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("%w: %v", ErrBookingCreation, err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", bookingID),
		zap.String("user_id", draft.UserID.String()),
		zap.String("movie", draft.Movie.Title),
		zap.Int("seats", len(draft.Seats)),
		zap.Int("total_price", draft.TotalPrice),
	)
	return booking, nil
}

func (s *ledgerService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking: %w", err)
	}
	// Bookings are private to their owner.
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	return booking, nil
}

func (s *ledgerService) ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

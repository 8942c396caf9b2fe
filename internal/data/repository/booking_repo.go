package repository

import (
	"context"
	"sync"

	"cinebook/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*entity.Booking
	order    []string
	log      *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[string]*entity.Booking),
		log:      log.With(zap.String("repository", "booking")),
	}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.BookingID]; ok {
		return ErrDuplicate
	}

	// Deep-copy the seats so callers cannot mutate the stored record.
	stored := *booking
	stored.Seats = append([]string(nil), booking.Seats...)
	r.bookings[booking.BookingID] = &stored
	r.order = append(r.order, booking.BookingID)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}

	found := *booking
	found.Seats = append([]string(nil), booking.Seats...)
	return &found, nil
}

func (r *memoryBookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*entity.Booking
	for _, id := range r.order {
		booking := r.bookings[id]
		if booking.UserID != userID {
			continue
		}
		found := *booking
		found.Seats = append([]string(nil), booking.Seats...)
		bookings = append(bookings, &found)
	}
	return bookings, nil
}

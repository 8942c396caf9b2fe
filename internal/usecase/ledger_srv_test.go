package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// failingBookingRepository refuses every write.
type failingBookingRepository struct {
	repository.BookingRepository
}

func (f *failingBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return errors.New("storage unavailable")
}

func testDraft(userID uuid.UUID) BookingDraft {
	return BookingDraft{
		UserID:     userID,
		Movie:      entity.Movie{ID: uuid.New(), Title: "Pushpa 2: The Rule"},
		Theater:    entity.Theater{ID: "t-hyderabad-1", Name: "PVR Cinemas", City: "Hyderabad"},
		Showtime:   entity.Showtime{ID: "st-t-hyderabad-1-07:00PM", Time: "07:00 PM"},
		Date:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Seats:      []string{"A1", "D1"},
		TotalPrice: 650,
	}
}

func TestCreateBooking(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	svc := NewLedgerService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	booking, err := svc.CreateBooking(ctx, testDraft(userID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if !strings.HasPrefix(booking.BookingID, "CINE-") {
		t.Errorf("booking id %q lacks CINE- prefix", booking.BookingID)
	}
	wantQR := "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" + booking.BookingID
	if booking.QRCodeURL != wantQR {
		t.Errorf("qr url = %q, want %q", booking.QRCodeURL, wantQR)
	}
	if booking.TotalPrice != 650 {
		t.Errorf("total = %d, want 650", booking.TotalPrice)
	}
}

func TestBookingIDsUniqueSameTick(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	svc := NewLedgerService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		booking, err := svc.CreateBooking(ctx, testDraft(userID))
		if err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
		if seen[booking.BookingID] {
			t.Fatalf("duplicate booking id %s", booking.BookingID)
		}
		seen[booking.BookingID] = true
	}
}

func TestBookingImmutableSnapshot(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	svc := NewLedgerService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	draft := testDraft(userID)
	booking, err := svc.CreateBooking(ctx, draft)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Mutating the draft after creation must not reach the record.
	draft.Seats[0] = "H12"

	stored, err := svc.GetBooking(ctx, userID, booking.BookingID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if stored.Seats[0] != "A1" {
		t.Errorf("stored seats mutated: %v", stored.Seats)
	}
}

func TestGetBookingOwnerOnly(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	svc := NewLedgerService(repo, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	booking, err := svc.CreateBooking(ctx, testDraft(owner))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.GetBooking(ctx, owner, booking.BookingID); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetBooking(ctx, uuid.New(), booking.BookingID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger lookup: got %v, want ErrNotFound", err)
	}
	if _, err := svc.GetBooking(ctx, owner, "CINE-0-0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestListBookingsPerUser(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	svc := NewLedgerService(repo, zap.NewNop())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateBooking(ctx, testDraft(alice)); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}
	if _, err := svc.CreateBooking(ctx, testDraft(bob)); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	got, err := svc.ListBookings(ctx, alice)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d bookings, want 3", len(got))
	}
	for _, b := range got {
		if b.UserID != alice {
			t.Errorf("foreign booking %s in list", b.BookingID)
		}
	}
}

func TestCreateBookingStorageFailure(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())
	repo.Booking = &failingBookingRepository{}
	svc := NewLedgerService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), testDraft(uuid.New()))
	if !errors.Is(err, ErrBookingCreation) {
		t.Fatalf("got %v, want ErrBookingCreation", err)
	}
}

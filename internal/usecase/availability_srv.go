package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"

	"go.uber.org/zap"
)

// showtimeLabels is the fixed ordered catalog of time-of-day labels that
// showtimes are drawn from.
var showtimeLabels = []string{
	"09:00 AM", "10:30 AM", "11:45 AM", "12:30 PM", "02:00 PM",
	"03:15 PM", "04:30 PM", "05:45 PM", "07:00 PM", "08:15 PM",
	"09:30 PM", "10:45 PM",
}

const (
	seatRows    = "ABCDEFGH"
	seatsPerRow = 12
)

var premiumRows = map[byte]bool{'D': true, 'E': true, 'F': true}

// AvailabilityService derives theaters, showtimes and seat maps on demand.
// Nothing here is stored: identical inputs and an unchanged catalog always
// produce identical output.
type AvailabilityService interface {
	TheatersForCity(ctx context.Context, city string) ([]entity.Theater, error)
	ShowtimesForTheater(ctx context.Context, theaterID string) ([]entity.Showtime, error)
	SeatsForShowtime(ctx context.Context, showtimeID string) ([]entity.Seat, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) TheatersForCity(ctx context.Context, city string) ([]entity.Theater, error) {
	chains, err := s.repo.Chain.List(ctx)
	if err != nil {
		s.log.Error("Failed to load theater chains", zap.Error(err))
		return nil, fmt.Errorf("load chains: %w", err)
	}

	theaters := GenerateTheaters(city, chains)

	s.log.Debug("Theaters derived",
		zap.String("city", city),
		zap.Int("count", len(theaters)),
	)
	return theaters, nil
}

func (s *availabilityService) ShowtimesForTheater(ctx context.Context, theaterID string) ([]entity.Showtime, error) {
	showtimes := GenerateShowtimes(theaterID)

	s.log.Debug("Showtimes derived",
		zap.String("theater_id", theaterID),
		zap.Int("count", len(showtimes)),
	)
	return showtimes, nil
}

func (s *availabilityService) SeatsForShowtime(ctx context.Context, showtimeID string) ([]entity.Seat, error) {
	// Pricing is read at call time, never cached: a pricing update changes
	// seats generated afterwards but not lists already handed out.
	pricing, err := s.repo.Pricing.Get(ctx)
	if err != nil {
		s.log.Error("Failed to load pricing", zap.Error(err))
		return nil, fmt.Errorf("load pricing: %w", err)
	}

	seats := GenerateSeats(showtimeID, pricing)

	s.log.Debug("Seats derived",
		zap.String("showtime_id", showtimeID),
		zap.Int("count", len(seats)),
	)
	return seats, nil
}

// GenerateTheaters derives 2-5 theaters for a city from the city hash and
// the chain-name list. An empty city or an empty chain list yields an empty
// result.
func GenerateTheaters(city string, chains []string) []entity.Theater {
	if city == "" || len(chains) == 0 {
		return nil
	}

	cityHash := charSum(city)
	count := 2 + cityHash%4
	slug := strings.Join(strings.Fields(strings.ToLower(city)), "")

	theaters := make([]entity.Theater, 0, count)
	for i := 0; i < count; i++ {
		name := chains[(cityHash+i)%len(chains)]
		theaters = append(theaters, entity.Theater{
			ID:      fmt.Sprintf("t-%s-%d", slug, i+1),
			Name:    name,
			City:    city,
			Address: fmt.Sprintf("%d Main Road, %s", i+1, city),
		})
	}
	return theaters
}

// GenerateShowtimes derives 3-6 showtimes for a theater. The label catalog
// is reordered by a Fisher-Yates shuffle seeded on the theater hash, then
// the first entries are taken and the result sorted ascending by
// time-of-day. AvailableSeats is independent of the seat map and may
// disagree with it.
func GenerateShowtimes(theaterID string) []entity.Showtime {
	if theaterID == "" {
		return nil
	}

	theaterHash := charSum(theaterID)
	count := 3 + theaterHash%4

	labels := make([]string, len(showtimeLabels))
	copy(labels, showtimeLabels)
	rng := rand.New(rand.NewSource(int64(theaterHash)))
	rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	showtimes := make([]entity.Showtime, 0, count)
	for i := 0; i < count; i++ {
		label := labels[i%len(labels)]
		showtimes = append(showtimes, entity.Showtime{
			ID:             fmt.Sprintf("st-%s-%s", theaterID, strings.ReplaceAll(label, " ", "")),
			Time:           label,
			AvailableSeats: 10 + (theaterHash*(i+1))%70,
		})
	}

	sort.Slice(showtimes, func(i, j int) bool {
		return clockMinutes(showtimes[i].Time) < clockMinutes(showtimes[j].Time)
	})
	return showtimes
}

// GenerateSeats derives the fixed 96-seat map (rows A-H, 12 per row,
// row-major order) for a showtime. Rows D-F are premium. Roughly 30% of the
// seats come out booked; that partition is baked into the hash, not derived
// from any real booking.
func GenerateSeats(showtimeID string, pricing entity.Pricing) []entity.Seat {
	showtimeHash := charSum(showtimeID)

	seats := make([]entity.Seat, 0, len(seatRows)*seatsPerRow)
	for r := 0; r < len(seatRows); r++ {
		row := seatRows[r]
		category := entity.SeatCategoryStandard
		price := pricing.Standard
		if premiumRows[row] {
			category = entity.SeatCategoryPremium
			price = pricing.Premium
		}

		for i := 1; i <= seatsPerRow; i++ {
			seed := showtimeHash + r*seatsPerRow + i
			status := entity.SeatStatusAvailable
			if seed%10 < 3 {
				status = entity.SeatStatusBooked
			}
			seats = append(seats, entity.Seat{
				ID:       fmt.Sprintf("%c%d", row, i),
				Status:   status,
				Category: category,
				Price:    price,
			})
		}
	}
	return seats
}

// clockMinutes converts a "03:15 PM" label to minutes since midnight.
func clockMinutes(label string) int {
	t, err := time.Parse("03:04 PM", label)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

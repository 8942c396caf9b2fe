package usecase

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"cinebook/internal/data/entity"
)

var testChains = []string{
	"PVR Cinemas", "INOX Leisure", "Cinepolis", "SPI Cinemas", "AGS Cinemas",
	"Luxe Cinemas", "Gopalan Cinemas", "Carnival Cinemas", "Miraj Cinemas", "Mayajaal",
}

var testPricing = entity.Pricing{Standard: 250, Premium: 400}

func TestCharSum(t *testing.T) {
	if got := charSum("Hyderabad"); got != 900 {
		t.Fatalf("charSum(Hyderabad) = %d, want 900", got)
	}
	if got := charSum(""); got != 0 {
		t.Fatalf("charSum(empty) = %d, want 0", got)
	}
}

func TestGenerateTheatersHyderabad(t *testing.T) {
	got := GenerateTheaters("Hyderabad", testChains)

	want := []entity.Theater{
		{ID: "t-hyderabad-1", Name: "PVR Cinemas", City: "Hyderabad", Address: "1 Main Road, Hyderabad"},
		{ID: "t-hyderabad-2", Name: "INOX Leisure", City: "Hyderabad", Address: "2 Main Road, Hyderabad"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("theaters mismatch\ngot  %+v\nwant %+v", got, want)
	}
}

func TestGenerateTheatersDeterministic(t *testing.T) {
	cities := []string{"Hyderabad", "Chennai", "Bengaluru", "Mumbai", "Kochi", "Warangal"}
	for _, city := range cities {
		first := GenerateTheaters(city, testChains)
		second := GenerateTheaters(city, testChains)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated generation differs", city)
		}

		if len(first) < 2 || len(first) > 5 {
			t.Errorf("%s: got %d theaters, want between 2 and 5", city, len(first))
		}

		seen := make(map[string]bool)
		for _, th := range first {
			if seen[th.ID] {
				t.Errorf("%s: duplicate theater id %s", city, th.ID)
			}
			seen[th.ID] = true
			if th.City != city {
				t.Errorf("%s: theater %s carries city %q", city, th.ID, th.City)
			}
		}
	}
}

func TestGenerateTheatersEmptyInputs(t *testing.T) {
	if got := GenerateTheaters("", testChains); got != nil {
		t.Errorf("empty city: got %v, want nil", got)
	}
	if got := GenerateTheaters("Hyderabad", nil); got != nil {
		t.Errorf("empty chains: got %v, want nil", got)
	}
}

func TestGenerateTheatersCitySlug(t *testing.T) {
	got := GenerateTheaters("New Delhi", testChains)
	if len(got) == 0 {
		t.Fatal("no theaters for New Delhi")
	}
	if !strings.HasPrefix(got[0].ID, "t-newdelhi-") {
		t.Errorf("slug: got id %s, want t-newdelhi- prefix", got[0].ID)
	}
}

func TestGenerateShowtimes(t *testing.T) {
	theaters := []string{"t-hyderabad-1", "t-hyderabad-2", "t-chennai-1", "t-mumbai-3"}
	for _, id := range theaters {
		first := GenerateShowtimes(id)
		second := GenerateShowtimes(id)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated generation differs", id)
		}

		if len(first) < 3 || len(first) > 6 {
			t.Errorf("%s: got %d showtimes, want between 3 and 6", id, len(first))
		}

		seen := make(map[string]bool)
		for i, st := range first {
			if seen[st.Time] {
				t.Errorf("%s: duplicate label %s", id, st.Time)
			}
			seen[st.Time] = true

			wantID := "st-" + id + "-" + strings.ReplaceAll(st.Time, " ", "")
			if st.ID != wantID {
				t.Errorf("%s: showtime id %s, want %s", id, st.ID, wantID)
			}
			if st.AvailableSeats < 10 || st.AvailableSeats > 79 {
				t.Errorf("%s: availableSeats %d out of range [10,79]", id, st.AvailableSeats)
			}
			if i > 0 && clockMinutes(first[i-1].Time) > clockMinutes(st.Time) {
				t.Errorf("%s: showtimes not sorted: %s after %s", id, st.Time, first[i-1].Time)
			}
		}
	}
}

func TestGenerateShowtimesEmptyTheater(t *testing.T) {
	if got := GenerateShowtimes(""); got != nil {
		t.Errorf("empty theater id: got %v, want nil", got)
	}
}

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats("st-t-hyderabad-1-09:00AM", testPricing)

	if len(seats) != 96 {
		t.Fatalf("got %d seats, want 96", len(seats))
	}

	// Row-major order, 12 seats per row A through H.
	idx := 0
	for _, row := range "ABCDEFGH" {
		for i := 1; i <= 12; i++ {
			seat := seats[idx]
			wantID := string(row) + strconv.Itoa(i)
			if seat.ID != wantID {
				t.Fatalf("seat %d: id %s, want %s", idx, seat.ID, wantID)
			}

			premium := row == 'D' || row == 'E' || row == 'F'
			if premium && (seat.Category != entity.SeatCategoryPremium || seat.Price != 400) {
				t.Errorf("seat %s: got %s/%d, want Premium/400", seat.ID, seat.Category, seat.Price)
			}
			if !premium && (seat.Category != entity.SeatCategoryStandard || seat.Price != 250) {
				t.Errorf("seat %s: got %s/%d, want Standard/250", seat.ID, seat.Category, seat.Price)
			}
			idx++
		}
	}
}

func TestGenerateSeatsBookedPartitionStable(t *testing.T) {
	first := GenerateSeats("st-t-chennai-2-07:00PM", testPricing)
	second := GenerateSeats("st-t-chennai-2-07:00PM", testPricing)

	booked := 0
	for i := range first {
		if first[i].Status != second[i].Status {
			t.Fatalf("seat %s: status changed between calls", first[i].ID)
		}
		if first[i].Status == entity.SeatStatusBooked {
			booked++
		}
	}
	if booked == 0 || booked == len(first) {
		t.Fatalf("booked partition degenerate: %d of %d", booked, len(first))
	}
}

func TestGenerateSeatsPricingChangesPriceNotStatus(t *testing.T) {
	before := GenerateSeats("st-t-kochi-1-02:00PM", testPricing)
	after := GenerateSeats("st-t-kochi-1-02:00PM", entity.Pricing{Standard: 300, Premium: 500})

	for i := range before {
		if before[i].Status != after[i].Status {
			t.Fatalf("seat %s: pricing update flipped status", before[i].ID)
		}
	}
	if after[0].Price != 300 {
		t.Errorf("A1 price after update: got %d, want 300", after[0].Price)
	}
	if after[36].Price != 500 {
		t.Errorf("D1 price after update: got %d, want 500", after[36].Price)
	}
}

// The advertised seat count on a showtime is hashed independently of the
// seat map, so the two disagree for most showtimes. Pin that: at least one
// showtime across these cities must advertise a count that differs from its
// actual availability.
func TestShowtimeAvailableSeatsIndependentOfSeatMap(t *testing.T) {
	mismatch := false
	for _, city := range []string{"Hyderabad", "Chennai", "Mumbai", "Kochi", "Bengaluru"} {
		for _, theater := range GenerateTheaters(city, testChains) {
			for _, st := range GenerateShowtimes(theater.ID) {
				available := 0
				for _, seat := range GenerateSeats(st.ID, testPricing) {
					if seat.Status == entity.SeatStatusAvailable {
						available++
					}
				}
				if available != st.AvailableSeats {
					mismatch = true
				}
			}
		}
	}
	if !mismatch {
		t.Error("every showtime matched its seat map; counts are supposed to be independent")
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"09:00 AM", 540},
		{"12:30 PM", 750},
		{"10:45 PM", 22*60 + 45},
		{"bogus", 0},
	}
	for _, c := range cases {
		if got := clockMinutes(c.label); got != c.want {
			t.Errorf("clockMinutes(%q) = %d, want %d", c.label, got, c.want)
		}
	}
}

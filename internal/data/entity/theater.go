package entity

// Theater is derived on demand from the city hash and the chain-name set.
// It is never stored: the same city always yields the same list as long as
// the chain names are unchanged.
type Theater struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// Showtime is derived per theater. AvailableSeats is generated independently
// of the seat map and can disagree with the booked-seat tally there; that
// inconsistency is part of the contract, not something to reconcile.
type Showtime struct {
	ID             string `json:"id"`
	Time           string `json:"time"` // e.g. "10:30 AM"
	AvailableSeats int    `json:"available_seats"`
}

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusSelected  SeatStatus = "selected"
	SeatStatusBooked    SeatStatus = "booked"
)

type SeatCategory string

const (
	SeatCategoryStandard SeatCategory = "Standard"
	SeatCategoryPremium  SeatCategory = "Premium"
)

// Seat is derived per showtime. Price is copied from the pricing table at
// generation time, so a pricing update changes seats generated afterwards
// but not lists already handed out.
type Seat struct {
	ID       string       `json:"id"` // row letter + column, e.g. "D7"
	Status   SeatStatus   `json:"status"`
	Category SeatCategory `json:"category"`
	Price    int          `json:"price"`
}

// Pricing holds the two seat prices in whole rupees. Updated wholesale by
// admin action; no history is kept.
type Pricing struct {
	Standard int `json:"standard" db:"standard_price"`
	Premium  int `json:"premium" db:"premium_price"`
}

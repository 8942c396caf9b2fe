package wire

import (
	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
) {
	// Availability is derived on the fly and public
	r.Get("/api/locations", availabilityHandler.GetLocations)
	r.Get("/api/theaters", availabilityHandler.GetTheaters)
	r.Get("/api/theaters/{theaterID}/showtimes", availabilityHandler.GetShowtimes)
	r.Get("/api/showtimes/{showtimeID}/seats", availabilityHandler.GetSeats)
}

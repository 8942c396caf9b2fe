package adaptor

import (
	"net/http"

	"cinebook/internal/data/entity"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetTheaters handles GET /api/theaters?city=...
// An empty or missing city yields an empty list, mirroring the generator.
func (h *AvailabilityHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	theaters, err := h.service.TheatersForCity(r.Context(), city)
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	if theaters == nil {
		theaters = []entity.Theater{}
	}
	utils.ResponseSuccess(w, "success", theaters)
}

// GetShowtimes handles GET /api/theaters/{theaterID}/showtimes
func (h *AvailabilityHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "theaterID")
	if theaterID == "" {
		utils.ResponseBadRequest(w, "Theater ID is required", nil)
		return
	}

	showtimes, err := h.service.ShowtimesForTheater(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetSeats handles GET /api/showtimes/{showtimeID}/seats
func (h *AvailabilityHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "showtimeID")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	seats, err := h.service.SeatsForShowtime(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetLocations handles GET /api/locations
func (h *AvailabilityHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", map[string]any{
		"states": entity.States,
		"cities": entity.StateCities,
	})
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	sessions usecase.SessionService
	ledger   usecase.LedgerService
	log      *zap.Logger
}

func NewBookingHandler(sessions usecase.SessionService, ledger usecase.LedgerService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		sessions: sessions,
		ledger:   ledger,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// sessionToken pulls the authenticated session token from the context set
// by the auth middleware.
func sessionToken(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	tokenStr, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	token, err := uuid.Parse(tokenStr)
	if err != nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return token, true
}

// GetSession handles GET /api/booking
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	sess, err := h.sessions.Get(r.Context(), token)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking session")
		return
	}

	utils.ResponseSuccess(w, "success", response.SessionToResponse(sess))
}

// ChooseMovie handles POST /api/booking/movie
func (h *BookingHandler) ChooseMovie(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	var req request.ChooseMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sess, err := h.sessions.ChooseMovie(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "choose movie")
		return
	}

	utils.ResponseSuccess(w, "Movie selected", response.SessionToResponse(sess))
}

// ChooseDate handles POST /api/booking/date
func (h *BookingHandler) ChooseDate(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	var req request.ChooseDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sess, err := h.sessions.ChooseDate(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "choose date")
		return
	}

	utils.ResponseSuccess(w, "Date selected", response.SessionToResponse(sess))
}

// ChooseTheater handles POST /api/booking/theater
func (h *BookingHandler) ChooseTheater(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	var req request.ChooseTheaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sess, err := h.sessions.ChooseTheater(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "choose theater")
		return
	}

	utils.ResponseSuccess(w, "Theater selected", response.SessionToResponse(sess))
}

// ChooseShowtime handles POST /api/booking/showtime
func (h *BookingHandler) ChooseShowtime(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	var req request.ChooseShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sess, err := h.sessions.ChooseShowtime(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "choose showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime selected", response.SessionToResponse(sess))
}

// SelectSeats handles POST /api/booking/seats
func (h *BookingHandler) SelectSeats(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	var req request.SelectSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sess, err := h.sessions.SelectSeats(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select seats")
		return
	}

	utils.ResponseSuccess(w, "Seats selected", response.SessionToResponse(sess))
}

// Confirm handles POST /api/booking/confirm, the mock payment action.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.sessions.Confirm(r.Context(), token, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", response.BookingToResponse(booking))
}

// ClearSession handles DELETE /api/booking
func (h *BookingHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r, w)
	if !ok {
		return
	}

	h.sessions.Clear(r.Context(), token)
	utils.ResponseSuccess(w, "Booking session cleared", nil)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.ledger.ListBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingsToResponse(bookings))
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.ledger.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingToResponse(booking))
}

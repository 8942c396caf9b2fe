package wire

import (
	"cinebook/internal/adaptor"
	"cinebook/internal/data/repository"
	"cinebook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// The draft session and the ledger both belong to the logged-in user
	r.Route("/api/booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", bookingHandler.GetSession)              // GET /api/booking
		r.Post("/movie", bookingHandler.ChooseMovie)       // POST /api/booking/movie
		r.Post("/date", bookingHandler.ChooseDate)         // POST /api/booking/date
		r.Post("/theater", bookingHandler.ChooseTheater)   // POST /api/booking/theater
		r.Post("/showtime", bookingHandler.ChooseShowtime) // POST /api/booking/showtime
		r.Post("/seats", bookingHandler.SelectSeats)       // POST /api/booking/seats
		r.Post("/confirm", bookingHandler.Confirm)         // POST /api/booking/confirm
		r.Delete("/", bookingHandler.ClearSession)         // DELETE /api/booking
	})

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", bookingHandler.ListBookings)   // GET /api/bookings
		r.Get("/{id}", bookingHandler.GetBooking) // GET /api/bookings/{id}
	})
}

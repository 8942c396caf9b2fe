package request

type ChooseMovieRequest struct {
	MovieID string `json:"movie_id" validate:"required,uuid"`
}

type ChooseDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ChooseTheaterRequest struct {
	City      string `json:"city" validate:"required,min=1"`
	TheaterID string `json:"theater_id" validate:"required,min=1"`
}

type ChooseShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required,min=1"`
}

// SeatIDs may be empty: posting an empty list clears the selection.
type SelectSeatsRequest struct {
	SeatIDs []string `json:"seat_ids" validate:"dive,min=2,max=4"`
}

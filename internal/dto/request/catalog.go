package request

type MovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	PosterURL         string  `json:"poster_url" validate:"required,url"`
	Language          string  `json:"language" validate:"required,oneof=Telugu Tamil Hindi Malayalam Kannada English"`
	Genre             string  `json:"genre" validate:"required,min=1,max=100"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1,max=999"`
	Rating            float64 `json:"rating" validate:"gte=0,lte=10"`
	Description       string  `json:"description,omitempty"`
	ReleaseDate       string  `json:"release_date" validate:"required,datetime=2006-01-02"`
}

type ChainRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type PricingRequest struct {
	Standard int `json:"standard" validate:"required,gt=0"`
	Premium  int `json:"premium" validate:"required,gt=0"`
}

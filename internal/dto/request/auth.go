package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type PreferencesRequest struct {
	Theme    *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Language *string `json:"language,omitempty" validate:"omitempty,oneof=Telugu Tamil Hindi Malayalam Kannada English"`
	State    *string `json:"state,omitempty" validate:"omitempty,min=1"`
	City     *string `json:"city,omitempty" validate:"omitempty,min=1"`
}

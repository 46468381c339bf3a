package campus_match

import "campus_match/internal/models"

// Error codes carried in ErrorResponse.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed JSON request.
type ErrorResponse struct {
	Error  string       `json:"error" example:"invalid credentials"`
	Code   string       `json:"code" example:"INVALID_CREDENTIALS"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Rule    string `json:"rule" example:"email"`
	Message string `json:"message" example:"must be a valid email address"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

type IDResponse struct {
	ID int `json:"id" example:"42"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type InterestsResponse struct {
	Interests []models.Interest `json:"interests"`
}

type ActivityResponse struct {
	Count  int                    `json:"count"`
	Events []models.ActivityEvent `json:"events"`
}

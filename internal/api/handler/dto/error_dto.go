package dto

import "time"

// ExceptionDetails is the body of every error response.
type ExceptionDetails struct {
	Title     string            `json:"title" example:"Bad Request! Consult the documentation"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status" example:"400"`
	Exception string            `json:"exception" example:"ValidationError"`
	Details   map[string]string `json:"details"`
}

type TokenRequest struct {
	Username string `json:"username" validate:"required,notblank" example:"admin"`
}

func (r *TokenRequest) Validate() error {
	return validateStruct(r)
}

type TokenResponse struct {
	Token string `json:"token"`
}

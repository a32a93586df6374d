package models

// ErrorResponse is the standard error body returned by controllers.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

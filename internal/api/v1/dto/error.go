package dto

// ValidationErrorResponse is returned with 400 responses
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

package vendex

import "fmt"

// APIError is a non-2xx reply from the vendex API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vendex: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

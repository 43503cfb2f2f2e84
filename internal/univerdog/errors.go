package univerdog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError carries a non-2xx API response. Validation failures (422)
// keep their per-field messages so screens can show them inline.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

// IsValidation reports whether the server rejected the request payload.
func (e *APIError) IsValidation() bool { return e.Status == http.StatusUnprocessableEntity }

// IsUnauthorized reports whether err is a 401 API response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsValidation reports whether err is a 422 API response.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsValidation()
}

// newAPIError drains the response body and pulls out the Laravel-style
// {message, errors} envelope when present. An unreadable body still
// yields a usable error carrying the status code.
func newAPIError(status int, body io.Reader) *APIError {
	apiErr := &APIError{Status: status}

	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var envelope struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		apiErr.Message = string(raw)
		return apiErr
	}

	apiErr.Message = envelope.Message
	apiErr.Fields = envelope.Errors
	return apiErr
}

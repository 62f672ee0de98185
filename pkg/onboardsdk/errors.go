package onboardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared between the server and this SDK.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeGone              = "gone"
	ErrorCodeTooManyRequests   = "too_many_requests"
	ErrorCodeServerError       = "server_error"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
)

// APIError is the error body the onboarding service returns. It implements
// the error interface so SDK callers can inspect the code and status.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsConflict reports whether the server refused the request because the
// resource was already settled or duplicated.
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

// IsGone reports whether the token or link can never work again.
func (e *APIError) IsGone() bool { return e.StatusCode == http.StatusGone }

// parseErrorResponse turns a non-success response into an *APIError. Bodies
// that are not the standard error shape still yield a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected response status %d", resp.StatusCode)
	}
	return apiErr
}

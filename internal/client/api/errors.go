package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NetworkError means no response reached the client.
type NetworkError struct {
	Err    error
	Method string
	Path   string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RequestError means the server answered with a non-2xx status.
// Body is kept verbatim for callers that need to inspect it.
type RequestError struct {
	Method string
	Path   string
	Body   string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// MalformedResponseError means a success status carried a body that could not
// be parsed into the expected shape.
type MalformedResponseError struct {
	Err    error
	Method string
	Path   string
	Body   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s %s: malformed response: %v", e.Method, e.Path, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// DuplicateFavoriteError is a RequestError returned by an add-favorite call
// whose body says the record already exists.
type DuplicateFavoriteError struct {
	Request  *RequestError
	RecipeID string
}

func (e *DuplicateFavoriteError) Error() string {
	return fmt.Sprintf("recipe %s is already a favorite: %v", e.RecipeID, e.Request)
}

func (e *DuplicateFavoriteError) Unwrap() error {
	return e.Request
}

// duplicateMarkers are matched case-insensitively against the error body.
// The backend has no dedicated status or code for this condition.
var duplicateMarkers = []string{
	"already",
	"déjà",
	"deja",
	"duplicate",
}

// IsDuplicateFavorite reports whether a server error body describes an
// already existing favorite. It is the only place that knows the message format.
func IsDuplicateFavorite(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range duplicateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsUnauthorized reports whether err is a 401 or 403 response, i.e. the
// credential was rejected.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.Status == http.StatusUnauthorized || reqErr.Status == http.StatusForbidden
}

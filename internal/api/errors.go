package api

import "net/http"

// HTTPError is an error with an HTTP status and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrInvalidRequest   = HTTPError{Code: http.StatusBadRequest, Key: "invalid_request"}
	ErrUnknownRule      = HTTPError{Code: http.StatusNotFound, Key: "unknown_rule"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrRateLimited      = HTTPError{Code: http.StatusTooManyRequests, Key: "rate_limited"}
)

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

// Response is the envelope of every JSON body served by the API.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, data any) {
	if err := writeJSON(w, http.StatusOK, Response{Data: data}); err != nil {
		h.log.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

// respondError maps err onto a status code and error envelope.
// Unrecognised errors become 500 internal_error; their text is only exposed in
// development. Unknown rule names are not echoed back in production.
func (h *handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: http.StatusText(status)}

	ctx := r.Context()
	if environment.IsDevelopment(ctx) {
		detail.Message = err.Error()
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = "validation failed"
		detail.Details = validator.ExtractValidationErrors(err).Details()
	case errors.Is(err, validator.ErrUnknownRule):
		status = ErrUnknownRule.Code
		detail.Code = ErrUnknownRule.Key
		detail.Message = err.Error()
		if environment.IsProduction(ctx) {
			detail.Message = validator.ErrUnknownRule.Error()
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail.Code = httpErr.Key
		detail.Message = http.StatusText(status)
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(ctx, level, "request failed",
		slog.Int("status", status),
		slog.String("code", detail.Code),
		logger.Error(err),
	)

	if werr := writeJSON(w, status, Response{Code: detail.Code, Error: detail}); werr != nil {
		h.log.WarnContext(ctx, "failed to write response", logger.Error(werr))
	}
}

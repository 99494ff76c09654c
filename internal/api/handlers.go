package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/inputcheck/internal/settings"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

const maxBodySize = 1 << 20

type handlers struct {
	log *slog.Logger
}

// CheckRequest is the JSON body of POST /v1/check/{rule}.
type CheckRequest struct {
	Value     any `json:"value"`
	MinLength int `json:"min_length,omitempty"`
}

func (h *handlers) listRules(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, validator.Rules())
}

func (h *handlers) checkQuery(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	q := r.URL.Query()

	var opts []validator.CheckOption
	if raw := q.Get("min_length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, r, errors.Join(ErrInvalidRequest, err))
			return
		}
		opts = append(opts, validator.WithMinLength(n))
	}

	result, err := validator.CheckString(rule, q.Get("value"), opts...)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logResult(r, rule, result)
	h.respond(w, r, result)
}

func (h *handlers) checkJSON(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")

	var req CheckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	var opts []validator.CheckOption
	if req.MinLength > 0 {
		opts = append(opts, validator.WithMinLength(req.MinLength))
	}

	result, err := validator.Check(rule, req.Value, opts...)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logResult(r, rule, result)
	h.respond(w, r, result)
}

func (h *handlers) checkSettings(w http.ResponseWriter, r *http.Request) {
	s := settings.Defaults()
	if err := decodeJSON(w, r, &s); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := s.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, validator.ValidationResult{Valid: true})
}

func (h *handlers) logResult(r *http.Request, rule string, result validator.ValidationResult) {
	h.log.DebugContext(r.Context(), "value checked",
		logger.Rule(rule),
		logger.Valid(result.Valid),
	)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidRequest, err)
	}
	return nil
}

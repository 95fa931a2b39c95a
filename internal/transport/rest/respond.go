package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors to HTTP status codes. Unknown errors are
// logged and hidden behind a generic 500 response.
func handleError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]map[string]string, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			details = append(details, map[string]string{"field": fe.Field, "message": fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	var publishErr *domain.PublishBlockedError
	if errors.As(err, &publishErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "publish blocked",
			"issues": publishErr.Issues,
		})
		return
	}

	var transitionErr *domain.TransitionError
	if errors.As(err, &transitionErr) {
		status := http.StatusUnprocessableEntity
		switch {
		case errors.Is(transitionErr.Reason, domain.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(transitionErr.Reason, domain.ErrMissingField):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{
			"error": transitionErr.Error(),
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses the named path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid uuid")
	}
	return id, nil
}

// queryInt parses an integer query parameter, returning def when absent
// or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

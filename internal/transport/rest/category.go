package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryHandler serves category REST endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

// List handles GET /categories. No authentication required.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": toCategoryResponses(categories)})
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryResponse{
		ID:   result.ID.String(),
		Name: result.Name,
		Slug: result.Slug,
	})
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

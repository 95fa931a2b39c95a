package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/service/menu"
)

// menuService defines the minimal interface needed by MenuHandler.
type menuService interface {
	CreateItem(ctx context.Context, input menu.CreateItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, input menu.UpdateItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Tree(ctx context.Context) ([]*domain.MenuItem, error)
	ListAll(ctx context.Context) ([]*domain.MenuItem, error)
}

// MenuHandler serves site menu REST endpoints.
type MenuHandler struct {
	svc menuService
	log *slog.Logger
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(svc menuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, log: logger.With("handler", "menu")}
}

// Tree handles GET /menu. Returns the active menu tree for readers.
func (h *MenuHandler) Tree(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Tree(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"menu": toMenuItemResponses(items)})
}

// ListAll handles GET /admin/menu. Returns all items including inactive ones.
func (h *MenuHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"menu": toMenuItemResponses(items)})
}

type createMenuItemRequest struct {
	Label    string  `json:"label"`
	URL      string  `json:"url"`
	ParentID *string `json:"parentId"`
	Position int     `json:"position"`
	Active   bool    `json:"active"`
}

// Create handles POST /admin/menu.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := menu.CreateItemInput{
		Label:    req.Label,
		URL:      req.URL,
		Position: req.Position,
		Active:   req.Active,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parentId must be a valid uuid")
			return
		}
		input.ParentID = &parentID
	}

	result, err := h.svc.CreateItem(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMenuItemResponse(result))
}

type updateMenuItemRequest struct {
	Label    *string `json:"label"`
	URL      *string `json:"url"`
	ParentID *string `json:"parentId"`
	Position *int    `json:"position"`
	Active   *bool   `json:"active"`
}

// Update handles PUT /admin/menu/{id}.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req updateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := menu.UpdateItemInput{
		ItemID:   id,
		Label:    req.Label,
		URL:      req.URL,
		Position: req.Position,
		Active:   req.Active,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parentId must be a valid uuid")
			return
		}
		input.ParentID = &parentID
	}

	result, err := h.svc.UpdateItem(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemResponse(result))
}

// Delete handles DELETE /admin/menu/{id}.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/service/bulletin"
)

// bulletinService defines the minimal interface needed by BulletinHandler.
type bulletinService interface {
	CreateBulletin(ctx context.Context, input bulletin.CreateBulletinInput) (*domain.Bulletin, error)
	GetBulletin(ctx context.Context, bulletinID uuid.UUID) (*domain.Bulletin, error)
	ListBulletins(ctx context.Context, status *domain.BulletinStatus, language *string, limit, offset int) ([]*domain.Bulletin, error)
	ListPublished(ctx context.Context, language *string, limit, offset int) ([]*domain.Bulletin, error)
	UpdateBulletin(ctx context.Context, input bulletin.UpdateBulletinInput) (*domain.Bulletin, error)
	DeleteBulletin(ctx context.Context, input bulletin.DeleteBulletinInput) error
	ChangeStatus(ctx context.Context, input bulletin.ChangeStatusInput) (*domain.Bulletin, error)
	Reorder(ctx context.Context, input bulletin.ReorderInput) (*domain.Bulletin, error)
	AddStory(ctx context.Context, input bulletin.AddStoryInput) (*domain.Bulletin, error)
	RemoveStory(ctx context.Context, input bulletin.RemoveStoryInput) (*domain.Bulletin, error)
}

// BulletinHandler serves radio bulletin REST endpoints.
type BulletinHandler struct {
	svc bulletinService
	log *slog.Logger
}

// NewBulletinHandler creates a BulletinHandler.
func NewBulletinHandler(svc bulletinService, logger *slog.Logger) *BulletinHandler {
	return &BulletinHandler{svc: svc, log: logger.With("handler", "bulletin")}
}

type createBulletinRequest struct {
	Title        string     `json:"title"`
	Language     string     `json:"language"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// Create handles POST /bulletins.
func (h *BulletinHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBulletinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateBulletin(r.Context(), bulletin.CreateBulletinInput{
		Title:        req.Title,
		Language:     req.Language,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBulletinResponse(result))
}

// Get handles GET /bulletins/{id}.
func (h *BulletinHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.GetBulletin(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

// List handles GET /bulletins with optional status, language, limit, offset.
func (h *BulletinHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var status *domain.BulletinStatus
	if v := q.Get("status"); v != "" {
		s := domain.BulletinStatus(v)
		status = &s
	}
	var language *string
	if v := q.Get("language"); v != "" {
		language = &v
	}

	result, err := h.svc.ListBulletins(r.Context(), status, language,
		queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bulletins": toBulletinResponses(result)})
}

type updateBulletinRequest struct {
	Version      int        `json:"version"`
	Title        *string    `json:"title"`
	Language     *string    `json:"language"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// Update handles PATCH /bulletins/{id}.
func (h *BulletinHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req updateBulletinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.UpdateBulletin(r.Context(), bulletin.UpdateBulletinInput{
		BulletinID:   id,
		Version:      req.Version,
		Title:        req.Title,
		Language:     req.Language,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

// Delete handles DELETE /bulletins/{id}.
func (h *BulletinHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.DeleteBulletin(r.Context(), bulletin.DeleteBulletinInput{BulletinID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles POST /bulletins/{id}/status.
func (h *BulletinHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := bulletin.ChangeStatusInput{
		BulletinID: id,
		Version:    req.Version,
		Target:     domain.BulletinStatus(req.Status),
		Reason:     req.Reason,
	}
	if req.ReviewerID != nil {
		reviewerID, err := uuid.Parse(*req.ReviewerID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reviewerId must be a valid uuid")
			return
		}
		input.ReviewerID = &reviewerID
	}

	result, err := h.svc.ChangeStatus(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

type reorderRequest struct {
	Version int `json:"version"`
	Items   []struct {
		StoryID  string `json:"storyId"`
		Position int    `json:"position"`
	} `json:"items"`
}

// Reorder handles PUT /bulletins/{id}/stories. The body carries the full
// requested running order; the set of stories must match the bulletin's
// current membership.
func (h *BulletinHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]domain.ReorderItem, 0, len(req.Items))
	for _, item := range req.Items {
		storyID, err := uuid.Parse(item.StoryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "storyId must be a valid uuid")
			return
		}
		items = append(items, domain.ReorderItem{StoryID: storyID, Position: item.Position})
	}

	result, err := h.svc.Reorder(r.Context(), bulletin.ReorderInput{
		BulletinID: id,
		Version:    req.Version,
		Items:      items,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

type addStoryRequest struct {
	Version int    `json:"version"`
	StoryID string `json:"storyId"`
}

// AddStory handles POST /bulletins/{id}/stories. The story is appended at
// the end of the running order.
func (h *BulletinHandler) AddStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req addStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	storyID, err := uuid.Parse(req.StoryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "storyId must be a valid uuid")
		return
	}

	result, err := h.svc.AddStory(r.Context(), bulletin.AddStoryInput{
		BulletinID: id,
		Version:    req.Version,
		StoryID:    storyID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

// RemoveStory handles DELETE /bulletins/{id}/stories/{storyID}. The client's
// last-read bulletin version comes from the version query parameter.
func (h *BulletinHandler) RemoveStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	storyID, err := pathUUID(r, "storyID")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.RemoveStory(r.Context(), bulletin.RemoveStoryInput{
		BulletinID: id,
		Version:    queryInt(r, "version", 0),
		StoryID:    storyID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulletinResponse(result))
}

// PublicFeed handles GET /published/bulletins?language=en. Only published
// bulletins are returned.
func (h *BulletinHandler) PublicFeed(w http.ResponseWriter, r *http.Request) {
	var language *string
	if v := r.URL.Query().Get("language"); v != "" {
		language = &v
	}

	result, err := h.svc.ListPublished(r.Context(), language,
		queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bulletins": toBulletinResponses(result)})
}

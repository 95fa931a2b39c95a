package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/service/translation"
)

// translationService defines the minimal interface needed by TranslationHandler.
type translationService interface {
	CreateTask(ctx context.Context, input translation.CreateTaskInput) (*domain.Translation, error)
	GetTask(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error)
	ListByStory(ctx context.Context, storyID uuid.UUID) ([]*domain.Translation, error)
	MyTasks(ctx context.Context) ([]*domain.Translation, error)
	ChangeStatus(ctx context.Context, input translation.ChangeStatusInput) (*domain.Translation, error)
	DeleteTask(ctx context.Context, input translation.DeleteTaskInput) error
}

// TranslationHandler serves translation task REST endpoints.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translation")}
}

type createTaskRequest struct {
	TargetLanguage string `json:"targetLanguage"`
}

// Create handles POST /stories/{id}/translations.
func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	storyID, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateTask(r.Context(), translation.CreateTaskInput{
		StoryID:        storyID,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTranslationResponse(result))
}

// Get handles GET /translations/{id}.
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponse(result))
}

// ListByStory handles GET /stories/{id}/translations.
func (h *TranslationHandler) ListByStory(w http.ResponseWriter, r *http.Request) {
	storyID, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.ListByStory(r.Context(), storyID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"translations": toTranslationResponses(result)})
}

// MyTasks handles GET /translations/my.
func (h *TranslationHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MyTasks(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"translations": toTranslationResponses(result)})
}

type changeTaskStatusRequest struct {
	Version           int     `json:"version"`
	Status            string  `json:"status"`
	AssigneeID        *string `json:"assigneeId"`
	ReviewerID        *string `json:"reviewerId"`
	TranslatedStoryID *string `json:"translatedStoryId"`
	Reason            *string `json:"reason"`
}

// ChangeStatus handles POST /translations/{id}/status.
func (h *TranslationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req changeTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := translation.ChangeStatusInput{
		TranslationID: id,
		Version:       req.Version,
		Target:        domain.TranslationStatus(req.Status),
		Reason:        req.Reason,
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "assigneeId must be a valid uuid")
			return
		}
		input.AssigneeID = &assigneeID
	}
	if req.ReviewerID != nil {
		reviewerID, err := uuid.Parse(*req.ReviewerID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reviewerId must be a valid uuid")
			return
		}
		input.ReviewerID = &reviewerID
	}
	if req.TranslatedStoryID != nil {
		translatedStoryID, err := uuid.Parse(*req.TranslatedStoryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "translatedStoryId must be a valid uuid")
			return
		}
		input.TranslatedStoryID = &translatedStoryID
	}

	result, err := h.svc.ChangeStatus(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponse(result))
}

// Delete handles DELETE /translations/{id}.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), translation.DeleteTaskInput{TranslationID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/service/story"
)

// storyService defines the minimal interface needed by StoryHandler.
type storyService interface {
	CreateStory(ctx context.Context, input story.CreateStoryInput) (*domain.Story, error)
	GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	ListStories(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error)
	UpdateStory(ctx context.Context, input story.UpdateStoryInput) (*domain.Story, error)
	DeleteStory(ctx context.Context, input story.DeleteStoryInput) error
	ChangeStatus(ctx context.Context, input story.ChangeStatusInput) (*domain.Story, error)
	Publish(ctx context.Context, input story.PublishStoryInput) (*domain.Story, error)
	CheckPublishReadiness(ctx context.Context, storyID uuid.UUID, checklist domain.PublishChecklist) (domain.PublishReadiness, error)
	SkipTranslations(ctx context.Context, input story.SkipTranslationsInput) (*domain.Story, error)
	AvailableTransitions(ctx context.Context, storyID uuid.UUID) ([]domain.StoryStatus, error)
}

// StoryHandler serves story REST endpoints.
type StoryHandler struct {
	svc storyService
	log *slog.Logger
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(svc storyService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{svc: svc, log: logger.With("handler", "story")}
}

type createStoryRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Summary    *string `json:"summary"`
	Priority   string  `json:"priority"`
	Language   string  `json:"language"`
	CategoryID string  `json:"categoryId"`
}

// Create handles POST /stories.
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "categoryId must be a valid uuid")
		return
	}

	result, err := h.svc.CreateStory(r.Context(), story.CreateStoryInput{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Priority:   domain.StoryPriority(req.Priority),
		Language:   req.Language,
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(result))
}

// Get handles GET /stories/{id}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.GetStory(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(result))
}

// List handles GET /stories with optional filters:
// status, category_id, author_id, language, priority, search, limit, offset.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.StoryFilter{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if v := q.Get("status"); v != "" {
		status := domain.StoryStatus(v)
		filter.Status = &status
	}
	if v := q.Get("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "category_id must be a valid uuid")
			return
		}
		filter.CategoryID = &id
	}
	if v := q.Get("author_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "author_id must be a valid uuid")
			return
		}
		filter.AuthorID = &id
	}
	if v := q.Get("language"); v != "" {
		filter.Language = &v
	}
	if v := q.Get("priority"); v != "" {
		priority := domain.StoryPriority(v)
		filter.Priority = &priority
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}

	result, err := h.svc.ListStories(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stories": toStoryResponses(result)})
}

type updateStoryRequest struct {
	Version    int     `json:"version"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Summary    *string `json:"summary"`
	Priority   *string `json:"priority"`
	CategoryID *string `json:"categoryId"`
	Language   *string `json:"language"`
}

// Update handles PATCH /stories/{id}.
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req updateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := story.UpdateStoryInput{
		StoryID: id,
		Version: req.Version,
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
	}
	if req.Priority != nil {
		priority := domain.StoryPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "categoryId must be a valid uuid")
			return
		}
		input.CategoryID = &categoryID
	}
	input.Language = req.Language

	result, err := h.svc.UpdateStory(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(result))
}

// Delete handles DELETE /stories/{id}.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.DeleteStory(r.Context(), story.DeleteStoryInput{StoryID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type changeStatusRequest struct {
	Version    int     `json:"version"`
	Status     string  `json:"status"`
	ReviewerID *string `json:"reviewerId"`
	Reason     *string `json:"reason"`
}

// ChangeStatus handles POST /stories/{id}/status.
func (h *StoryHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
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

	input := story.ChangeStatusInput{
		StoryID: id,
		Version: req.Version,
		Target:  domain.StoryStatus(req.Status),
		Reason:  req.Reason,
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

	writeJSON(w, http.StatusOK, toStoryResponse(result))
}

type publishStoryRequest struct {
	Version             int  `json:"version"`
	ContentReviewed     bool `json:"contentReviewed"`
	AudioQualityChecked bool `json:"audioQualityChecked"`
}

// Publish handles POST /stories/{id}/publish.
func (h *StoryHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req publishStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Publish(r.Context(), story.PublishStoryInput{
		StoryID: id,
		Version: req.Version,
		Checklist: domain.PublishChecklist{
			ContentReviewed:     req.ContentReviewed,
			AudioQualityChecked: req.AudioQualityChecked,
		},
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(result))
}

// PublishCheck handles GET /stories/{id}/publish-check. The checklist flags
// come from query parameters so editors can preview the effect of ticking
// them.
func (h *StoryHandler) PublishCheck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	checklist := domain.PublishChecklist{
		ContentReviewed:     r.URL.Query().Get("content_reviewed") == "true",
		AudioQualityChecked: r.URL.Query().Get("audio_quality_checked") == "true",
	}

	readiness, err := h.svc.CheckPublishReadiness(r.Context(), id, checklist)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"canPublish": readiness.CanPublish,
		"issues":     readiness.Issues,
	})
}

type skipTranslationsRequest struct {
	Version int  `json:"version"`
	Skipped bool `json:"skipped"`
}

// SkipTranslations handles POST /stories/{id}/skip-translations.
func (h *StoryHandler) SkipTranslations(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req skipTranslationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SkipTranslations(r.Context(), story.SkipTranslationsInput{
		StoryID: id,
		Version: req.Version,
		Skipped: req.Skipped,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(result))
}

// Transitions handles GET /stories/{id}/transitions. It returns the statuses
// the calling user may move the story to from its current status.
func (h *StoryHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	transitions, err := h.svc.AvailableTransitions(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	statuses := make([]string, 0, len(transitions))
	for _, s := range transitions {
		statuses = append(statuses, s.String())
	}

	writeJSON(w, http.StatusOK, map[string]any{"transitions": statuses})
}

// publicStoryService defines the minimal interface needed by PublicStoryHandler.
type publicStoryService interface {
	ListPublished(ctx context.Context, language string, limit, offset int) ([]*domain.Story, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Story, error)
}

// PublicStoryHandler serves the reader-facing published story feed.
// Its endpoints need no authentication.
type PublicStoryHandler struct {
	svc publicStoryService
	log *slog.Logger
}

// NewPublicStoryHandler creates a PublicStoryHandler.
func NewPublicStoryHandler(svc publicStoryService, logger *slog.Logger) *PublicStoryHandler {
	return &PublicStoryHandler{svc: svc, log: logger.With("handler", "public_story")}
}

type publicStoryResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Summary     *string    `json:"summary,omitempty"`
	Priority    string     `json:"priority"`
	Language    string     `json:"language"`
	CategoryID  string     `json:"categoryId"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func toPublicStoryResponse(s *domain.Story) publicStoryResponse {
	return publicStoryResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Slug:        s.Slug,
		Content:     s.Content,
		Summary:     s.Summary,
		Priority:    s.Priority.String(),
		Language:    s.Language,
		CategoryID:  s.CategoryID.String(),
		PublishedAt: s.PublishedAt,
	}
}

// Feed handles GET /published/stories?language=en&limit=25&offset=0.
func (h *PublicStoryHandler) Feed(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	result, err := h.svc.ListPublished(r.Context(), language, limit, offset)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	stories := make([]publicStoryResponse, 0, len(result))
	for _, s := range result {
		stories = append(stories, toPublicStoryResponse(s))
	}

	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

// BySlug handles GET /published/stories/{slug}.
func (h *PublicStoryHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "slug required")
		return
	}

	result, err := h.svc.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublicStoryResponse(result))
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/service/audit"
	"github.com/kayamedia/newsroom-backend/internal/service/user"
)

// userService defines the user management interface needed by AdminHandler.
type userService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	ChangeRole(ctx context.Context, input user.ChangeRoleInput) (*domain.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) (*domain.User, error)
}

// auditService defines the audit trail interface needed by AdminHandler.
type auditService interface {
	List(ctx context.Context, input audit.ListInput) ([]*domain.AuditRecord, error)
}

// AdminHandler serves staff and audit administration endpoints.
type AdminHandler struct {
	users userService
	audit auditService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, auditSvc auditService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		audit: auditSvc,
		log:   logger.With("handler", "admin"),
	}
}

type createUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	StaffRole string `json:"staffRole"`
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.users.CreateUser(r.Context(), user.CreateUserInput{
		Email:     req.Email,
		Username:  req.Username,
		Name:      req.Name,
		Password:  req.Password,
		StaffRole: domain.StaffRole(req.StaffRole),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(result))
}

// GetUser handles GET /admin/users/{id}.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result))
}

// ListUsers handles GET /admin/users?limit=50&offset=0.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.users.List(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": toUserResponses(result)})
}

type changeRoleRequest struct {
	StaffRole string `json:"staffRole"`
}

// ChangeRole handles PUT /admin/users/{id}/role.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.users.ChangeRole(r.Context(), user.ChangeRoleInput{
		UserID:    id,
		StaffRole: domain.StaffRole(req.StaffRole),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result))
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive handles PUT /admin/users/{id}/active.
func (h *AdminHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.users.SetActive(r.Context(), id, req.Active)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result))
}

// StoryAudit handles GET /stories/{id}/audit. Access is gated by the audit
// service (admin roles only).
func (h *AdminHandler) StoryAudit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	entityType := domain.EntityTypeStory
	result, err := h.audit.List(r.Context(), audit.ListInput{
		EntityType: &entityType,
		EntityID:   &id,
		Limit:      queryInt(r, "limit", 0),
		Offset:     queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"records": toAuditRecordResponses(result)})
}

// ListAudit handles GET /admin/audit with optional filters:
// user_id, entity_type, entity_id, action, limit, offset.
func (h *AdminHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := audit.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if v := q.Get("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "user_id must be a valid uuid")
			return
		}
		input.UserID = &id
	}
	if v := q.Get("entity_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "entity_id must be a valid uuid")
			return
		}
		input.EntityID = &id
	}
	if v := q.Get("entity_type"); v != "" {
		entityType := domain.EntityType(v)
		input.EntityType = &entityType
	}
	if v := q.Get("action"); v != "" {
		action := domain.AuditAction(v)
		input.Action = &action
	}

	result, err := h.audit.List(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"records": toAuditRecordResponses(result)})
}

package rest

import (
	"time"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

type storyResponse struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	Content             string     `json:"content"`
	Summary             *string    `json:"summary,omitempty"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	Language            string     `json:"language"`
	AuthorID            string     `json:"authorId"`
	ReviewerID          *string    `json:"reviewerId,omitempty"`
	AssignedToID        *string    `json:"assignedToId,omitempty"`
	CategoryID          string     `json:"categoryId"`
	PublishedAt         *time.Time `json:"publishedAt,omitempty"`
	OriginalStoryID     *string    `json:"originalStoryId,omitempty"`
	RevisionReturnsTo   *string    `json:"revisionReturnsTo,omitempty"`
	RejectionReason     *string    `json:"rejectionReason,omitempty"`
	TranslationsSkipped bool       `json:"translationsSkipped"`
	Version             int        `json:"version"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func toStoryResponse(s *domain.Story) storyResponse {
	resp := storyResponse{
		ID:                  s.ID.String(),
		Title:               s.Title,
		Slug:                s.Slug,
		Content:             s.Content,
		Summary:             s.Summary,
		Status:              s.Status.String(),
		Priority:            s.Priority.String(),
		Language:            s.Language,
		AuthorID:            s.AuthorID.String(),
		CategoryID:          s.CategoryID.String(),
		PublishedAt:         s.PublishedAt,
		RejectionReason:     s.RejectionReason,
		TranslationsSkipped: s.TranslationsSkipped,
		Version:             s.Version,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.ReviewerID != nil {
		v := s.ReviewerID.String()
		resp.ReviewerID = &v
	}
	if s.AssignedToID != nil {
		v := s.AssignedToID.String()
		resp.AssignedToID = &v
	}
	if s.OriginalStoryID != nil {
		v := s.OriginalStoryID.String()
		resp.OriginalStoryID = &v
	}
	if s.RevisionReturnsTo != nil {
		v := s.RevisionReturnsTo.String()
		resp.RevisionReturnsTo = &v
	}
	return resp
}

func toStoryResponses(stories []*domain.Story) []storyResponse {
	out := make([]storyResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, toStoryResponse(s))
	}
	return out
}

type bulletinStoryResponse struct {
	StoryID  string         `json:"storyId"`
	Position int            `json:"position"`
	Story    *storyResponse `json:"story,omitempty"`
}

type bulletinResponse struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Status            string                  `json:"status"`
	Language          string                  `json:"language"`
	AuthorID          string                  `json:"authorId"`
	ReviewerID        *string                 `json:"reviewerId,omitempty"`
	ScheduledFor      *time.Time              `json:"scheduledFor,omitempty"`
	PublishedAt       *time.Time              `json:"publishedAt,omitempty"`
	RevisionReturnsTo *string                 `json:"revisionReturnsTo,omitempty"`
	RejectionReason   *string                 `json:"rejectionReason,omitempty"`
	Version           int                     `json:"version"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
	Stories           []bulletinStoryResponse `json:"stories,omitempty"`
}

func toBulletinResponse(b *domain.Bulletin) bulletinResponse {
	resp := bulletinResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		Status:          b.Status.String(),
		Language:        b.Language,
		AuthorID:        b.AuthorID.String(),
		ScheduledFor:    b.ScheduledFor,
		PublishedAt:     b.PublishedAt,
		RejectionReason: b.RejectionReason,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.ReviewerID != nil {
		v := b.ReviewerID.String()
		resp.ReviewerID = &v
	}
	if b.RevisionReturnsTo != nil {
		v := b.RevisionReturnsTo.String()
		resp.RevisionReturnsTo = &v
	}
	for _, bs := range b.Stories {
		item := bulletinStoryResponse{
			StoryID:  bs.StoryID.String(),
			Position: bs.Position,
		}
		if bs.Story != nil {
			story := toStoryResponse(bs.Story)
			item.Story = &story
		}
		resp.Stories = append(resp.Stories, item)
	}
	return resp
}

func toBulletinResponses(bulletins []*domain.Bulletin) []bulletinResponse {
	out := make([]bulletinResponse, 0, len(bulletins))
	for _, b := range bulletins {
		out = append(out, toBulletinResponse(b))
	}
	return out
}

type translationResponse struct {
	ID                string    `json:"id"`
	OriginalStoryID   string    `json:"originalStoryId"`
	TargetLanguage    string    `json:"targetLanguage"`
	Status            string    `json:"status"`
	AssignedToID      *string   `json:"assignedToId,omitempty"`
	ReviewerID        *string   `json:"reviewerId,omitempty"`
	TranslatedStoryID *string   `json:"translatedStoryId,omitempty"`
	RejectionReason   *string   `json:"rejectionReason,omitempty"`
	Version           int       `json:"version"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toTranslationResponse(t *domain.Translation) translationResponse {
	resp := translationResponse{
		ID:              t.ID.String(),
		OriginalStoryID: t.OriginalStoryID.String(),
		TargetLanguage:  t.TargetLanguage,
		Status:          t.Status.String(),
		RejectionReason: t.RejectionReason,
		Version:         t.Version,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.AssignedToID != nil {
		v := t.AssignedToID.String()
		resp.AssignedToID = &v
	}
	if t.ReviewerID != nil {
		v := t.ReviewerID.String()
		resp.ReviewerID = &v
	}
	if t.TranslatedStoryID != nil {
		v := t.TranslatedStoryID.String()
		resp.TranslatedStoryID = &v
	}
	return resp
}

func toTranslationResponses(tasks []*domain.Translation) []translationResponse {
	out := make([]translationResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTranslationResponse(t))
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	StaffRole string    `json:"staffRole"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		StaffRole: u.StaffRole.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toCategoryResponses(categories []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID.String(), Name: c.Name, Slug: c.Slug})
	}
	return out
}

type menuItemResponse struct {
	ID       string             `json:"id"`
	Label    string             `json:"label"`
	URL      string             `json:"url"`
	ParentID *string            `json:"parentId,omitempty"`
	Position int                `json:"position"`
	Active   bool               `json:"active"`
	Children []menuItemResponse `json:"children,omitempty"`
}

func toMenuItemResponse(item *domain.MenuItem) menuItemResponse {
	resp := menuItemResponse{
		ID:       item.ID.String(),
		Label:    item.Label,
		URL:      item.URL,
		Position: item.Position,
		Active:   item.Active,
	}
	if item.ParentID != nil {
		v := item.ParentID.String()
		resp.ParentID = &v
	}
	for _, child := range item.Children {
		resp.Children = append(resp.Children, toMenuItemResponse(child))
	}
	return resp
}

func toMenuItemResponses(items []*domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	return out
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId,omitempty"`
	Action     string         `json:"action"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditRecordResponses(records []*domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(records))
	for _, rec := range records {
		resp := auditRecordResponse{
			ID:         rec.ID.String(),
			UserID:     rec.UserID.String(),
			EntityType: rec.EntityType.String(),
			Action:     rec.Action.String(),
			Metadata:   rec.Metadata,
			CreatedAt:  rec.CreatedAt,
		}
		if rec.EntityID != nil {
			v := rec.EntityID.String()
			resp.EntityID = &v
		}
		out = append(out, resp)
	}
	return out
}

package rest

import "net/http"

// Handlers bundles all REST handlers for router registration.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Story       *StoryHandler
	PublicStory *PublicStoryHandler
	Translation *TranslationHandler
	Bulletin    *BulletinHandler
	Menu        *MenuHandler
	Category    *CategoryHandler
	Admin       *AdminHandler
}

// NewRouter registers all REST routes on a fresh mux. Authentication and
// permission checks live in the middleware and service layers; routes only
// map paths to handlers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("POST /stories", h.Story.Create)
	mux.HandleFunc("GET /stories", h.Story.List)
	mux.HandleFunc("GET /stories/{id}", h.Story.Get)
	mux.HandleFunc("PATCH /stories/{id}", h.Story.Update)
	mux.HandleFunc("DELETE /stories/{id}", h.Story.Delete)
	mux.HandleFunc("POST /stories/{id}/status", h.Story.ChangeStatus)
	mux.HandleFunc("POST /stories/{id}/publish", h.Story.Publish)
	mux.HandleFunc("GET /stories/{id}/publish-check", h.Story.PublishCheck)
	mux.HandleFunc("POST /stories/{id}/skip-translations", h.Story.SkipTranslations)
	mux.HandleFunc("GET /stories/{id}/transitions", h.Story.Transitions)
	mux.HandleFunc("GET /stories/{id}/audit", h.Admin.StoryAudit)
	mux.HandleFunc("GET /stories/{id}/translations", h.Translation.ListByStory)
	mux.HandleFunc("POST /stories/{id}/translations", h.Translation.Create)

	mux.HandleFunc("GET /translations/my", h.Translation.MyTasks)
	mux.HandleFunc("GET /translations/{id}", h.Translation.Get)
	mux.HandleFunc("POST /translations/{id}/status", h.Translation.ChangeStatus)
	mux.HandleFunc("DELETE /translations/{id}", h.Translation.Delete)

	mux.HandleFunc("POST /bulletins", h.Bulletin.Create)
	mux.HandleFunc("GET /bulletins", h.Bulletin.List)
	mux.HandleFunc("GET /bulletins/{id}", h.Bulletin.Get)
	mux.HandleFunc("PATCH /bulletins/{id}", h.Bulletin.Update)
	mux.HandleFunc("DELETE /bulletins/{id}", h.Bulletin.Delete)
	mux.HandleFunc("POST /bulletins/{id}/status", h.Bulletin.ChangeStatus)
	mux.HandleFunc("PUT /bulletins/{id}/stories", h.Bulletin.Reorder)
	mux.HandleFunc("POST /bulletins/{id}/stories", h.Bulletin.AddStory)
	mux.HandleFunc("DELETE /bulletins/{id}/stories/{storyID}", h.Bulletin.RemoveStory)

	mux.HandleFunc("GET /published/stories", h.PublicStory.Feed)
	mux.HandleFunc("GET /published/stories/{slug}", h.PublicStory.BySlug)
	mux.HandleFunc("GET /published/bulletins", h.Bulletin.PublicFeed)

	mux.HandleFunc("GET /menu", h.Menu.Tree)
	mux.HandleFunc("GET /categories", h.Category.List)
	mux.HandleFunc("POST /categories", h.Category.Create)
	mux.HandleFunc("DELETE /categories/{id}", h.Category.Delete)

	mux.HandleFunc("GET /admin/menu", h.Menu.ListAll)
	mux.HandleFunc("POST /admin/menu", h.Menu.Create)
	mux.HandleFunc("PUT /admin/menu/{id}", h.Menu.Update)
	mux.HandleFunc("DELETE /admin/menu/{id}", h.Menu.Delete)

	mux.HandleFunc("POST /admin/users", h.Admin.CreateUser)
	mux.HandleFunc("GET /admin/users", h.Admin.ListUsers)
	mux.HandleFunc("GET /admin/users/{id}", h.Admin.GetUser)
	mux.HandleFunc("PUT /admin/users/{id}/role", h.Admin.ChangeRole)
	mux.HandleFunc("PUT /admin/users/{id}/active", h.Admin.SetActive)
	mux.HandleFunc("GET /admin/audit", h.Admin.ListAudit)

	return mux
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	auditrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/audit"
	bulletinrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/bulletin"
	categoryrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/category"
	menurepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/menu"
	storyrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/story"
	translationrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/translation"
	userrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/user"
	"github.com/kayamedia/newsroom-backend/internal/auth"
	"github.com/kayamedia/newsroom-backend/internal/config"
	auditsvc "github.com/kayamedia/newsroom-backend/internal/service/audit"
	authsvc "github.com/kayamedia/newsroom-backend/internal/service/auth"
	bulletinsvc "github.com/kayamedia/newsroom-backend/internal/service/bulletin"
	categorysvc "github.com/kayamedia/newsroom-backend/internal/service/category"
	menusvc "github.com/kayamedia/newsroom-backend/internal/service/menu"
	storysvc "github.com/kayamedia/newsroom-backend/internal/service/story"
	translationsvc "github.com/kayamedia/newsroom-backend/internal/service/translation"
	usersvc "github.com/kayamedia/newsroom-backend/internal/service/user"
	"github.com/kayamedia/newsroom-backend/internal/transport/middleware"
	"github.com/kayamedia/newsroom-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and runs the
// HTTP server until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txm := postgres.NewTxManager(pool)

	stories := storyrepo.New(pool)
	bulletins := bulletinrepo.New(pool)
	translations := translationrepo.New(pool)
	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	menuItems := menurepo.New(pool)
	auditRecords := auditrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	auditService := auditsvc.NewService(logger, auditRecords,
		cfg.Editorial.AuditPageSize, cfg.Editorial.MaxListPageSize)
	authService := authsvc.NewService(logger, users, jwtManager)
	storyService := storysvc.NewService(logger, stories, translations, users, auditService, txm)
	bulletinService := bulletinsvc.NewService(logger, bulletins, stories, users,
		auditService, txm, cfg.Editorial.MaxBulletinSize)
	translationService := translationsvc.NewService(logger, translations, stories, users, auditService, txm)
	userService := usersvc.NewService(logger, users, auditService, txm, cfg.Auth.PasswordHashCost)
	categoryService := categorysvc.NewService(logger, categories, stories, auditService, txm)
	menuService := menusvc.NewService(logger, menuItems, auditService, txm)

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, logger),
		Story:       rest.NewStoryHandler(storyService, logger),
		PublicStory: rest.NewPublicStoryHandler(storyService, logger),
		Translation: rest.NewTranslationHandler(translationService, logger),
		Bulletin:    rest.NewBulletinHandler(bulletinService, logger),
		Menu:        rest.NewMenuHandler(menuService, logger),
		Category:    rest.NewCategoryHandler(categoryService, logger),
		Admin:       rest.NewAdminHandler(userService, auditService, logger),
	})

	middlewares := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		middlewares = append(middlewares, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	middlewares = append(middlewares, middleware.Auth(authService))

	handler := middleware.Chain(middlewares...)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if limiter != nil {
		limiter.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

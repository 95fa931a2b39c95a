// Command seeder populates a fresh database with the staff accounts,
// categories and menu entries declared in a YAML fixture. It is intended
// to be run offline, not as part of the main server.
//
// Flags:
//
//	--fixture        path to the seed fixture YAML file
//	--dry-run        parse the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	categoryrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/category"
	menurepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/menu"
	userrepo "github.com/kayamedia/newsroom-backend/internal/adapter/postgres/user"
	"github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/app"
	"github.com/kayamedia/newsroom-backend/internal/app/seeder"
	"github.com/kayamedia/newsroom-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.UserSeedRepo     = (*userrepo.Repo)(nil)
	_ seeder.CategorySeedRepo = (*categoryrepo.Repo)(nil)
	_ seeder.MenuSeedRepo     = (*menurepo.Repo)(nil)
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to the seed fixture YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and hash cost).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *fixtureFlag != "" {
		seederCfg.FixturePath = *fixtureFlag
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.MigrateOnStart {
		if err := postgres.Migrate(appCfg.Database.DSN); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	s := seeder.New(logger,
		userrepo.New(pool),
		categoryrepo.New(pool),
		menurepo.New(pool),
		appCfg.Auth.PasswordHashCost,
		seederCfg.DryRun,
	)

	result, err := s.Run(ctx, fixture)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("done",
		slog.Int("users_created", result.UsersCreated),
		slog.Int("users_skipped", result.UsersSkipped),
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_skipped", result.CategoriesSkipped),
		slog.Int("menu_created", result.MenuCreated),
		slog.Int("menu_skipped", result.MenuSkipped),
	)
}

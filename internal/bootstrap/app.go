package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/resumes"
	"resume-hub/internal/services/health"
	"resume-hub/internal/shared/auth"
	"resume-hub/internal/shared/config"
	"resume-hub/internal/shared/metrics"
	"resume-hub/internal/shared/server"
	"resume-hub/internal/shared/server/middleware"
	"resume-hub/internal/shared/server/session"
	"resume-hub/internal/shared/storage/db"
	"resume-hub/internal/users"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Metrics        *metrics.Metrics
	Tokens         *auth.TokenService
	UsersRepo      users.Repo
	ResumesRepo    resumes.Repo
	UsersService   *users.Service
	ResumesService *resumes.Service
}

// Build connects storage, wires services and registers routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Metrics: metrics.New(),
		Tokens:  tokens,
	}
	buildServices(app)

	carrier := session.Carrier{Secure: cfg.CookieSecure}
	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Metrics: app.Metrics,
		Auth: middleware.AuthDeps{
			Tokens:  tokens,
			Users:   app.UsersService,
			Carrier: carrier,
			Metrics: app.Metrics,
		},
		Health:        health.NewService(pinger),
		UserHandler:   users.NewHandler(app.UsersService, carrier, tokens.TTL()),
		ResumeHandler: resumes.NewHandler(app.ResumesService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		userRepo := users.NewMemoryRepo()
		app.UsersRepo = userRepo
		app.ResumesRepo = resumes.NewMemoryRepo(profileNames(userRepo))
	}

	app.UsersService = users.NewService(app.UsersRepo, auth.NewBcryptHasher(app.Config.BcryptCost), app.Tokens)
	app.ResumesService = resumes.NewService(app.ResumesRepo)
}

// profileNames feeds owner names into in-memory resume listings.
func profileNames(repo users.Repo) resumes.NameFunc {
	return func(ctx context.Context, userID int64) (string, error) {
		profile, err := repo.GetProfile(ctx, userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return profile.Name, nil
	}
}

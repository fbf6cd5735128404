// Package bootstrap builds the application dependency graph: config,
// storage, model provider, services and handlers, then the router.
package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/generate"
	"resume-insight/internal/insight"
	"resume-insight/internal/llm"
	"resume-insight/internal/llm/gemini"
	"resume-insight/internal/llm/openai"
	"resume-insight/internal/resumes"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/server"
	"resume-insight/internal/shared/storage/db"
	"resume-insight/internal/shared/storage/object"
	localstore "resume-insight/internal/shared/storage/object/local"
	"resume-insight/internal/watchdog"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Uploads         object.ObjectStore
	Provider        llm.Provider
	Guard           *watchdog.Guard
	ResumesRepo     resumes.Repo
	ResumesService  *resumes.Service
	InsightService  *insight.Service
	GenerateService *generate.Service
	InsightHandler  *insight.Handler
	GenerateHandler *generate.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	guard := watchdog.New(0)
	if cfg.WatchdogEnabled {
		guard = watchdog.New(cfg.WatchdogTimeout)
	}

	uploads := localstore.New(cfg.LocalStoreDir)
	resumesSvc := resumes.NewService(repo)
	insightSvc := insight.NewService(provider, resumesSvc, uploads, guard)
	generateSvc := generate.NewService(provider, resumesSvc, guard)
	insightHandler := insight.NewHandler(insightSvc, guard)
	generateHandler := generate.NewHandler(generateSvc, guard)

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Uploads:         uploads,
		Provider:        provider,
		Guard:           guard,
		ResumesRepo:     repo,
		ResumesService:  resumesSvc,
		InsightService:  insightSvc,
		GenerateService: generateSvc,
		InsightHandler:  insightHandler,
		GenerateHandler: generateHandler,
	}
	app.Router = server.NewRouter(cfg, server.Handlers{
		Insight:  insightHandler,
		Generate: generateHandler,
		Guard:    guard,
	})
	return app, nil
}

// Close releases provider and database handles.
func (a *App) Close() {
	if a.Provider != nil {
		_ = a.Provider.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// buildDB connects to Postgres when DATABASE_URL is set, falling back
// to the in-memory store on any failure.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

// buildProvider picks the model backend. With no credentials the API
// still serves extraction and storage; model stages fail per request.
func buildProvider(ctx context.Context, cfg config.Config) (llm.Provider, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Printf("OPENAI_API_KEY not set; model stages disabled")
			return llm.StaticProvider{C: llm.PlaceholderClient{}}, nil
		}
		return openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		if cfg.GoogleAPIKey == "" {
			log.Printf("GOOGLE_API_KEY not set; model stages disabled")
			return llm.StaticProvider{C: llm.PlaceholderClient{}}, nil
		}
		return gemini.NewProvider(ctx, cfg.GoogleAPIKey)
	}
}

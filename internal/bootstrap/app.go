package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/catalog"
	"skincare-backend/internal/detect"
	"skincare-backend/internal/llm"
	openaillm "skincare-backend/internal/llm/openai"
	"skincare-backend/internal/quiz"
	"skincare-backend/internal/recommend"
	"skincare-backend/internal/scan"
	"skincare-backend/internal/shared/config"
	"skincare-backend/internal/shared/server"
	"skincare-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Catalog          catalog.Source
	Detector         detect.Detector
	LLM              llm.QuestionClient
	ScanService      *scan.Service
	QuizHandler      *quiz.Handler
	ScanHandler      *scan.Handler
	RecommendHandler *recommend.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.CatalogSource) == "" {
		cfg.CatalogSource = "file"
	}
	if strings.TrimSpace(cfg.ProductFilePath) == "" {
		cfg.ProductFilePath = config.DefaultProductFilePath
	}
	if cfg.RecommendLimit <= 0 {
		cfg.RecommendLimit = config.DefaultRecommendLimit
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var source catalog.Source
	if sqlDB != nil {
		source = &catalog.PGSource{DB: sqlDB}
	} else {
		source = catalog.NewFileSource(cfg.ProductFilePath)
	}

	llmClient := llm.QuestionClient(llm.PlaceholderClient{})
	if cfg.LLMProvider == "openai" {
		client, err := openaillm.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	}

	detector := detect.Placeholder{}
	scanSvc := &scan.Service{Detector: detector, LLM: llmClient}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Catalog:          source,
		Detector:         detector,
		LLM:              llmClient,
		ScanService:      scanSvc,
		QuizHandler:      quiz.NewHandler(),
		ScanHandler:      scan.NewHandler(scanSvc),
		RecommendHandler: recommend.NewHandler(source, cfg.RecommendLimit),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		QuizHandler:      app.QuizHandler,
		ScanHandler:      app.ScanHandler,
		RecommendHandler: app.RecommendHandler,
	})

	return app, nil
}

// buildDB connects to Postgres only when it backs the catalogue. In dev-like
// environments a connect failure falls back to the file source.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.CatalogSource != "postgres" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using file catalogue: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using file catalogue: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/jobs"
	"pathway-backend/internal/match"
	"pathway-backend/internal/practice"
	"pathway-backend/internal/shared/config"
	"pathway-backend/internal/shared/metrics"
	"pathway-backend/internal/shared/server/middleware"
	"pathway-backend/internal/shared/server/respond"
	"pathway-backend/internal/shared/storage/db"
	"pathway-backend/internal/shared/telemetry"
	"pathway-backend/internal/simulations"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.AllowedOrigins()),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Error("server.db_connect_failed", map[string]any{"error": err.Error()})
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				telemetry.Error("server.migrations_failed", map[string]any{"error": err.Error()})
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var jobsRepo jobs.Repo
	if sqlDB != nil {
		jobsRepo = &jobs.PGRepo{DB: sqlDB}
	} else {
		jobsRepo = jobs.NewMemoryRepo()
	}

	corpus := jobs.NewCorpus()
	var fetcher jobs.Fetcher
	if cfg.JobsFeedURL != "" {
		fetcher = jobs.NewFeedClient(cfg.JobsFeedURL)
	}
	jobsSvc := &jobs.Service{
		Corpus:   corpus,
		Repo:     jobsRepo,
		Fetcher:  fetcher,
		SeedPath: cfg.JobsSeedPath,
		Interval: cfg.JobsRefreshInterval,
	}
	if err := jobsSvc.Rebuild(context.Background()); err != nil {
		telemetry.Error("server.corpus_rebuild_failed", map[string]any{"error": err.Error()})
	}
	jobsSvc.Start(context.Background())

	matcher := match.New()
	report := matcher.Bootstrap(2000)
	telemetry.Info("match.bootstrap", map[string]any{
		"samples":   report.Samples,
		"agreement": report.Agreement,
	})

	jobsHandler := &jobs.Handler{Svc: jobsSvc}
	matchHandler := &match.Handler{Matcher: matcher, Corpus: corpus}
	simsHandler := &simulations.Handler{Catalog: simulations.NewCatalog()}
	practiceHandler := &practice.Handler{Bank: practice.NewBank(time.Now().UnixNano())}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "corpus_size": corpus.Size()})
	})
	jobsHandler.RegisterRoutes(api)
	matchHandler.RegisterRoutes(api)
	simsHandler.RegisterRoutes(api)
	practiceHandler.RegisterRoutes(api)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"earsip/internal/auth"
	"earsip/internal/config"
	"earsip/internal/database"
	"earsip/internal/database/migration"
	"earsip/internal/logger"
	"earsip/internal/metrics"
	"earsip/internal/otel"
	"earsip/internal/repository"
	"earsip/internal/repository/postgres"
	"earsip/internal/service"
	"earsip/internal/storage"
)

// main boots the archive core: config, tracing, database with migrations,
// object storage, then the services, and finally seeds the category
// defaults and the configured admin account.
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New()
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	stats, err := metrics.NewArchiveMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	docRepo := postgres.NewDocumentPostgres(db)
	accRepo := postgres.NewAccountPostgres(db)
	catRepo := postgres.NewCategoryPostgres(db)

	hasher := auth.NewBcryptHasher(0)
	accSvc := service.NewAccountService(accRepo, hasher, log)
	catSvc := service.NewCategoryService(catRepo)
	docSvc := service.NewDocumentService(objStore, docRepo, log, stats)

	if err := catSvc.EnsureDefaults(ctx, cfg.DefaultCategories); err != nil {
		log.Fatal("failed to seed categories", zap.Error(err))
	}
	if err := accSvc.SeedAdmin(ctx, cfg.Admin); err != nil {
		log.Fatal("failed to seed admin account", zap.Error(err))
	}

	docs, err := docSvc.List(ctx, repository.DocumentFilter{})
	if err != nil {
		log.Fatal("failed to read document inventory", zap.Error(err))
	}

	log.Info("archive core ready",
		zap.String("bucket", cfg.MinIO.Bucket),
		zap.Strings("default_categories", cfg.DefaultCategories),
		zap.Int("documents", len(docs)),
	)

	<-ctx.Done()
	log.Info("shutting down")
}

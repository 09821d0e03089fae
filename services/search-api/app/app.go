package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/cache"
	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
	middleware "github.com/errata-labs/errata-go/pkg/middlewares"
	"github.com/errata-labs/errata-go/services/search-api/configs"
	"github.com/errata-labs/errata-go/services/search-api/internal/handlers"
	"github.com/errata-labs/errata-go/services/search-api/internal/services"
)

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server and a cleanup func.
// It reads configuration from environment variables via configs.Load.
func NewApp(ctx context.Context, logger *zap.Logger) (*http.Server, func(), error) {
	// Load config
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, nil, err
	}

	// Redis is optional: without it the service runs with local-only rate
	// limiting and no result cache.
	var redisClient *redis.Client
	var closeRedis func()
	if cfg.RedisAddr != "" {
		redisClient, closeRedis, err = cache.New(ctx, cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, continuing without it", zap.Error(err))
			redisClient, closeRedis = nil, nil
		}
	}

	// Load the snapshot; a missing file falls back to the curated seed set so
	// the service can come up before the first collect run.
	records, err := dataset.ReadSnapshot(cfg.SnapshotPath)
	if err != nil {
		logger.Warn("snapshot unavailable, building from seed data",
			zap.String("path", cfg.SnapshotPath), zap.Error(err))
		records, err = dataset.Build(time.Now().Format("2006-01-02"))
		if err != nil {
			if closeRedis != nil {
				closeRedis()
			}
			return nil, nil, err
		}
	}
	logger.Info("error collection loaded", zap.Int("records", len(records)))
	engine := dataset.NewEngine(records)

	// Remote store is optional as well; snapshot-only mode serves curated
	// solutions locally.
	var store helix.Store
	if cfg.HelixAddr != "" {
		store = helix.NewClient(cfg.HelixAddr, logger)
	}

	// Setup dependencies
	results := cache.NewResultCache(redisClient, time.Duration(cfg.CacheTTLSec)*time.Second, logger)
	limiter := pkg.NewDistributedLimiter(redisClient, "global:search_rate", cfg.SearchRate, cfg.SearchBurst, time.Minute, logger)

	baseHandler := handlers.NewBaseHandler(logger)
	searchService := services.NewSearchService(logger, engine, store, results)
	errorHandler := handlers.NewErrorHandler(logger, searchService)

	// Router
	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(middleware.Metrics())
	api.Use(middleware.RateLimit(limiter))

	errorHandler.RegisterRoutes(api)
	baseHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	cleanup := func() {
		if closeRedis != nil {
			closeRedis()
		}
	}

	return srv, cleanup, nil
}

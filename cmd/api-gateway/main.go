package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/skillswap-api/api/swagger"
	"github.com/noah-isme/skillswap-api/internal/handler"
	"github.com/noah-isme/skillswap-api/internal/middleware"
	"github.com/noah-isme/skillswap-api/internal/repository"
	"github.com/noah-isme/skillswap-api/internal/service"
	"github.com/noah-isme/skillswap-api/pkg/bus"
	"github.com/noah-isme/skillswap-api/pkg/config"
	"github.com/noah-isme/skillswap-api/pkg/kv"
	"github.com/noah-isme/skillswap-api/pkg/logger"
	"github.com/noah-isme/skillswap-api/pkg/meeting"
	corsmiddleware "github.com/noah-isme/skillswap-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/skillswap-api/pkg/middleware/requestid"
)

// @title SkillSwap API
// @version 0.1.0
// @description Peer-to-peer skill exchange: catalog browsing, teacher matching, and class scheduling
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, redisClient, err := buildStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init storage", "backend", cfg.Storage.Backend, "error", err)
	}

	signals := bus.New(logr)
	var fanout *bus.RedisFanout
	if cfg.Signal.RedisFanout {
		if redisClient == nil {
			redisClient, err = kv.NewRedisClient(cfg.Redis)
			if err != nil {
				logr.Sugar().Fatalw("failed to connect redis for signal fanout", "error", err)
			}
		}
		fanout = bus.NewRedisFanout(redisClient, cfg.Signal.Channel, signals, service.TopicLearningUpdated, logr)
		fanout.Start(context.Background())
		defer fanout.Stop()
	}

	catalogRepo := repository.NewCatalogRepository()
	learningRepo := repository.NewLearningRepository(store, logr)
	links := meeting.NewGenerator(cfg.Meeting.DemoMode, nil)

	metricsSvc := service.NewMetricsService()
	matchSvc := service.NewMatchService(catalogRepo, nil, logr)
	learningSvc := service.NewLearningService(learningRepo, matchSvc, links, signals, nil, logr, service.LearningServiceOptions{
		Fanout:     fanout,
		Metrics:    metricsSvc,
		MatchDelay: cfg.Matching.BackgroundDelay,
	})
	defer learningSvc.Stop()

	swapSvc := service.NewSwapService(learningSvc, links, signals, nil, logr)
	swapSvc.Start(context.Background())
	defer swapSvc.Stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", handler.NewMetricsHandler(metricsSvc).Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	learningHandler := handler.NewLearningHandler(learningSvc)
	swapHandler := handler.NewSwapHandler(swapSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/categories", catalogHandler.Categories)
		api.GET("/skills", catalogHandler.Skills)
		api.GET("/teachers", catalogHandler.Teachers)

		api.GET("/learning", learningHandler.List)
		api.POST("/learning", learningHandler.Create)
		api.POST("/learning/:id/schedule", learningHandler.Schedule)

		api.GET("/swaps/active", swapHandler.Active)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func buildStore(cfg *config.Config) (kv.Store, *redis.Client, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return kv.NewMemoryStore(), nil, nil
	case config.StorageRedis:
		client, err := kv.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedisStore(client, "skillswap:"), client, nil
	default:
		store, err := kv.NewFileStore(cfg.Storage.Dir)
		return store, nil, err
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ArowuTest/adspendwise-backend/internal/config"
	"github.com/ArowuTest/adspendwise-backend/internal/lock"
	"github.com/ArowuTest/adspendwise-backend/internal/metrics"
	"github.com/ArowuTest/adspendwise-backend/internal/repositories"
	mongorepo "github.com/ArowuTest/adspendwise-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/adspendwise-backend/internal/services"
	"github.com/ArowuTest/adspendwise-backend/pkg/llm"
	mongodb "github.com/ArowuTest/adspendwise-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// app holds the collaborators shared by every command. close releases them.
type app struct {
	cfg     *config.Config
	metrics *metrics.Metrics

	mongo *mongodb.Client
	redis *redis.Client

	campaignRepo repositories.CampaignRepository
	analysisRepo repositories.AnalysisRepository

	campaignService  *services.CampaignServiceImpl
	analysisService  *services.AnalysisServiceImpl
	dashboardService *services.DashboardServiceImpl
}

func newApp(ctx context.Context) (*app, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogger(cfg.Log)

	a := &app{cfg: cfg, metrics: metrics.New("adspendwise")}

	a.mongo, err = mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := a.mongo.Database(cfg.MongoDB.Database)

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		slog.Warn("Failed to ensure indexes", "error", err)
	}

	var locker lock.Locker = lock.Noop{}
	if cfg.Redis.Addr != "" {
		a.redis, err = lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, bulk analysis runs unlocked", "error", err)
		} else {
			locker = lock.NewRedisLocker(a.redis, "adspendwise:")
		}
	}

	if cfg.LLM.APIKey == "" && !cfg.LLM.MockAPI {
		slog.Warn("No AI API key configured, analyses will use the local fallback")
	}
	completer := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
		MockAPI: cfg.LLM.MockAPI,
	})

	a.campaignRepo = mongorepo.NewCampaignRepository(db)
	a.analysisRepo = mongorepo.NewAnalysisRepository(db)

	a.campaignService = services.NewCampaignService(a.campaignRepo, a.metrics)
	a.analysisService = services.NewAnalysisService(a.campaignRepo, a.analysisRepo, completer, locker, a.metrics)
	a.dashboardService = services.NewDashboardService(a.campaignRepo, a.analysisRepo)

	slog.Info("Application initialized",
		"database", cfg.MongoDB.Database, "model", cfg.LLM.Model, "mockAPI", cfg.LLM.MockAPI, "redis", a.redis != nil)
	return a, nil
}

func (a *app) close(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}
	if err := a.mongo.Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

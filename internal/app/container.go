package app

import (
	"context"
	"time"

	"skillbridge/internal/config"
	"skillbridge/internal/database"
	dbpostgres "skillbridge/internal/database/postgres"
	"skillbridge/internal/database/schema"
	"skillbridge/internal/domain/recommend"
	"skillbridge/internal/infrastructure/cache"
	"skillbridge/internal/infrastructure/vector"
	"skillbridge/internal/repository"
	"skillbridge/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Recommendations usecase.RecommendationUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	var index recommend.SimilarityIndex
	if client := vector.NewClient(cfg.Vector, logger); client != nil {
		index = client
	} else {
		logger.Warn("vector index not configured, recommendations run exact-only")
	}

	weights := recommend.DefaultWeights()
	weights.SemanticTimeout = cfg.Engine.SemanticTimeout
	weights.SemanticTopK = cfg.Engine.SemanticTopK
	weights.MaxResults = cfg.Engine.MaxResults
	weights.CatalogLimit = cfg.Engine.CatalogLimit

	engine := recommend.NewEngine(
		repository.NewPostgresProfileRepository(db),
		repository.NewPostgresCatalogRepository(db),
		index,
		weights,
		logger,
	)

	recommendations := usecase.NewRecommendationUsecase(engine, redis, cfg.Redis.TTL, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		Cache:           redis,
		Recommendations: recommendations,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error)
	RecommendResources(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error)
}

type recommender interface {
	RecommendJobs(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error)
	RecommendResources(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error)
}

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Recommendation fronts the engine with a short-lived response cache. The
// engine itself stays cache-free; cached entries are whole ranked lists keyed
// by kind and profile.
type Recommendation struct {
	engine recommender
	cache  RecommendationCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewRecommendationUsecase(engine recommender, cache RecommendationCache, ttl time.Duration, logger *zap.Logger) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Recommendation{engine: engine, cache: cache, ttl: ttl, logger: logger}
}

func (u *Recommendation) RecommendJobs(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error) {
	return u.recommend(ctx, recommend.KindJob, profileID, u.engine.RecommendJobs)
}

func (u *Recommendation) RecommendResources(ctx context.Context, profileID uuid.UUID) ([]recommend.MatchRecord, error) {
	return u.recommend(ctx, recommend.KindResource, profileID, u.engine.RecommendResources)
}

func (u *Recommendation) recommend(
	ctx context.Context,
	kind recommend.Kind,
	profileID uuid.UUID,
	fn func(context.Context, uuid.UUID) ([]recommend.MatchRecord, error),
) ([]recommend.MatchRecord, error) {
	if profileID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	key := CacheKey(kind, profileID)
	if u.cache != nil {
		var cached []recommend.MatchRecord
		ok, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			return cached, nil
		}
	}

	out, err := fn(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if u.cache != nil && len(out) > 0 {
		if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
			u.logger.Warn("failed to cache recommendations",
				zap.String("kind", string(kind)),
				zap.String("profile_id", profileID.String()),
				zap.Error(err),
			)
		}
	}
	return out, nil
}

package recommend

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine matches a profile against the catalog and produces a ranked,
// deduplicated list of explainable MatchRecords. Exact lexical matching always
// runs; the semantic pass enhances the result when the similarity index
// answers within its budget and is silently skipped otherwise. Only a caller
// context cancellation is ever returned as an error; every other failure
// degrades to the best available result.
type Engine struct {
	profiles ProfileStore
	catalog  CatalogStore
	index    SimilarityIndex
	weights  Weights
	logger   *zap.Logger
}

func NewEngine(profiles ProfileStore, catalog CatalogStore, index SimilarityIndex, weights Weights, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		profiles: profiles,
		catalog:  catalog,
		index:    index,
		weights:  weights.withDefaults(),
		logger:   logger,
	}
}

func (e *Engine) RecommendJobs(ctx context.Context, profileID uuid.UUID) ([]MatchRecord, error) {
	return e.recommend(ctx, KindJob, profileID)
}

func (e *Engine) RecommendResources(ctx context.Context, profileID uuid.UUID) ([]MatchRecord, error) {
	return e.recommend(ctx, KindResource, profileID)
}

func (e *Engine) recommend(ctx context.Context, kind Kind, profileID uuid.UUID) ([]MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := e.profiles.GetProfile(ctx, profileID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Error("profile fetch failed, returning no recommendations",
			zap.String("profile_id", profileID.String()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return []MatchRecord{}, nil
	}

	attrs := profileAttributes(profile, kind)
	if attrs.empty() {
		return []MatchRecord{}, nil
	}

	items, err := e.catalog.ListItems(ctx, kind, e.weights.CatalogLimit)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Error("catalog fetch failed, returning no recommendations",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return []MatchRecord{}, nil
	}

	records := make(map[uuid.UUID]*MatchRecord, len(items))
	order := make([]uuid.UUID, 0, len(items))
	byID := make(map[uuid.UUID]CatalogItem, len(items))

	for _, item := range items {
		if item.ID == uuid.Nil || len(item.Attributes) == 0 {
			continue
		}
		byID[item.ID] = item

		m, ok := matchExact(attrs, item)
		if !ok {
			continue
		}
		records[item.ID] = &MatchRecord{
			ItemID:            item.ID,
			Item:              item,
			MatchedAttributes: m.matched,
			MissingAttributes: m.missing,
			MatchScore:        m.score,
			MatchType:         MatchExact,
		}
		order = append(order, item.ID)
	}

	hits, degraded := e.querySemantic(ctx, kind, profile)
	if !degraded {
		order = e.combine(records, order, hits, byID, attrs)
	}

	for _, id := range order {
		e.prioritize(records[id], profile)
	}

	return rankRecords(records, order, e.weights.MaxResults), nil
}

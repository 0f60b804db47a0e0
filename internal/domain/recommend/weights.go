package recommend

import "time"

// Weights holds every scoring constant the engine uses. The blend ratios and
// boost magnitudes are design decisions pinned by the test suite, so they live
// here instead of inline in the scoring code.
type Weights struct {
	// Hybrid blend: exact score dominates the semantic similarity.
	ExactBlend    float64
	SemanticBlend float64

	// Confidence discount for items found only by the semantic pass.
	SemanticOnlyFactor float64

	TrackBoost          float64
	FreeBoost           float64
	PlatformBoost       float64
	ExperienceFitBoost  float64
	ExperienceNearBoost float64

	HighConfidenceBoost     float64
	HighConfidenceThreshold float64

	SemanticTopK    int
	SemanticTimeout time.Duration
	MaxResults      int
	CatalogLimit    int
}

func DefaultWeights() Weights {
	return Weights{
		ExactBlend:         0.65,
		SemanticBlend:      0.35,
		SemanticOnlyFactor: 0.7,

		TrackBoost:          0.15,
		FreeBoost:           0.1,
		PlatformBoost:       0.05,
		ExperienceFitBoost:  0.1,
		ExperienceNearBoost: 0.05,

		HighConfidenceBoost:     0.1,
		HighConfidenceThreshold: 0.8,

		SemanticTopK:    20,
		SemanticTimeout: 300 * time.Millisecond,
		MaxResults:      20,
		CatalogLimit:    200,
	}
}

func (w Weights) withDefaults() Weights {
	def := DefaultWeights()
	if w.ExactBlend <= 0 {
		w.ExactBlend = def.ExactBlend
	}
	if w.SemanticBlend <= 0 {
		w.SemanticBlend = def.SemanticBlend
	}
	if w.SemanticOnlyFactor <= 0 {
		w.SemanticOnlyFactor = def.SemanticOnlyFactor
	}
	if w.HighConfidenceThreshold <= 0 {
		w.HighConfidenceThreshold = def.HighConfidenceThreshold
	}
	if w.SemanticTopK <= 0 {
		w.SemanticTopK = def.SemanticTopK
	}
	if w.SemanticTimeout <= 0 {
		w.SemanticTimeout = def.SemanticTimeout
	}
	if w.MaxResults <= 0 {
		w.MaxResults = def.MaxResults
	}
	if w.CatalogLimit <= 0 {
		w.CatalogLimit = def.CatalogLimit
	}
	return w
}

func capScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}

package recommend

import (
	"math"
	"strings"
)

var popularPlatforms = map[string]struct{}{
	"coursera":          {},
	"edx":               {},
	"udemy":             {},
	"freecodecamp":      {},
	"udacity":           {},
	"khan academy":      {},
	"pluralsight":       {},
	"linkedin learning": {},
}

// prioritize applies the additive heuristic boosts to one record and caps the
// final score at 1.0. Each boost is gated by an independent predicate, so the
// model is commutative: boost order never changes the outcome.
func (e *Engine) prioritize(rec *MatchRecord, p Profile) {
	w := e.weights
	score := rec.MatchScore

	if trackAligned(rec, p) {
		score += w.TrackBoost
	}
	if rec.Item.Cost == CostFree {
		score += w.FreeBoost
	}
	if _, ok := popularPlatforms[Normalize(rec.Item.Platform)]; ok {
		score += w.PlatformBoost
	}
	if rec.Item.Kind == KindJob {
		score += experienceBoost(p.Experience, rec.Item.Experience, w)
	}
	if rec.SemanticSimilarity != nil && *rec.SemanticSimilarity > w.HighConfidenceThreshold {
		score += w.HighConfidenceBoost
	}

	rec.MatchScore = capScore(score)
	rec.MatchPercentage = int(math.Round(rec.MatchScore * 100))
}

func trackAligned(rec *MatchRecord, p Profile) bool {
	track := Normalize(p.PreferredTrack)
	if track == "" {
		return false
	}
	if strings.Contains(Normalize(rec.Item.Track), track) {
		return true
	}
	if strings.Contains(Normalize(rec.Item.Platform), track) {
		return true
	}
	for _, a := range rec.MatchedAttributes {
		if strings.Contains(Normalize(a), track) {
			return true
		}
	}
	return false
}

// experienceBoost rewards profiles at or above the item's level, gives a
// smaller boost one level below, and nothing further down. Items without an
// experience requirement get no boost either way.
func experienceBoost(profile ExperienceLevel, item *ExperienceLevel, w Weights) float64 {
	if item == nil {
		return 0
	}
	gap := int(*item) - int(profile)
	switch {
	case gap <= 0:
		return w.ExperienceFitBoost
	case gap == 1:
		return w.ExperienceNearBoost
	default:
		return 0
	}
}

package recommend

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type semanticOutcome struct {
	hits []SimilarityHit
	err  error
}

// querySemantic races one similarity query against the engine's semantic
// timeout. A query that loses the race is cancelled and its eventual result
// discarded; the caller proceeds exact-only. Degradation is reported via the
// second return value, never as an error.
func (e *Engine) querySemantic(ctx context.Context, kind Kind, p Profile) ([]SimilarityHit, bool) {
	if e.index == nil {
		return nil, true
	}

	qctx, cancel := context.WithTimeout(ctx, e.weights.SemanticTimeout)
	defer cancel()

	ch := make(chan semanticOutcome, 1)
	go func() {
		hits, err := e.index.QuerySimilar(qctx, kind, queryText(p), e.weights.SemanticTopK)
		ch <- semanticOutcome{hits: hits, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			e.logger.Warn("semantic query failed, degrading to exact-only",
				zap.String("kind", string(kind)),
				zap.Error(out.err),
			)
			return nil, true
		}
		return out.hits, false
	case <-qctx.Done():
		e.logger.Warn("semantic query timed out, degrading to exact-only",
			zap.String("kind", string(kind)),
			zap.Duration("budget", e.weights.SemanticTimeout),
		)
		return nil, true
	}
}

// queryText renders the profile as the labeled text representation the vector
// index was built against.
func queryText(p Profile) string {
	var b strings.Builder
	b.WriteString("Skills: ")
	b.WriteString(strings.Join(p.Skills, ", "))
	b.WriteString("\nExperience level: ")
	b.WriteString(p.Experience.String())
	if p.PreferredTrack != "" {
		b.WriteString("\nPreferred track: ")
		b.WriteString(p.PreferredTrack)
	}
	if len(p.Interests) > 0 {
		b.WriteString("\nInterests: ")
		b.WriteString(strings.Join(p.Interests, ", "))
	}
	if p.Education != "" {
		b.WriteString("\nEducation: ")
		b.WriteString(p.Education)
	}
	return b.String()
}

func similarityFromDistance(d float64) float64 {
	return capScore(1 - d)
}

package recommend

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Kind string

const (
	KindJob      Kind = "job"
	KindResource Kind = "resource"
)

type CostCategory string

const (
	CostUnknown CostCategory = ""
	CostFree    CostCategory = "free"
	CostPaid    CostCategory = "paid"
)

type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchSemantic MatchType = "semantic"
	MatchHybrid   MatchType = "hybrid"
)

type Profile struct {
	ID             uuid.UUID
	Skills         []string
	Interests      []string
	PreferredTrack string
	Experience     ExperienceLevel
	Education      string
}

type CatalogItem struct {
	ID       uuid.UUID
	Kind     Kind
	Title    string
	Platform string
	Track    string
	URL      string

	// Attributes is the item's required/related attribute list in the item's
	// own order. Items with an empty list match nothing and are skipped.
	Attributes []string

	// Experience is set for jobs only.
	Experience *ExperienceLevel

	// Cost is set for resources only.
	Cost CostCategory
}

// MatchRecord is the explainable result for one catalog item. Matched and
// missing attributes are both subsequences of the item's attribute list in the
// item's original order. It lives only for the duration of one recommendation
// call and is never persisted.
type MatchRecord struct {
	ItemID             uuid.UUID   `json:"item_id"`
	Item               CatalogItem `json:"item"`
	MatchedAttributes  []string    `json:"matched_attributes"`
	MissingAttributes  []string    `json:"missing_attributes"`
	MatchScore         float64     `json:"match_score"`
	MatchPercentage    int         `json:"match_percentage"`
	MatchType          MatchType   `json:"match_type"`
	SemanticSimilarity *float64    `json:"semantic_similarity,omitempty"`
}

var ErrProfileNotFound = errors.New("profile not found")

type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (Profile, error)
}

type CatalogStore interface {
	ListItems(ctx context.Context, kind Kind, limit int) ([]CatalogItem, error)
}

type SimilarityHit struct {
	ItemID uuid.UUID
	// Distance is cosine-style in [0, 2]; similarity = 1 - distance clamped
	// to [0, 1].
	Distance float64
}

type SimilarityIndex interface {
	QuerySimilar(ctx context.Context, kind Kind, queryText string, topK int) ([]SimilarityHit, error)
}

package dto

import (
	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	ItemID             uuid.UUID `json:"item_id"`
	Kind               string    `json:"kind"`
	Title              string    `json:"title"`
	Platform           string    `json:"platform,omitempty"`
	Track              string    `json:"track,omitempty"`
	URL                string    `json:"url,omitempty"`
	Cost               string    `json:"cost,omitempty"`
	MatchScore         float64   `json:"match_score"`
	MatchPercentage    int       `json:"match_percentage"`
	MatchType          string    `json:"match_type"`
	MatchedAttributes  []string  `json:"matched_attributes"`
	MissingAttributes  []string  `json:"missing_attributes"`
	SemanticSimilarity *float64  `json:"semantic_similarity,omitempty"`
}

func FromMatchRecords(records []recommend.MatchRecord) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, RecommendationResponse{
			ItemID:             rec.ItemID,
			Kind:               string(rec.Item.Kind),
			Title:              rec.Item.Title,
			Platform:           rec.Item.Platform,
			Track:              rec.Item.Track,
			URL:                rec.Item.URL,
			Cost:               string(rec.Item.Cost),
			MatchScore:         rec.MatchScore,
			MatchPercentage:    rec.MatchPercentage,
			MatchType:          string(rec.MatchType),
			MatchedAttributes:  rec.MatchedAttributes,
			MissingAttributes:  rec.MissingAttributes,
			SemanticSimilarity: rec.SemanticSimilarity,
		})
	}
	return out
}

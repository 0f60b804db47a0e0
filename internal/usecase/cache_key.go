package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
)

type recommendationCacheKeyInput struct {
	Kind      string `json:"kind"`
	ProfileID string `json:"profile_id"`
}

func CacheKey(kind recommend.Kind, profileID uuid.UUID) string {
	in := recommendationCacheKeyInput{
		Kind:      string(kind),
		ProfileID: profileID.String(),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommendations:" + string(kind) + ":" + hex.EncodeToString(sum[:])
}

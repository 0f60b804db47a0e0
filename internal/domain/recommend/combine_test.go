package recommend

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(nil, nil, nil, Weights{}, nil)
}

func TestCombine_SemanticOnlyDiscount(t *testing.T) {
	e := newTestEngine()
	item := CatalogItem{ID: uuid.New(), Kind: KindResource, Attributes: []string{"Kubernetes"}}

	records := map[uuid.UUID]*MatchRecord{}
	order := e.combine(
		records,
		nil,
		[]SimilarityHit{{ItemID: item.ID, Distance: 0.1}},
		map[uuid.UUID]CatalogItem{item.ID: item},
		newAttributeSet(nil),
	)

	require.Len(t, order, 1)
	rec := records[item.ID]
	require.NotNil(t, rec)
	require.Equal(t, MatchSemantic, rec.MatchType)
	// Similarity 0.9 discounted by the semantic-only factor, before boosts.
	require.InDelta(t, 0.63, rec.MatchScore, 1e-9)
	require.NotNil(t, rec.SemanticSimilarity)
	require.InDelta(t, 0.9, *rec.SemanticSimilarity, 1e-9)
	require.NotNil(t, rec.MatchedAttributes)
	require.Empty(t, rec.MatchedAttributes)
}

func TestCombine_BlendsExistingRecord(t *testing.T) {
	e := newTestEngine()
	id := uuid.New()
	records := map[uuid.UUID]*MatchRecord{
		id: {ItemID: id, MatchScore: 0.5, MatchType: MatchExact},
	}

	order := e.combine(records, []uuid.UUID{id}, []SimilarityHit{{ItemID: id, Distance: 0.2}}, nil, newAttributeSet(nil))

	require.Equal(t, []uuid.UUID{id}, order)
	rec := records[id]
	require.Equal(t, MatchHybrid, rec.MatchType)
	require.InDelta(t, 0.65*0.5+0.35*0.8, rec.MatchScore, 1e-9)
}

func TestCombine_SecondaryAttributePass(t *testing.T) {
	e := newTestEngine()
	item := CatalogItem{ID: uuid.New(), Kind: KindResource, Attributes: []string{"ReactJS", "GraphQL"}}

	records := map[uuid.UUID]*MatchRecord{}
	e.combine(
		records,
		nil,
		[]SimilarityHit{{ItemID: item.ID, Distance: 0.4}},
		map[uuid.UUID]CatalogItem{item.ID: item},
		newAttributeSet([]string{"React"}),
	)

	rec := records[item.ID]
	require.NotNil(t, rec)
	require.Equal(t, []string{"ReactJS"}, rec.MatchedAttributes)
	require.Equal(t, []string{"GraphQL"}, rec.MissingAttributes)
}

func TestCombine_UnknownAndDuplicateHitsSkipped(t *testing.T) {
	e := newTestEngine()
	item := CatalogItem{ID: uuid.New(), Attributes: []string{"Go"}}

	records := map[uuid.UUID]*MatchRecord{}
	order := e.combine(
		records,
		nil,
		[]SimilarityHit{
			{ItemID: uuid.New(), Distance: 0.1}, // not in the catalog slice
			{ItemID: item.ID, Distance: 0.2},
			{ItemID: item.ID, Distance: 0.9}, // duplicate hit, first wins
			{ItemID: uuid.Nil, Distance: 0.1},
		},
		map[uuid.UUID]CatalogItem{item.ID: item},
		newAttributeSet(nil),
	)

	require.Len(t, order, 1)
	require.InDelta(t, 0.8, *records[item.ID].SemanticSimilarity, 1e-9)
}

func TestCombine_ScoreCapped(t *testing.T) {
	e := newTestEngine()
	id := uuid.New()
	records := map[uuid.UUID]*MatchRecord{
		id: {ItemID: id, MatchScore: 1.0, MatchType: MatchExact},
	}

	e.combine(records, []uuid.UUID{id}, []SimilarityHit{{ItemID: id, Distance: 0}}, nil, newAttributeSet(nil))
	require.LessOrEqual(t, records[id].MatchScore, 1.0)
}

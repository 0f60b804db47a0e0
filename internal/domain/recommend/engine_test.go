package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]Profile
	err      error
}

func (f fakeProfiles) GetProfile(_ context.Context, id uuid.UUID) (Profile, error) {
	if f.err != nil {
		return Profile{}, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

type fakeCatalog struct {
	items []CatalogItem
	err   error
	calls int
}

func (f *fakeCatalog) ListItems(_ context.Context, kind Kind, limit int) ([]CatalogItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]CatalogItem, 0, len(f.items))
	for _, it := range f.items {
		if it.Kind != kind {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeIndex struct {
	hits  []SimilarityHit
	err   error
	delay time.Duration
}

func (f *fakeIndex) QuerySimilar(ctx context.Context, _ Kind, _ string, _ int) ([]SimilarityHit, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func singleProfile(p Profile) fakeProfiles {
	return fakeProfiles{profiles: map[uuid.UUID]Profile{p.ID: p}}
}

func jobItem(attrs ...string) CatalogItem {
	return CatalogItem{ID: uuid.New(), Kind: KindJob, Title: "Job", Attributes: attrs}
}

func TestRecommendJobs_EmptyProfileAttributes(t *testing.T) {
	profile := Profile{ID: uuid.New()}
	catalog := &fakeCatalog{items: []CatalogItem{jobItem("Go")}}
	e := NewEngine(singleProfile(profile), catalog, nil, Weights{}, nil)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Zero(t, catalog.calls, "empty profile must not touch the catalog")
}

func TestRecommendJobs_ExactScenario(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"JavaScript", "React"}}
	item := jobItem("JavaScript", "React", "TypeScript", "HTML")
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: []CatalogItem{item}}, nil, Weights{}, nil)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	require.Equal(t, item.ID, rec.ItemID)
	require.Equal(t, []string{"JavaScript", "React"}, rec.MatchedAttributes)
	require.Equal(t, []string{"TypeScript", "HTML"}, rec.MissingAttributes)
	require.InDelta(t, 0.5, rec.MatchScore, 1e-9)
	require.Equal(t, 50, rec.MatchPercentage)
	require.Equal(t, MatchExact, rec.MatchType)
	require.Nil(t, rec.SemanticSimilarity)
}

func TestRecommendJobs_HybridDedup(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"JavaScript", "React"}}
	item := jobItem("JavaScript", "React", "TypeScript", "HTML")
	index := &fakeIndex{hits: []SimilarityHit{{ItemID: item.ID, Distance: 0.2}}}
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: []CatalogItem{item}}, index, Weights{}, nil)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, out, 1, "item found by both passes must appear exactly once")

	rec := out[0]
	require.Equal(t, MatchHybrid, rec.MatchType)
	require.NotNil(t, rec.SemanticSimilarity)
	require.InDelta(t, 0.8, *rec.SemanticSimilarity, 1e-9)
	require.InDelta(t, 0.65*0.5+0.35*0.8, rec.MatchScore, 1e-9)
}

func TestRecommendJobs_SemanticOnly(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go"}}
	exactItem := jobItem("Go")
	semanticItem := jobItem("Kubernetes", "Helm")
	index := &fakeIndex{hits: []SimilarityHit{{ItemID: semanticItem.ID, Distance: 0.1}}}
	e := NewEngine(
		singleProfile(profile),
		&fakeCatalog{items: []CatalogItem{exactItem, semanticItem}},
		index,
		Weights{},
		nil,
	)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	var rec *MatchRecord
	for i := range out {
		if out[i].ItemID == semanticItem.ID {
			rec = &out[i]
		}
	}
	require.NotNil(t, rec)
	require.Equal(t, MatchSemantic, rec.MatchType)
	require.NotNil(t, rec.SemanticSimilarity)
	require.InDelta(t, 0.9, *rec.SemanticSimilarity, 1e-9)
	require.NotNil(t, rec.MatchedAttributes)
	require.Empty(t, rec.MatchedAttributes)
	require.Equal(t, []string{"Kubernetes", "Helm"}, rec.MissingAttributes)
	// 0.9*0.7 semantic-only discount plus the high-confidence boost.
	require.InDelta(t, 0.9*0.7+0.1, rec.MatchScore, 1e-9)
}

func TestRecommendJobs_SemanticTimeoutDegradesToExactOnly(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go", "PostgreSQL"}}
	items := []CatalogItem{
		jobItem("Go", "Docker"),
		jobItem("PostgreSQL", "Go", "Kafka"),
		jobItem("Rust"),
	}
	slowIndex := &fakeIndex{
		delay: 500 * time.Millisecond,
		hits:  []SimilarityHit{{ItemID: items[2].ID, Distance: 0.1}},
	}
	weights := Weights{SemanticTimeout: 20 * time.Millisecond}

	withIndex := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, slowIndex, weights, nil)
	exactOnly := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, nil, weights, nil)

	start := time.Now()
	got, err := withIndex.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Less(t, time.Since(start), 300*time.Millisecond, "semantic path must not block beyond its budget")

	want, err := exactOnly.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRecommendJobs_IndexErrorDegradesToExactOnly(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go"}}
	items := []CatalogItem{jobItem("Go", "Docker")}

	withIndex := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, &fakeIndex{err: errors.New("index down")}, Weights{}, nil)
	exactOnly := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, nil, Weights{}, nil)

	got, err := withIndex.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	want, err := exactOnly.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRecommendJobs_Idempotent(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go", "Docker", "Kafka"}}
	items := []CatalogItem{
		jobItem("Go", "Kafka"),
		jobItem("Docker"),
		jobItem("Go", "Docker", "Terraform"),
		jobItem("Elixir", "Phoenix"),
	}
	index := &fakeIndex{hits: []SimilarityHit{
		{ItemID: items[3].ID, Distance: 0.3},
		{ItemID: items[0].ID, Distance: 0.5},
	}}
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, index, Weights{}, nil)

	first, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	second, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRecommendJobs_MonotonicRankingAndBounds(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go", "Docker", "Kafka", "SQL"}}
	items := []CatalogItem{
		jobItem("Go"),
		jobItem("Go", "Docker", "Kafka", "SQL"),
		jobItem("Go", "Rust", "Haskell"),
		jobItem("SQL", "Kafka"),
	}
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: items}, nil, Weights{}, nil)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for i, rec := range out {
		require.GreaterOrEqual(t, rec.MatchScore, 0.0)
		require.LessOrEqual(t, rec.MatchScore, 1.0)
		if i > 0 {
			require.GreaterOrEqual(t, out[i-1].MatchScore, rec.MatchScore)
		}
		requireSubsequence(t, rec.Item.Attributes, rec.MatchedAttributes)
		requireSubsequence(t, rec.Item.Attributes, rec.MissingAttributes)
	}
}

func TestRecommendResources_UsesInterests(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Python"}, Interests: []string{"Machine Learning"}}
	resource := CatalogItem{
		ID:         uuid.New(),
		Kind:       KindResource,
		Title:      "ML Foundations",
		Attributes: []string{"Machine Learning", "Statistics"},
	}
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: []CatalogItem{resource}}, nil, Weights{}, nil)

	out, err := e.RecommendResources(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, []string{"Machine Learning"}, out[0].MatchedAttributes)

	// Jobs ignore interests, so the same attributes match nothing there.
	jobs, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func TestRecommend_ProfileFetchFailure(t *testing.T) {
	e := NewEngine(fakeProfiles{err: errors.New("store down")}, &fakeCatalog{}, nil, Weights{}, nil)
	out, err := e.RecommendJobs(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRecommend_ProfileNotFound(t *testing.T) {
	e := NewEngine(fakeProfiles{profiles: map[uuid.UUID]Profile{}}, &fakeCatalog{}, nil, Weights{}, nil)
	out, err := e.RecommendJobs(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRecommend_CatalogFetchFailure(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go"}}
	e := NewEngine(singleProfile(profile), &fakeCatalog{err: errors.New("db down")}, nil, Weights{}, nil)
	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRecommend_CallerCancellation(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go"}}
	e := NewEngine(singleProfile(profile), &fakeCatalog{}, nil, Weights{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.RecommendJobs(ctx, profile.ID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_ItemsWithoutAttributesExcluded(t *testing.T) {
	profile := Profile{ID: uuid.New(), Skills: []string{"Go"}}
	bare := CatalogItem{ID: uuid.New(), Kind: KindJob, Title: "No attributes"}
	index := &fakeIndex{hits: []SimilarityHit{{ItemID: bare.ID, Distance: 0.1}}}
	e := NewEngine(singleProfile(profile), &fakeCatalog{items: []CatalogItem{bare}}, index, Weights{}, nil)

	out, err := e.RecommendJobs(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Empty(t, out)
}

func requireSubsequence(t *testing.T, full, sub []string) {
	t.Helper()
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	require.Equal(t, len(sub), i, "expected %v to be an in-order subsequence of %v", sub, full)
}

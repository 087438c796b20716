package semantic

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	return NewMatcher(nil, 100, logging.NewNopLogger())
}

func TestSimilarityIdenticalText(t *testing.T) {
	m := newTestMatcher(t)

	sim, err := m.Similarity(context.Background(), "request information under rti act", "request information under rti act")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-6)
}

func TestSimilarityOrdering(t *testing.T) {
	m := newTestMatcher(t)
	ctx := context.Background()

	query := "seeking government records from public authority"
	related, err := m.Similarity(ctx, query, "obtaining government documents")
	require.NoError(t, err)
	unrelated, err := m.Similarity(ctx, query, "transformer voltage fluctuation")
	require.NoError(t, err)

	assert.Greater(t, related, unrelated)
	// Synonym folding maps "documents" onto "records".
	assert.Greater(t, related, 0.0)
}

func TestSimilarityEmptyText(t *testing.T) {
	m := newTestMatcher(t)

	sim, err := m.Similarity(context.Background(), "", "water supply complaint")
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestRank(t *testing.T) {
	m := newTestMatcher(t)

	candidates := []string{
		"complaint about corruption",
		"inspection of official records",
		"bribe demand by official",
	}
	ranking, err := m.Rank(context.Background(), "official demanded a bribe for my file", candidates, 2)
	require.NoError(t, err)
	require.Len(t, ranking.TopMatches, 2)

	assert.Equal(t, "bribe demand by official", ranking.TopMatches[0].Candidate)
	assert.Equal(t, 1, ranking.TopMatches[0].Rank)
	assert.Contains(t, ranking.TopMatches[0].Explanation, "Rank #1")
	assert.GreaterOrEqual(t, ranking.TopMatches[0].Score, ranking.TopMatches[1].Score)
}

func TestRankCancelledContext(t *testing.T) {
	m := newTestMatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Rank(ctx, "water issue", []string{"a", "b"}, 0)
	assert.Error(t, err)
}

func TestClassifyQueryCorruption(t *testing.T) {
	m := newTestMatcher(t)

	scores, err := m.ClassifyQuery(context.Background(), "the official demanded a bribe and illegal payment")
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, "complaint_corruption", scores[0].Type)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
	}
}

func TestClassifyQueryInformation(t *testing.T) {
	m := newTestMatcher(t)

	scores, err := m.ClassifyQuery(context.Background(), "request for information under rti act from public authority")
	require.NoError(t, err)
	assert.Equal(t, "rti_information", scores[0].Type)
}

func TestCacheHitCounting(t *testing.T) {
	m := newTestMatcher(t)
	ctx := context.Background()

	_, err := m.Similarity(ctx, "water supply", "water supply")
	require.NoError(t, err)

	stats := m.CacheStats()
	// Same text embeds once, hits cache once.
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	m.ClearCache()
	assert.Zero(t, m.CacheStats().Size)
}

func TestCacheEviction(t *testing.T) {
	c := newEmbeddingCache(4)
	for i := 0; i < 4; i++ {
		c.put(fmt.Sprintf("text-%d", i), []float32{float64To32(i)})
	}
	assert.Equal(t, 4, c.stats().Size)

	// Fifth insert drops the oldest half.
	c.put("text-4", []float32{4})
	stats := c.stats()
	assert.Equal(t, 3, stats.Size)

	_, ok := c.get("text-0")
	assert.False(t, ok)
	_, ok = c.get("text-3")
	assert.True(t, ok)
	_, ok = c.get("text-4")
	assert.True(t, ok)
}

func float64To32(i int) float32 { return float32(i) }

func TestEmbedderDeterministic(t *testing.T) {
	e := NewHashingEmbedder(64, nil)
	ctx := context.Background()

	a, err := e.EmbedTexts(ctx, []string{"no action taken on my application"})
	require.NoError(t, err)
	b, err := e.EmbedTexts(ctx, []string{"no action taken on my application"})
	require.NoError(t, err)
	assert.Equal(t, a[0], b[0])
	assert.Len(t, a[0], 64)
}

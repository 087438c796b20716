package semantic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Result types
// ─────────────────────────────────────────────────────────────────────────────

// Match is one ranked candidate.
type Match struct {
	Candidate   string  `json:"candidate"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
	Explanation string  `json:"explanation"`
}

// Ranking is the full result of a ranking call with its audit trail.
type Ranking struct {
	Query          string        `json:"query"`
	TopMatches     []Match       `json:"top_matches"`
	ProcessingTime time.Duration `json:"processing_time"`
	QueryCacheHit  bool          `json:"cache_hit"`
	CacheHits      int           `json:"candidate_cache_hits"`
}

// TypeScore is a civic query type with its average template similarity.
type TypeScore struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Matcher
// ─────────────────────────────────────────────────────────────────────────────

// Matcher ranks candidates by embedding similarity, with a bounded cache in
// front of the embedder.  Safe for concurrent use.
type Matcher struct {
	embedder Embedder
	cache    *embeddingCache
	logger   logging.Logger
}

// NewMatcher builds a Matcher.  A nil embedder gets the default hashing
// embedder at 256 dimensions.
func NewMatcher(embedder Embedder, cacheSize int, logger logging.Logger) *Matcher {
	if embedder == nil {
		embedder = NewHashingEmbedder(256, nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Matcher{
		embedder: embedder,
		cache:    newEmbeddingCache(cacheSize),
		logger:   logger.Named("semantic"),
	}
}

// embed returns the embedding for text, from cache when possible.
func (m *Matcher) embed(ctx context.Context, text string) ([]float32, bool, error) {
	if vec, ok := m.cache.get(text); ok {
		return vec, true, nil
	}
	vecs, err := m.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, false, errors.Wrap(err, errors.CodeStageDegraded, "embedding failed")
	}
	m.cache.put(text, vecs[0])
	return vecs[0], false, nil
}

// Similarity returns the cosine similarity of two texts in [0, 1].
func (m *Matcher) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, _, err := m.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, _, err := m.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return cosine(va, vb), nil
}

// Rank orders candidates by similarity to query, keeping at most topK.
// A topK of zero or less keeps all candidates.
func (m *Matcher) Rank(ctx context.Context, query string, candidates []string, topK int) (Ranking, error) {
	start := time.Now()

	queryVec, queryHit, err := m.embed(ctx, query)
	if err != nil {
		return Ranking{}, err
	}

	type scored struct {
		candidate string
		score     float64
	}
	results := make([]scored, 0, len(candidates))
	cacheHits := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return Ranking{}, errors.Wrap(err, errors.CodeStageDegraded, "ranking cancelled")
		}
		vec, hit, err := m.embed(ctx, candidate)
		if err != nil {
			return Ranking{}, err
		}
		if hit {
			cacheHits++
		}
		results = append(results, scored{candidate: candidate, score: cosine(queryVec, vec)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}

	matches := make([]Match, 0, len(results))
	for i, r := range results {
		matches = append(matches, Match{
			Candidate:   r.candidate,
			Score:       r.score,
			Rank:        i + 1,
			Explanation: explainScore(r.score, i+1),
		})
	}

	elapsed := time.Since(start)
	m.logger.Debug("ranked candidates",
		logging.Int("candidates", len(candidates)),
		logging.Int("cache_hits", cacheHits),
		logging.Duration("elapsed", elapsed))

	return Ranking{
		Query:          query,
		TopMatches:     matches,
		ProcessingTime: elapsed,
		QueryCacheHit:  queryHit,
		CacheHits:      cacheHits,
	}, nil
}

// ClassifyQuery scores the query against each civic template group and
// returns types sorted by average similarity, best first.  Used only when
// the rule engine reports low confidence.
func (m *Matcher) ClassifyQuery(ctx context.Context, query string) ([]TypeScore, error) {
	queryVec, _, err := m.embed(ctx, query)
	if err != nil {
		return nil, err
	}

	scores := make([]TypeScore, 0, len(civicTemplateGroups))
	for _, group := range civicTemplateGroups {
		total := 0.0
		for _, tmpl := range group.Templates {
			vec, _, err := m.embed(ctx, tmpl)
			if err != nil {
				return nil, err
			}
			total += cosine(queryVec, vec)
		}
		scores = append(scores, TypeScore{
			Type:  group.Type,
			Score: total / float64(len(group.Templates)),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, nil
}

// CacheStats reports the embedding cache counters.
func (m *Matcher) CacheStats() Stats { return m.cache.stats() }

// ClearCache drops all cached embeddings.
func (m *Matcher) ClearCache() { m.cache.clear() }

func explainScore(score float64, rank int) string {
	pct := score * 100
	switch {
	case score >= 0.9:
		return fmt.Sprintf("Rank #%d: Very high match (%.0f%%) - Strong semantic similarity", rank, pct)
	case score >= 0.75:
		return fmt.Sprintf("Rank #%d: Good match (%.0f%%) - Related content", rank, pct)
	case score >= 0.6:
		return fmt.Sprintf("Rank #%d: Moderate match (%.0f%%) - Some relevance", rank, pct)
	case score >= 0.4:
		return fmt.Sprintf("Rank #%d: Weak match (%.0f%%) - Limited relevance", rank, pct)
	default:
		return fmt.Sprintf("Rank #%d: Poor match (%.0f%%) - Consider other options", rank, pct)
	}
}

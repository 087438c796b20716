// Package semantic provides similarity matching and ranking over civic text.
// It is used only for ranking candidates and suggesting alternatives when
// the rule engine reports low confidence; classification decisions stay
// with the rule engine.
package semantic

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// Embedder turns texts into fixed-dimension vectors.
type Embedder interface {
	Name() string
	Dim() int
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// HashingEmbedder is a bag-of-words hashing embedder with civic synonym
// folding.  Deterministic and dependency-free, which keeps the pipeline
// fully auditable.
type HashingEmbedder struct {
	name     string
	dim      int
	synonyms map[string]string
}

// NewHashingEmbedder builds an embedder of the given dimension.  A nil
// synonyms map means the default civic synonyms.
func NewHashingEmbedder(dim int, synonyms map[string]string) *HashingEmbedder {
	if synonyms == nil {
		synonyms = civicSynonyms
	}
	return &HashingEmbedder{name: "hashing-bow", dim: dim, synonyms: synonyms}
}

func (e *HashingEmbedder) Name() string { return e.name }
func (e *HashingEmbedder) Dim() int     { return e.dim }

// normalizeWord strips punctuation, drops stop words, and folds synonyms
// onto their canonical concept.
func (e *HashingEmbedder) normalizeWord(w string) string {
	w = strings.Trim(w, ".,!?-:;\"'()")
	if w == "" || embedStopWords[w] {
		return ""
	}
	if canonical, ok := e.synonyms[w]; ok {
		return canonical
	}
	return w
}

// EmbedTexts hashes each content word into a bucket and L2-normalizes the
// resulting count vector.
func (e *HashingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec := make([]float32, e.dim)
		for _, w := range strings.Fields(strings.ToLower(t)) {
			w = e.normalizeWord(w)
			if w == "" {
				continue
			}
			h := fnv.New32a()
			_, _ = h.Write([]byte(w))
			idx := int(h.Sum32()) % e.dim
			if idx < 0 {
				idx = -idx
			}
			vec[idx] += 1.0
		}

		var sumSq float32
		for _, v := range vec {
			sumSq += v * v
		}
		if sumSq > 0 {
			norm := float32(1.0 / math.Sqrt(float64(sumSq)))
			for j, v := range vec {
				vec[j] = v * norm
			}
		}
		out[i] = vec
	}
	return out, nil
}

// cosine returns the similarity of two vectors, clamped to [0, 1].
func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		if i >= len(b) {
			break
		}
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// civicSynonyms folds common phrasing variants onto one concept so that
// "documents" and "records" land in the same bucket.
var civicSynonyms = map[string]string{
	"documents": "records",
	"document":  "records",
	"papers":    "records",
	"files":     "records",
	"record":    "records",
	"bribe":     "corruption",
	"bribery":   "corruption",
	"graft":     "corruption",
	"extortion": "corruption",
	"grievance": "complaint",
	"complaints": "complaint",
	"delayed":   "delay",
	"delays":    "delay",
	"pending":   "delay",
	"officials": "official",
	"officer":   "official",
	"officers":  "official",
	"departments": "department",
	"authorities": "authority",
}

var embedStopWords = map[string]bool{
	"i": true, "me": true, "my": true, "we": true, "our": true, "you": true,
	"your": true, "he": true, "him": true, "his": true, "she": true, "her": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"what": true, "which": true, "who": true, "this": true, "that": true,
	"these": true, "those": true, "am": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "a": true, "an": true, "the": true, "and": true, "but": true,
	"if": true, "or": true, "because": true, "as": true, "until": true,
	"while": true, "of": true, "at": true, "by": true, "for": true,
	"with": true, "about": true, "against": true, "between": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "to": true, "from": true,
	"up": true, "down": true, "in": true, "out": true, "on": true, "off": true,
	"over": true, "under": true, "again": true, "then": true, "once": true,
	"here": true, "there": true, "when": true, "where": true, "why": true,
	"how": true, "all": true, "any": true, "both": true, "each": true,
	"few": true, "more": true, "most": true, "other": true, "some": true,
	"such": true, "no": true, "nor": true, "not": true, "only": true,
	"own": true, "same": true, "so": true, "than": true, "too": true,
	"very": true, "can": true, "will": true, "just": true, "should": true,
	"now": true, "please": true, "kindly": true,
}

package issue

import (
	"sort"
	"strings"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// Scoring constants for the category match.  The base is lower than the
// intent classifier's because a single department keyword is weaker evidence
// than an intent phrase.
const (
	baseConfidence    = 0.3
	bonusPerKeyword   = 0.02
	scoreCap          = 0.95
	generalConfidence = 0.3
)

// Mapper maps issue descriptions to categories and departments.  Stateless
// and safe for concurrent use.
type Mapper struct {
	logger logging.Logger
}

// NewMapper returns a ready Mapper.
func NewMapper(logger logging.Logger) *Mapper {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Mapper{logger: logger.Named("issue")}
}

// Map scores every category against text and returns all matches sorted by
// confidence, best first.  A submission matching nothing gets the general
// fallback so downstream routing always has a target.
func (m *Mapper) Map(text string) []Match {
	lower := strings.ToLower(text)

	var matches []Match
	for _, entry := range categoryTable {
		var found []string
		total := 0.0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw.phrase) {
				found = append(found, kw.phrase)
				total += kw.weight
			}
		}
		if len(found) == 0 {
			continue
		}

		conf := baseConfidence + total + float64(len(found))*bonusPerKeyword
		if conf > scoreCap {
			conf = scoreCap
		}
		matches = append(matches, Match{
			Category:           entry.category,
			Confidence:         conf,
			KeywordsMatched:    found,
			Departments:        entry.departments,
			SuggestedAuthority: entry.departments[0].Name,
			EscalationPath:     entry.escalationPath,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) == 0 {
		matches = append(matches, Match{
			Category:           CategoryGeneral,
			Confidence:         generalConfidence,
			Departments:        []Department{dept("Grievance Cell", "state")},
			SuggestedAuthority: "District Grievance Cell",
			EscalationPath:     []string{"District Officer → State Level"},
		})
	}

	m.logger.Debug("issue mapped",
		logging.String("category", string(matches[0].Category)),
		logging.Float64("confidence", matches[0].Confidence),
		logging.Int("candidates", len(matches)))

	return matches
}

// Best returns only the top match for text.
func (m *Mapper) Best(text string) Match {
	return m.Map(text)[0]
}

// Suggest returns the topN category candidates with a trimmed keyword list,
// for user selection when routing confidence is low.
func (m *Mapper) Suggest(text string, topN int) []Match {
	matches := m.Map(text)
	if len(matches) > topN {
		matches = matches[:topN]
	}
	for i := range matches {
		if len(matches[i].KeywordsMatched) > 5 {
			matches[i].KeywordsMatched = matches[i].KeywordsMatched[:5]
		}
	}
	return matches
}

// DepartmentsFor returns the departments registered for a category.
func DepartmentsFor(category Category) ([]Department, error) {
	for _, entry := range categoryTable {
		if entry.category == category {
			return entry.departments, nil
		}
	}
	return nil, errors.New(errors.CodeCategoryUnknown, "unknown issue category").
		WithDetail(string(category))
}

// EscalationPathFor returns the escalation chain for a category.
func EscalationPathFor(category Category) ([]string, error) {
	for _, entry := range categoryTable {
		if entry.category == category {
			return entry.escalationPath, nil
		}
	}
	return nil, errors.New(errors.CodeCategoryUnknown, "unknown issue category").
		WithDetail(string(category))
}

// Categories lists every supported category with its department count.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categoryTable))
	for _, entry := range categoryTable {
		out = append(out, CategoryInfo{
			Value:           entry.category,
			Label:           labelFor(entry.category),
			DepartmentCount: len(entry.departments),
		})
	}
	return out
}

// labelFor turns "social_welfare" into "Social Welfare".
func labelFor(c Category) string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

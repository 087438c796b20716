package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

func newTestMapper() *Mapper {
	return NewMapper(logging.NewNopLogger())
}

func TestMap_ElectricityIssue(t *testing.T) {
	m := newTestMapper()
	matches := m.Map("There has been a power cut in my area for three days and the transformer is broken")

	require.NotEmpty(t, matches)
	best := matches[0]
	assert.Equal(t, CategoryElectricity, best.Category)
	assert.Contains(t, best.KeywordsMatched, "power cut")
	assert.Contains(t, best.KeywordsMatched, "transformer")
	assert.Equal(t, "State Electricity Board", best.SuggestedAuthority)
	assert.Greater(t, best.Confidence, 0.7)
}

func TestMap_WaterIssue(t *testing.T) {
	m := newTestMapper()
	best := m.Best("no water supply in our colony, the pipeline is leaking and water is contaminated")

	assert.Equal(t, CategoryWater, best.Category)
	assert.InDelta(t, 0.95, best.Confidence, 1e-9)
}

func TestMap_SortedByConfidence(t *testing.T) {
	m := newTestMapper()
	matches := m.Map("the road near the school has a huge pothole")

	require.GreaterOrEqual(t, len(matches), 2)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Confidence, matches[i-1].Confidence)
	}
	assert.Equal(t, CategoryRoads, matches[0].Category)
}

func TestMap_GeneralFallback(t *testing.T) {
	m := newTestMapper()
	matches := m.Map("I am unhappy about a matter I cannot describe")

	require.Len(t, matches, 1)
	assert.Equal(t, CategoryGeneral, matches[0].Category)
	assert.InDelta(t, 0.3, matches[0].Confidence, 1e-9)
	assert.Equal(t, "District Grievance Cell", matches[0].SuggestedAuthority)
	assert.Empty(t, matches[0].KeywordsMatched)
}

func TestSuggest_TrimsKeywordsAndCandidates(t *testing.T) {
	m := newTestMapper()
	sugg := m.Suggest("power cut, no water, broken road, hospital emergency and police harassment", 3)

	assert.Len(t, sugg, 3)
	for _, s := range sugg {
		assert.LessOrEqual(t, len(s.KeywordsMatched), 5)
	}
}

func TestDepartmentsFor(t *testing.T) {
	depts, err := DepartmentsFor(CategoryRation)
	require.NoError(t, err)
	require.NotEmpty(t, depts)
	assert.Equal(t, "Food & Civil Supplies Department", depts[0].Name)
	assert.Equal(t, 30, depts[0].ResponseDays)

	_, err = DepartmentsFor(Category("astrology"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCategoryUnknown))
}

func TestEscalationPathFor(t *testing.T) {
	path, err := EscalationPathFor(CategoryPolice)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Contains(t, path[0], "SHO")

	_, err = EscalationPathFor(CategoryGeneral)
	assert.Error(t, err)
}

func TestCategories_Listing(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 19)

	var welfare CategoryInfo
	for _, c := range cats {
		if c.Value == CategorySocialWelfare {
			welfare = c
		}
	}
	assert.Equal(t, "Social Welfare", welfare.Label)
	assert.Equal(t, 3, welfare.DepartmentCount)
}

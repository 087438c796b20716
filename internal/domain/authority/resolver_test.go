package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(logging.NewNopLogger())
}

func TestResolveRTIElectricity(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{
		Category: "electricity",
		State:    "Uttar Pradesh",
		District: "Lucknow",
		IsRTI:    true,
	})

	require.NotNil(t, res.Primary)
	assert.Equal(t, "Public Information Officer", res.Primary.Authority.Name)
	assert.InDelta(t, 0.95, res.Primary.Confidence, 1e-9)
	assert.Equal(t, "Uttar Pradesh State Electricity Board, Lucknow", res.Primary.Authority.AddressTemplate)
	assert.Equal(t, "State Electricity Board / DISCOM", res.Department)
	assert.False(t, res.RequiresStateSelection)
	assert.Contains(t, res.Suggestions, "RTI fee: Rs. 10/- via IPO/DD/Online")

	// Grievance forum and collector pad the list.
	require.Len(t, res.Matches, 3)
	assert.Equal(t, "Consumer Grievance Redressal Forum", res.Matches[1].Authority.Name)
	assert.InDelta(t, 0.7, res.Matches[1].Confidence, 1e-9)
	assert.Equal(t, "District Collector", res.Matches[2].Authority.Name)
	assert.InDelta(t, 0.6, res.Matches[2].Confidence, 1e-9)
}

func TestResolveRTIWithoutDistrict(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Category: "electricity", State: "Rajasthan", IsRTI: true})

	require.NotNil(t, res.Primary)
	assert.Equal(t, "Public Information Officer", res.Primary.Authority.Name)
	assert.Equal(t, "PIO, Electricity Department", res.Primary.Authority.Designation)
	assert.InDelta(t, 0.95, res.Primary.Confidence, 1e-9)
	assert.Contains(t, res.Primary.Authority.AddressTemplate, "Rajasthan")
	assert.False(t, res.RequiresStateSelection)
}

func TestResolveComplaintStartsLocal(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{
		Category: "water",
		State:    "rajasthan",
		District: "jaipur",
		Area:     "malviya nagar",
	})

	require.NotNil(t, res.Primary)
	assert.Equal(t, "Junior Engineer", res.Primary.Authority.Name)
	assert.InDelta(t, 0.85, res.Primary.Confidence, 1e-9)
	assert.Equal(t, "JE Office, Water Supply Division, Malviya Nagar", res.Primary.Authority.AddressTemplate)
	assert.Equal(t, "Local-level authority for new complaints", res.Primary.Reason)
}

func TestResolveComplaintEscalatesToDistrict(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{
		Category: "police",
		State:    "bihar",
		District: "patna",
		Hints:    []string{"no response", "complaint pending"},
	})

	require.NotNil(t, res.Primary)
	assert.Equal(t, "Superintendent of Police", res.Primary.Authority.Name)
	assert.Equal(t, "District-level authority for escalated complaints", res.Primary.Reason)
	assert.Contains(t, res.Suggestions, "For escalated complaints, consider mentioning previous complaint details")
}

func TestResolveUnknownCategoryFallsBack(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Category: "telecom", State: "kerala", IsRTI: true})
	require.NotNil(t, res.Primary)
	assert.Equal(t, "Concerned Department", res.Primary.Authority.Department)
	assert.Equal(t, "Secretariat, Kerala", res.Primary.Authority.AddressTemplate)
}

func TestResolveMissingLocationKeepsPlaceholders(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Category: "roads", State: "goa"})
	require.NotNil(t, res.Primary)
	assert.Equal(t, "PWD Sub-Division, [Area/Locality], [District]", res.Primary.Authority.AddressTemplate)
}

func TestResolveUnknownState(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Category: "health", State: "atlantis", IsRTI: true})
	assert.True(t, res.RequiresStateSelection)
	assert.Contains(t, res.Suggestions, "Please verify your state name for accurate authority details")
}

func TestCategoriesAndStates(t *testing.T) {
	r := newTestResolver(t)

	categories := r.Categories()
	assert.Len(t, categories, 12)
	assert.Equal(t, "electricity", categories[0])
	assert.Equal(t, "general", categories[len(categories)-1])

	statesList := r.States()
	require.Len(t, statesList, 29)
	assert.Equal(t, StateInfo{Name: "Andhra Pradesh", Code: "AP", Capital: "Amaravati"}, statesList[0])
	assert.Equal(t, "DL", statesList[len(statesList)-1].Code)
}

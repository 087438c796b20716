package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(logging.NewNopLogger())
}

func TestEntitiesMixedText(t *testing.T) {
	e := newTestExtractor(t)

	text := "Please contact Ravi at ravi.kumar@example.com or 9876543210 regarding Ref No. PGRS/8821/2024 in Jaipur, Rajasthan."
	entities := e.Entities(text)
	require.Len(t, entities, 5)

	locations := Result{Entities: entities}.ByType(EntityLocation)
	assert.Equal(t, []string{"Rajasthan", "Jaipur"}, locations)

	phones := Result{Entities: entities}.ByType(EntityPhone)
	assert.Equal(t, []string{"9876543210"}, phones)

	emails := Result{Entities: entities}.ByType(EntityEmail)
	assert.Equal(t, []string{"ravi.kumar@example.com"}, emails)

	refs := Result{Entities: entities}.ByType(EntityReferenceNumber)
	assert.Equal(t, []string{"PGRS/8821/2024"}, refs)
}

func TestEntitiesPhoneWithCountryCode(t *testing.T) {
	e := newTestExtractor(t)

	entities := e.Entities("Reach me at +91 9876543210 please")
	require.Len(t, entities, 1)
	assert.Equal(t, "+91 9876543210", entities[0].Text)
	assert.Equal(t, EntityPhone, entities[0].Type)
	assert.InDelta(t, 0.90, entities[0].Confidence, 1e-9)
}

func TestEntitiesReferenceUppercased(t *testing.T) {
	e := newTestExtractor(t)

	entities := e.Entities("my application number abc/123/2024 is still pending")
	refs := Result{Entities: entities}.ByType(EntityReferenceNumber)
	require.NotEmpty(t, refs)
	assert.Equal(t, "ABC/123/2024", refs[0])
}

func TestEntitiesWordBoundary(t *testing.T) {
	e := newTestExtractor(t)

	// "agra" inside a surname must not match the city gazetteer.
	entities := e.Entities("Mr. Agrawal filed the papers")
	assert.Empty(t, entities)
}

func TestEntitiesDedupeOverlappingGazetteers(t *testing.T) {
	e := newTestExtractor(t)

	// "delhi" appears in both the state and city lists; one entity only.
	entities := e.Entities("water shortage in delhi")
	require.Len(t, entities, 1)
	assert.Equal(t, "Delhi", entities[0].Text)
	assert.Equal(t, "gazetteer_state", entities[0].Source)
}

func TestEntitiesMonthNameDateRange(t *testing.T) {
	e := newTestExtractor(t)

	text := "I request information about road construction expenditure in Jaipur from January 2024 to December 2024"
	entities := e.Entities(text)

	dates := Result{Entities: entities}.ByType(EntityDate)
	assert.Equal(t, []string{"January 2024", "December 2024"}, dates)

	locations := Result{Entities: entities}.ByType(EntityLocation)
	assert.Equal(t, []string{"Jaipur"}, locations)
}

func TestEntitiesNumericDates(t *testing.T) {
	e := newTestExtractor(t)

	dates := Result{Entities: e.Entities("The road was dug on 15/03/2024 and left open until 02-04-2024")}.ByType(EntityDate)
	assert.Equal(t, []string{"15/03/2024", "02-04-2024"}, dates)
}

func TestEntitiesMoney(t *testing.T) {
	e := newTestExtractor(t)

	money := Result{Entities: e.Entities("They demanded Rs. 5,000 as a bribe; the fee is ₹10 and the project cost 2 crores")}.ByType(EntityMoney)
	assert.Equal(t, []string{"Rs. 5,000", "₹10", "2 crores"}, money)
}

func TestKeyPhrases(t *testing.T) {
	e := newTestExtractor(t)

	phrases := e.KeyPhrases("No electricity supply in our area for three days. The electricity board is not responding.", 10)
	require.NotEmpty(t, phrases)
	// Civic phrase matches rank ahead of plain words.
	assert.Equal(t, "electricity board", phrases[0])
	assert.Contains(t, phrases, "supply")
	assert.Contains(t, phrases, "responding")
	assert.NotContains(t, phrases, "area")
}

func TestKeyPhrasesTopN(t *testing.T) {
	e := newTestExtractor(t)

	phrases := e.KeyPhrases("electricity transformer voltage fluctuation complaints department officers responsible accountability transparency", 3)
	assert.Len(t, phrases, 3)
}

func TestMatchPhrases(t *testing.T) {
	e := newTestExtractor(t)

	matched := e.MatchPhrases("I want to file an RTI Act request with the PIO about the municipal corporation and their negligence")
	assert.Equal(t, []string{"municipal corporation"}, matched.Departments)
	assert.Contains(t, matched.RTITerms, "rti act")
	assert.Contains(t, matched.RTITerms, "pio")
	assert.Equal(t, []string{"negligence"}, matched.ComplaintMarkers)
}

func TestAnalyzeAuditTrail(t *testing.T) {
	e := newTestExtractor(t)

	res := e.Analyze("No water supply in Mumbai for five days")
	require.Len(t, res.Steps, 6)
	assert.Equal(t, "tokenization", res.Steps[0].Name)
	assert.Equal(t, 8, res.WordCount)
	assert.Equal(t, []string{"Mumbai"}, res.ByType(EntityLocation))
	assert.Equal(t, SentimentNeutral, res.Sentiment)
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultOptions(), logging.NewNopLogger())
}

func TestClassify_ClearRTI(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("I want to file an RTI application seeking information about road construction records under the RTI Act.")

	assert.Equal(t, IntentRTI, res.Intent)
	assert.Equal(t, SubTypeInformationRequest, res.SubType)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)
	assert.False(t, res.RequiresNLP)
	assert.False(t, res.Ambiguous)
	assert.NotEmpty(t, res.Matches)
	assert.NotEmpty(t, res.DecisionPath)
}

func TestClassify_CorruptionComplaint(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("I want to file a complaint about corruption, the officer demanded money and asked for bribe.")

	assert.Equal(t, IntentComplaint, res.Intent)
	assert.Equal(t, SubTypeCorruptionComplaint, res.SubType)
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestClassify_UtilityFailureIsComplaint(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("power cut for 3 days, transformer exploded, life at risk, no response from electricity board")

	// "no response" is also a follow-up signal, but the utility-failure
	// phrases keep the complaint score clear of the ambiguity margin.
	assert.Equal(t, IntentComplaint, res.Intent)
	assert.InDelta(t, 0.84, res.Confidence, 1e-9)
	assert.False(t, res.Ambiguous)
	assert.Greater(t, res.Scores[IntentComplaint], res.Scores[IntentFollowUp])
}

func TestClassify_RecordsRequestSubType(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("Please provide certified copies of documents related to the tender.")

	assert.Equal(t, IntentRTI, res.Intent)
	assert.Equal(t, SubTypeRecordsRequest, res.SubType)
}

func TestClassify_SecondAppeal(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("I am filing a second appeal to the information commission as my first RTI was rejected.")

	assert.Equal(t, IntentAppeal, res.Intent)
	assert.Equal(t, SubTypeSecondAppeal, res.SubType)
	assert.False(t, res.Ambiguous)
}

func TestClassify_FollowUp(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("I want to follow up on my pending application status; no response since months.")

	assert.Equal(t, IntentFollowUp, res.Intent)
	assert.Equal(t, SubTypeGeneral, res.SubType)
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestClassify_AmbiguousCapsConfidence(t *testing.T) {
	c := newTestClassifier()
	// One strong keyword each: both intents score identically.
	res := c.Classify("this text mentions rti complaint together")

	assert.Equal(t, IntentRTI, res.Intent) // earlier table wins the tie
	assert.True(t, res.Ambiguous)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)
	assert.Contains(t, res.DecisionPath, "ambiguous: rti vs complaint")
	assert.True(t, res.RequiresNLP)
}

func TestClassify_NoMatchesIsUnknown(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("hello there my friend how are you today")

	assert.Equal(t, IntentUnknown, res.Intent)
	assert.Equal(t, SubTypeGeneral, res.SubType)
	assert.Zero(t, res.Confidence)
	assert.Empty(t, res.Matches)
	assert.True(t, res.RequiresNLP)
	assert.Contains(t, res.DecisionPath, "score too low - marking as unknown")
}

func TestClassify_ScoresPopulatedForAllIntents(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("rti information request")

	require.Len(t, res.Scores, 5)
	assert.Greater(t, res.Scores[IntentRTI], res.Scores[IntentComplaint])
}

func TestSuggestions_RankedByScore(t *testing.T) {
	c := newTestClassifier()
	sugg := c.Suggestions("I need information and records under the rti act", 3)

	require.NotEmpty(t, sugg)
	assert.Equal(t, IntentRTI, sugg[0].Intent)
	assert.NotEmpty(t, sugg[0].Description)
	for i := 1; i < len(sugg); i++ {
		assert.LessOrEqual(t, sugg[i].Confidence, sugg[i-1].Confidence)
	}
}

func TestSuggestions_ManualFallback(t *testing.T) {
	c := newTestClassifier()
	sugg := c.Suggestions("completely unrelated text about weather", 3)

	require.NotEmpty(t, sugg)
	last := sugg[len(sugg)-1]
	assert.Equal(t, Intent("manual"), last.Intent)
	assert.Zero(t, last.Confidence)
}

func TestRequiredFields(t *testing.T) {
	rti := RequiredFields(IntentRTI)
	require.Len(t, rti, 6)
	assert.Equal(t, "authority", rti[3].Name)
	assert.True(t, rti[3].Required)

	unknown := RequiredFields(IntentUnknown)
	assert.Len(t, unknown, 3)
}

func TestIntent_Valid(t *testing.T) {
	assert.True(t, IntentRTI.Valid())
	assert.True(t, IntentEscalation.Valid())
	assert.False(t, IntentUnknown.Valid())
	assert.False(t, Intent("manual").Valid())
}

func TestWordBoundaryMatching(t *testing.T) {
	c := newTestClassifier()
	// "rti" inside another word must not match.
	res := c.Classify("the party started without further instruction")
	assert.Equal(t, IntentUnknown, res.Intent)
}

package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustToneFormal(t *testing.T) {
	got := AdjustTone("I want to get info abt the problem", ToneFormal)
	assert.Equal(t, "I wish to obtain information about the issue", got)
}

func TestAdjustToneAssertive(t *testing.T) {
	got := AdjustTone("I request action kindly", ToneAssertive)
	assert.Equal(t, "I demand action immediately", got)
}

func TestAdjustTonePreservesCapitalisation(t *testing.T) {
	got := AdjustTone("Plz help me", ToneFormal)
	assert.Equal(t, "Please assist me", got)
}

func TestAdjustToneUnknownToneOnlyExpandsAbbreviations(t *testing.T) {
	got := AdjustTone("approx 5 yrs of delay", "angry")
	assert.Equal(t, "approximately 5 years of delay", got)
}

func TestAdjustToneWordBoundaries(t *testing.T) {
	// "u" must not fire inside "house", "r" must not fire inside "roads".
	got := AdjustTone("our house is near the roads", ToneNeutral)
	assert.Equal(t, "our house is near the roads", got)
}

func TestAdjustToneEmptyText(t *testing.T) {
	assert.Equal(t, "", AdjustTone("", ToneFormal))
}

func TestSuggestTone(t *testing.T) {
	tests := []struct {
		issueType string
		urgency   string
		want      string
	}{
		{"water", "critical", ToneAssertive},
		{"corruption", "low", ToneAssertive},
		{"harassment", "medium", ToneAssertive},
		{"rti", "low", ToneFormal},
		{"information_request", "medium", ToneFormal},
		{"water", "medium", ToneNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestTone(tt.issueType, tt.urgency),
			"issue=%s urgency=%s", tt.issueType, tt.urgency)
	}
}

func TestPhrasesFor(t *testing.T) {
	assert.Equal(t, "With respectful regards", PhrasesFor(ToneFormal).Closing)
	assert.Equal(t, "I am writing to", PhrasesFor("unknown").Opening)
}

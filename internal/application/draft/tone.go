package draft

import (
	"regexp"
	"strings"
)

// Recognised tones.
const (
	ToneNeutral   = "neutral"
	ToneFormal    = "formal"
	ToneAssertive = "assertive"
)

type replacement struct {
	re   *regexp.Regexp
	with string
}

func compileReplacements(pairs [][2]string) []replacement {
	out := make([]replacement, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, replacement{
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p[0]) + `\b`),
			with: p[1],
		})
	}
	return out
}

// casualFixes expands chat-style abbreviations regardless of target tone.
// Word-boundary anchored so "u" never fires inside "house".
var casualFixes = compileReplacements([][2]string{
	{"plz", "please"},
	{"pls", "please"},
	{"thx", "thanks"},
	{"thnks", "thanks"},
	{"u", "you"},
	{"r", "are"},
	{"ur", "your"},
	{"bcoz", "because"},
	{"cuz", "because"},
	{"coz", "because"},
	{"fav", "favorable"},
	{"info", "information"},
	{"abt", "about"},
	{"msg", "message"},
	{"min", "minimum"},
	{"max", "maximum"},
	{"approx", "approximately"},
	{"yr", "year"},
	{"yrs", "years"},
	{"no.", "number"},
})

var toneReplacements = map[string][]replacement{
	ToneFormal: compileReplacements([][2]string{
		{"want", "wish"},
		{"need", "require"},
		{"ask", "request"},
		{"tell", "inform"},
		{"give", "provide"},
		{"get", "obtain"},
		{"help", "assist"},
		{"problem", "issue"},
		{"fix", "resolve"},
		{"bad", "unsatisfactory"},
		{"good", "satisfactory"},
	}),
	ToneAssertive: compileReplacements([][2]string{
		{"request", "demand"},
		{"wish", "insist"},
		{"hope", "expect"},
		{"kindly", "immediately"},
		{"at your convenience", "without delay"},
		{"if possible", "as required by law"},
	}),
}

// TonePhrases carries stock phrases matching a tone, for callers composing
// free-text sections around the template.
type TonePhrases struct {
	Opening string
	Request string
	Closing string
}

var tonePhrases = map[string]TonePhrases{
	ToneNeutral: {
		Opening: "I am writing to",
		Request: "I request you to kindly",
		Closing: "Thanking you",
	},
	ToneFormal: {
		Opening: "I hereby wish to bring to your kind attention",
		Request: "I humbly request your good office to",
		Closing: "With respectful regards",
	},
	ToneAssertive: {
		Opening: "I am compelled to bring to your notice",
		Request: "I demand immediate action regarding",
		Closing: "I expect prompt action failing which I shall be constrained to approach higher authorities",
	},
}

// AdjustTone expands casual abbreviations and applies tone-specific word
// substitutions.  Unknown tones only get the abbreviation pass.
func AdjustTone(text, tone string) string {
	if text == "" {
		return text
	}
	result := text
	for _, r := range casualFixes {
		result = applyReplacement(result, r)
	}
	if repls, ok := toneReplacements[tone]; ok {
		for _, r := range repls {
			result = applyReplacement(result, r)
		}
	}
	return result
}

// applyReplacement substitutes every match, capitalising the replacement when
// the matched word was not all lower case.
func applyReplacement(text string, r replacement) string {
	return r.re.ReplaceAllStringFunc(text, func(m string) string {
		if m == strings.ToLower(m) {
			return r.with
		}
		return capitalize(r.with)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PhrasesFor returns the stock phrases for tone, falling back to neutral.
func PhrasesFor(tone string) TonePhrases {
	if p, ok := tonePhrases[tone]; ok {
		return p
	}
	return tonePhrases[ToneNeutral]
}

// SuggestTone recommends a tone from the issue type and urgency of the
// underlying grievance.
func SuggestTone(issueType, urgency string) string {
	if urgency == "critical" {
		return ToneAssertive
	}
	switch issueType {
	case "corruption", "harassment", "misconduct":
		return ToneAssertive
	case "rti", "information_request":
		return ToneFormal
	}
	return ToneNeutral
}

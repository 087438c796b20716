// Package authority maps an issue category to the government authorities a
// document should be addressed to.  Resolution is fully deterministic: a
// curated registry plus fixed precedence rules, never a model guess.
package authority

// Level is the hierarchy tier of an authority.
type Level string

const (
	LevelLocal    Level = "local"    // block or ward
	LevelDistrict Level = "district" // district
	LevelState    Level = "state"    // state
	LevelCentral  Level = "central"  // central government
)

// Authority is a government office a document can be addressed to.
type Authority struct {
	Name            string `json:"name"`
	Designation     string `json:"designation"`
	Department      string `json:"department"`
	Level           Level  `json:"level"`
	AddressTemplate string `json:"address"`
	RTIFeeINR       int    `json:"rti_fee,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Match is one resolved authority with the reason it was chosen.
type Match struct {
	Authority  Authority `json:"authority"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"match_reason"`
	Primary    bool      `json:"is_primary"`
}

// Resolution is the complete outcome of resolving a category and location.
type Resolution struct {
	Matches                []Match  `json:"matches"`
	Primary                *Match   `json:"primary,omitempty"`
	Category               string   `json:"category"`
	Department             string   `json:"department"`
	Suggestions            []string `json:"suggestions"`
	RequiresStateSelection bool     `json:"requires_state_selection"`
}

// Request carries everything resolution needs.
type Request struct {
	Category string
	State    string
	District string
	Area     string

	// IsRTI selects the PIO path; otherwise complaint routing applies.
	IsRTI bool

	// Hints are extracted phrases used to detect escalations, e.g. "no
	// response" or "months".
	Hints []string
}

// StateInfo describes one supported state.
type StateInfo struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Capital string `json:"capital"`
}

package authority

import (
	"fmt"
	"strings"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// Role precedence for complaint routing.
var (
	localRoles    = []string{"je", "sho", "inspector", "tehsildar", "ae"}
	districtRoles = []string{"ee", "sp", "cmo", "rto", "sdo", "fso", "deo"}
)

var escalationHints = []string{"no response", "ignored", "months", "escalate", "higher"}

// Resolver maps categories and locations to authorities.
type Resolver struct {
	logger logging.Logger
}

// NewResolver builds a Resolver.
func NewResolver(logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Resolver{logger: logger.Named("authority")}
}

// Resolve picks the authorities for a request.  RTI requests always lead
// with the PIO; complaints start local, or at district level when the hints
// indicate an escalation.  A grievance forum and the District Collector pad
// the list as fallbacks.
func (r *Resolver) Resolve(req Request) Resolution {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	stateKey := normalizeState(req.State)

	roles := categoryRoles(category)
	if roles == nil {
		roles = categoryRoles("general")
	}

	r.logger.Info("resolving authority",
		logging.String("category", category),
		logging.String("state", stateKey),
		logging.Bool("is_rti", req.IsRTI))

	var matches []Match
	var suggestions []string

	if req.IsRTI {
		if a, ok := lookupRole(roles, "pio"); ok {
			matches = append(matches, Match{
				Authority:  r.materialize(a, req),
				Confidence: 0.95,
				Reason:     "PIO is the designated officer for RTI applications",
				Primary:    true,
			})
			suggestions = append(suggestions,
				"RTI applications should be addressed to the Public Information Officer (PIO)",
				fmt.Sprintf("RTI fee: Rs. %d/- via IPO/DD/Online", a.RTIFeeINR))
		}
	} else if r.isEscalation(req.Hints) {
		for _, role := range districtRoles {
			if a, ok := lookupRole(roles, role); ok {
				matches = append(matches, Match{
					Authority:  r.materialize(a, req),
					Confidence: 0.85,
					Reason:     "District-level authority for escalated complaints",
					Primary:    true,
				})
				break
			}
		}
		suggestions = append(suggestions, "For escalated complaints, consider mentioning previous complaint details")
	} else {
		for _, role := range localRoles {
			if a, ok := lookupRole(roles, role); ok {
				matches = append(matches, Match{
					Authority:  r.materialize(a, req),
					Confidence: 0.85,
					Reason:     "Local-level authority for new complaints",
					Primary:    true,
				})
				break
			}
		}
	}

	if a, ok := lookupRole(roles, "grievance"); ok && len(matches) < 3 {
		matches = append(matches, Match{
			Authority:  r.materialize(a, req),
			Confidence: 0.7,
			Reason:     "Grievance redressal forum as alternative",
		})
	}

	if category != "general" && len(matches) < 3 {
		if a, ok := lookupRole(categoryRoles("general"), "collector"); ok {
			matches = append(matches, Match{
				Authority:  r.materialize(a, req),
				Confidence: 0.6,
				Reason:     "District Collector as general authority",
			})
		}
	}

	var primary *Match
	for i := range matches {
		if matches[i].Primary {
			primary = &matches[i]
			break
		}
	}
	if primary == nil && len(matches) > 0 {
		primary = &matches[0]
	}

	_, stateKnown := lookupState(stateKey)
	if !stateKnown {
		suggestions = append(suggestions, "Please verify your state name for accurate authority details")
	}

	department := "General"
	if a, ok := lookupRole(roles, "pio"); ok {
		department = a.Department
	} else if a, ok := lookupRole(roles, "grievance"); ok {
		department = a.Department
	}

	return Resolution{
		Matches:                matches,
		Primary:                primary,
		Category:               category,
		Department:             department,
		Suggestions:            suggestions,
		RequiresStateSelection: !stateKnown,
	}
}

// Categories lists every category the registry routes directly.
func (r *Resolver) Categories() []string {
	out := make([]string, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.category)
	}
	return out
}

// States lists every supported state.
func (r *Resolver) States() []StateInfo {
	out := make([]StateInfo, 0, len(states))
	for _, s := range states {
		out = append(out, StateInfo{
			Name:    titleWords(strings.ReplaceAll(s.key, "_", " ")),
			Code:    s.code,
			Capital: s.capital,
		})
	}
	return out
}

// materialize fills an authority's address template with the request's
// location, keeping bracketed placeholders where details are missing.
func (r *Resolver) materialize(a Authority, req Request) Authority {
	a.AddressTemplate = formatAddress(a.AddressTemplate, req.State, req.District, req.Area)
	return a
}

func (r *Resolver) isEscalation(hints []string) bool {
	joined := strings.ToLower(strings.Join(hints, " "))
	for _, w := range escalationHints {
		if strings.Contains(joined, w) {
			return true
		}
	}
	return false
}

func normalizeState(state string) string {
	s := strings.ToLower(strings.TrimSpace(state))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

func formatAddress(template, state, district, area string) string {
	stateDisplay := titleWords(strings.ReplaceAll(state, "_", " "))
	out := strings.ReplaceAll(template, "{state}", stateDisplay)

	districtDisplay := "[District]"
	if district != "" {
		districtDisplay = titleWords(district)
	}
	out = strings.ReplaceAll(out, "{district}", districtDisplay)

	areaDisplay := "[Area/Locality]"
	if area != "" {
		areaDisplay = titleWords(area)
	}
	return strings.ReplaceAll(out, "{area}", areaDisplay)
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package legal

// markerEntry defines one grievance type: its trigger phrases, severity and
// recommended handling.  EscalateAfterDays of zero means escalate
// immediately.
type markerEntry struct {
	id                string
	triggers          []string
	severity          Severity
	action            string
	escalateAfterDays int
}

var grievanceMarkers = []markerEntry{
	{
		id: "service_delay",
		triggers: []string{
			"delay", "pending", "waiting", "no action", "months",
			"since long", "still waiting", "not processed", "no progress",
		},
		severity:          SeverityMedium,
		action:            "File grievance with timeline reference",
		escalateAfterDays: 30,
	},
	{
		id: "corruption",
		triggers: []string{
			"bribe", "corruption", "money demanded", "illegal payment",
			"extortion", "asked for money", "speed money", "under table",
			"commission", "gratification",
		},
		severity:          SeverityCritical,
		action:            "File anti-corruption complaint with vigilance department",
		escalateAfterDays: 0,
	},
	{
		id: "misconduct",
		triggers: []string{
			"rude behavior", "harassment", "misconduct", "misbehavior",
			"abuse", "threatening", "discrimination", "insulting",
			"unprofessional", "arrogant",
		},
		severity:          SeverityHigh,
		action:            "Report to department head with conduct complaint",
		escalateAfterDays: 7,
	},
	{
		id: "infrastructure",
		triggers: []string{
			"broken", "damaged", "not working", "poor condition",
			"dilapidated", "dangerous", "hazardous", "unsafe",
		},
		severity:          SeverityMedium,
		action:            "Report to maintenance/engineering department",
		escalateAfterDays: 15,
	},
	{
		id: "denial_of_service",
		triggers: []string{
			"refused", "denied", "rejected without reason", "not allowed",
			"prevented", "stopped", "barred",
		},
		severity:          SeverityHigh,
		action:            "Demand written reasons, file grievance",
		escalateAfterDays: 7,
	},
	{
		id: "negligence",
		triggers: []string{
			"negligence", "careless", "irresponsible", "ignored",
			"overlooked", "forgot", "lost my file", "misplaced",
		},
		severity:          SeverityMedium,
		action:            "File formal complaint with documentation",
		escalateAfterDays: 15,
	},
	{
		id: "fraud",
		triggers: []string{
			"fraud", "fake", "forged", "cheated", "scam",
			"duplicate", "false document", "identity theft",
		},
		severity:          SeverityCritical,
		action:            "File FIR and report to vigilance",
		escalateAfterDays: 0,
	},
	{
		id: "urgency_life_liberty",
		triggers: []string{
			"life threatening", "life at risk", "at risk", "emergency",
			"medical emergency", "dying", "death", "hospital",
			"urgent medical", "liberty", "illegal detention", "arrest",
		},
		severity:          SeverityCritical,
		action:            "Invoke Section 7(1) for 48-hour response",
		escalateAfterDays: 0,
	},
}

// serviceTimelines maps document types to their statutory response windows.
var serviceTimelines = map[string]Timeline{
	"rti_response":             {Days: 30, Reference: "RTI Act Section 7(1)"},
	"rti_life_liberty":         {Days: 2, Reference: "RTI Act Section 7(1) proviso"},
	"first_appeal":             {Days: 30, Reference: "RTI Act Section 19(1)"},
	"second_appeal":            {Days: 90, Reference: "RTI Act Section 19(3)"},
	"grievance_acknowledgment": {Days: 3, Reference: "CPGRAMS guidelines"},
	"grievance_resolution":     {Days: 60, Reference: "CPGRAMS guidelines"},
	"police_fir":               {Days: 0, Reference: "CrPC - Zero FIR"},
	"birth_certificate":        {Days: 21, Reference: "State Service Guarantee"},
	"death_certificate":        {Days: 7, Reference: "State Service Guarantee"},
	"caste_certificate":        {Days: 30, Reference: "State Service Guarantee"},
	"income_certificate":       {Days: 15, Reference: "State Service Guarantee"},
	"domicile_certificate":     {Days: 30, Reference: "State Service Guarantee"},
}

package classify

// keyword pairs a phrase with its contribution weight.  Tables are ordered
// slices so that match output is deterministic.
type keyword struct {
	phrase string
	weight float64
}

// Weight tiers: 0.3 strongly identifies the intent on its own, 0.2 is a
// supporting signal, 0.1 is weak vocabulary overlap.

var rtiKeywords = []keyword{
	{"right to information", 0.3},
	{"rti", 0.3},
	{"section 6", 0.3},
	{"rti act", 0.3},
	{"information act 2005", 0.3},

	{"public information officer", 0.2},
	{"pio", 0.2},
	{"information request", 0.2},
	{"certified copies", 0.2},
	{"official records", 0.2},
	{"public authority", 0.2},

	{"information", 0.1},
	{"records", 0.1},
	{"documents", 0.1},
	{"copies", 0.1},
	{"inspection", 0.1},
	{"disclosure", 0.1},
}

var complaintKeywords = []keyword{
	{"complaint", 0.3},
	{"grievance", 0.3},
	{"pgportal", 0.3},
	{"public grievance", 0.3},

	{"harassment", 0.2},
	{"corruption", 0.2},
	{"bribe", 0.2},
	{"negligence", 0.2},
	{"misconduct", 0.2},
	{"fraud", 0.2},
	{"delay in service", 0.2},
	{"power cut", 0.2},
	{"no response", 0.2},
	{"no supply", 0.2},

	{"problem", 0.1},
	{"issue", 0.1},
	{"not working", 0.1},
	{"broken", 0.1},
	{"damaged", 0.1},
	{"poor service", 0.1},
	{"unsatisfactory", 0.1},
}

var appealKeywords = []keyword{
	{"first appeal", 0.3},
	{"second appeal", 0.3},
	{"appeal under section 19", 0.3},
	{"appellate authority", 0.3},
	{"information commission", 0.3},

	{"appeal", 0.2},
	{"review", 0.2},
	{"reconsider", 0.2},
	{"rejected", 0.2},
	{"denial", 0.2},
	{"refusal", 0.2},

	{"not satisfied", 0.1},
	{"incomplete information", 0.1},
	{"wrong information", 0.1},
}

var followUpKeywords = []keyword{
	{"follow up", 0.3},
	{"follow-up", 0.3},
	{"status", 0.2},
	{"pending application", 0.2},
	{"application status", 0.2},
	{"reminder", 0.2},
	{"no response", 0.2},
	{"waiting", 0.1},
	{"since", 0.1},
	{"months", 0.1},
}

var escalationKeywords = []keyword{
	{"escalate", 0.3},
	{"escalation", 0.3},
	{"higher authority", 0.3},
	{"chief secretary", 0.2},
	{"minister", 0.2},
	{"commissioner", 0.2},
	{"no action taken", 0.2},
	{"ignored", 0.1},
	{"unanswered", 0.1},
}

// subTypeIndicators refine an intent into its document variant.  Order
// matters for RTI: inspection beats records beats information.
var subTypeIndicators = map[SubType][]string{
	SubTypeInformationRequest: {
		"seeking information", "want to know", "provide information",
		"what is", "how much", "list of", "details of",
	},
	SubTypeRecordsRequest: {
		"copies of", "certified copies", "attested copies",
		"documents related", "records of", "files",
	},
	SubTypeInspectionRequest: {
		"inspect", "inspection", "examine", "view", "access to files",
	},
	SubTypeCorruptionComplaint: {
		"bribe", "corruption", "illegal payment", "extortion",
		"demanded money", "asked for bribe",
	},
	SubTypeServiceComplaint: {
		"poor service", "bad service", "not working", "broken",
		"delay", "pending", "waiting",
	},
	SubTypeFirstAppeal: {
		"first appeal", "30 days", "appeal to", "appellate",
	},
	SubTypeSecondAppeal: {
		"second appeal", "information commission", "cic", "sic",
	},
}

package semantic

// TemplateGroup names a civic query type and its reference phrasings.
type TemplateGroup struct {
	Type      string
	Templates []string
}

// civicTemplateGroups are the reference phrasings used to classify a query
// by similarity when the rule engine is unsure.  Order fixes the tie-break.
var civicTemplateGroups = []TemplateGroup{
	{
		Type: "rti_information",
		Templates: []string{
			"request for information under RTI Act",
			"seeking records from public authority",
			"obtaining government documents",
			"public information disclosure",
		},
	},
	{
		Type: "rti_inspection",
		Templates: []string{
			"inspection of official records",
			"access to government files",
			"examine public documents",
			"view official papers",
		},
	},
	{
		Type: "complaint_service",
		Templates: []string{
			"complaint about poor service quality",
			"grievance regarding government department",
			"service delivery issue",
			"unsatisfactory public service",
		},
	},
	{
		Type: "complaint_corruption",
		Templates: []string{
			"complaint about corruption",
			"bribe demand by official",
			"illegal payment request",
			"extortion by government employee",
		},
	},
	{
		Type: "complaint_delay",
		Templates: []string{
			"complaint about delay in service",
			"pending application for months",
			"no action taken on request",
			"bureaucratic delay",
		},
	},
}

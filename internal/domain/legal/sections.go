package legal

// sectionEntry pairs an RTI Act provision with the phrases that invoke it.
// Entries without triggers are reference-only and never auto-detected.
type sectionEntry struct {
	id        string
	reference Reference
	triggers  []string
}

// rtiSections covers the provisions of the Right to Information Act, 2005
// that citizen documents commonly cite.
var rtiSections = []sectionEntry{
	{
		id: "section_2",
		reference: Reference{
			Section:      "Section 2",
			Title:        "Definitions",
			Description:  "Definitions of 'information', 'public authority', 'record', etc.",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 2",
		},
	},
	{
		id: "section_3",
		reference: Reference{
			Section:      "Section 3",
			Title:        "Right to Information",
			Description:  "All citizens have the right to information subject to provisions of this Act",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 3",
		},
		triggers: []string{"right to information", "citizen right", "fundamental right"},
	},
	{
		id: "section_4",
		reference: Reference{
			Section:      "Section 4",
			Title:        "Obligations of Public Authorities",
			Description:  "Suo motu disclosure obligations of public authorities",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 4",
		},
		triggers: []string{"suo motu", "proactive disclosure", "website", "public domain"},
	},
	{
		id: "section_6",
		reference: Reference{
			Section:      "Section 6",
			Title:        "Request for obtaining information",
			Description:  "Standard procedure for filing RTI application",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti", "information_request"},
			Citation:     "Right to Information Act, 2005 - Section 6(1)",
		},
		triggers: []string{"application", "request", "seeking information", "file rti"},
	},
	{
		id: "section_7",
		reference: Reference{
			Section:      "Section 7",
			Title:        "Disposal of request",
			Description:  "Timeline: 30 days (or 48 hours if life/liberty). Fees and transfer provisions.",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 7",
		},
		triggers: []string{"30 days", "time limit", "no response", "timeline", "48 hours", "life", "liberty"},
	},
	{
		id: "section_8",
		reference: Reference{
			Section:      "Section 8",
			Title:        "Exemption from disclosure",
			Description:  "10 categories of information exempt from disclosure",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti", "appeal"},
			Citation:     "Right to Information Act, 2005 - Section 8",
		},
		triggers: []string{
			"exemption", "cannot disclose", "refused", "secret", "confidential",
			"national security", "cabinet papers",
		},
	},
	{
		id: "section_9",
		reference: Reference{
			Section:      "Section 9",
			Title:        "Grounds for rejection",
			Description:  "Request may be rejected if it infringes copyright",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 9",
		},
	},
	{
		id: "section_10",
		reference: Reference{
			Section:      "Section 10",
			Title:        "Severability",
			Description:  "Partial disclosure: Access to non-exempt parts",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti", "appeal"},
			Citation:     "Right to Information Act, 2005 - Section 10",
		},
		triggers: []string{"partial", "severable", "redacted"},
	},
	{
		id: "section_11",
		reference: Reference{
			Section:      "Section 11",
			Title:        "Third party information",
			Description:  "Procedure when information relates to third party",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"rti"},
			Citation:     "Right to Information Act, 2005 - Section 11",
		},
		triggers: []string{"third party", "private company", "confidential business"},
	},
	{
		id: "section_19",
		reference: Reference{
			Section:      "Section 19",
			Title:        "Appeal",
			Description:  "First appeal within 30 days, Second appeal within 90 days",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"appeal", "first_appeal", "second_appeal"},
			Citation:     "Right to Information Act, 2005 - Section 19",
		},
		triggers: []string{"appeal", "first appeal", "second appeal", "appellate", "information commission"},
	},
	{
		id: "section_20",
		reference: Reference{
			Section:      "Section 20",
			Title:        "Penalties",
			Description:  "Penalty of Rs. 250/day up to Rs. 25,000 for PIO delays",
			Category:     CategoryRTIAct,
			ApplicableTo: []string{"appeal"},
			Citation:     "Right to Information Act, 2005 - Section 20",
		},
		triggers: []string{"penalty", "punishment", "rs 250", "compensation"},
	},
}

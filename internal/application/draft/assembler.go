// Package draft assembles citizen documents from pre-approved templates.
// Templates define the structure and legal wording; the assembler only fills
// placeholders from applicant and authority data.  No language is generated.
package draft

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

//go:embed templates/rti/*.txt templates/complaint/*.txt
var templateFS embed.FS

// templateFiles maps each document type to its embedded template.
var templateFiles = map[inference.DocumentType]string{
	inference.DocInformationRequest: "templates/rti/information_request.txt",
	inference.DocRecordsRequest:     "templates/rti/records_request.txt",
	inference.DocInspectionRequest:  "templates/rti/inspection_request.txt",
	inference.DocGrievance:          "templates/complaint/grievance.txt",
	inference.DocEscalation:         "templates/complaint/escalation.txt",
	inference.DocFollowUp:           "templates/complaint/follow_up.txt",
}

// defaultPlaceholders supplies fallback text for placeholders the caller did
// not provide.  A defaulted placeholder is reported in PlaceholdersMissing so
// the caller can prompt the user to supply the real value.
var defaultPlaceholders = map[string]string{
	"TIME_PERIOD":        "the relevant period",
	"PAYMENT_MODE":       "Indian Postal Order / Demand Draft / Online Payment",
	"PROBLEM_DURATION":   "a considerable period",
	"PREVIOUS_ATTEMPTS":  "my earlier attempts to resolve this matter",
	"IMPACT_DESCRIPTION": "This issue is causing significant inconvenience.",
	"AFFECTED_LOCATION":  "the concerned area",
	"START_DATE":         "some time ago",
}

var placeholderRe = regexp.MustCompile(`\{([A-Z_]+)\}`)

// ─────────────────────────────────────────────────────────────────────────────
// Input / output types
// ─────────────────────────────────────────────────────────────────────────────

// Input carries everything the assembler may substitute into a template.
// Only DocumentType, ApplicantName, ApplicantAddress, ApplicantState and
// IssueDescription are required; the rest default sensibly.
type Input struct {
	DocumentType inference.DocumentType

	ApplicantName    string
	ApplicantAddress string
	ApplicantState   string
	ApplicantPhone   string
	ApplicantEmail   string

	DepartmentName       string
	DepartmentAddress    string
	AuthorityDesignation string

	IssueDescription string
	SpecificRequest  string
	TimePeriod       string
	IssueCategory    string

	// AdditionalContext keys are upper-cased (spaces to underscores) and
	// substituted into any matching placeholder not already set.  The keys
	// "location", "impact", "start_date" and "previous_attempts" feed the
	// corresponding complaint placeholders.
	AdditionalContext map[string]string

	// Tone is "neutral", "formal" or "assertive"; non-neutral tones are
	// applied to the filled draft via AdjustTone.
	Tone string
}

// EditableSections points the caller at the user-supplied portions of the
// draft that are safe to revise without touching the legal wording.
type EditableSections struct {
	IssueDescription string `json:"issue_description"`
	SpecificRequest  string `json:"specific_request"`
	TimePeriod       string `json:"time_period"`
}

// Draft is a fully assembled document.
type Draft struct {
	Text                string            `json:"draft_text"`
	DocumentType        inference.DocumentType `json:"document_type"`
	TemplateUsed        string            `json:"template_used"`
	PlaceholdersFilled  map[string]string `json:"placeholders_filled"`
	PlaceholdersMissing []string          `json:"placeholders_missing"`
	WordCount           int               `json:"word_count"`
	EditableSections    EditableSections  `json:"editable_sections"`
	GeneratedAt         time.Time         `json:"generated_at"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Assembler
// ─────────────────────────────────────────────────────────────────────────────

// Assembler fills pre-approved templates.  Safe for concurrent use.
type Assembler struct {
	templates map[inference.DocumentType]string
	logger    logging.Logger
	now       func() time.Time
}

// NewAssembler loads all embedded templates.  A nil logger falls back to a
// no-op logger.
func NewAssembler(logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	templates := make(map[inference.DocumentType]string, len(templateFiles))
	for docType, path := range templateFiles {
		data, err := templateFS.ReadFile(path)
		if err != nil {
			// Embedded files are compiled in; a miss means the map and
			// the embed directive disagree.
			panic(fmt.Sprintf("draft: embedded template %s missing: %v", path, err))
		}
		templates[docType] = string(data)
	}
	return &Assembler{
		templates: templates,
		logger:    logger.Named("draft"),
		now:       time.Now,
	}
}

// Assemble fills the template for in.DocumentType and reports which
// placeholders were filled from input and which fell back to defaults or
// remain for the user.
func (a *Assembler) Assemble(in Input) (*Draft, error) {
	template, ok := a.templates[in.DocumentType]
	if !ok {
		return nil, errors.New(errors.CodeTemplateNotFound,
			fmt.Sprintf("no template for document type %q", in.DocumentType))
	}

	values := map[string]string{}
	a.applicantDetails(values, in)
	a.authorityDetails(values, in)
	values["DATE"] = a.now().Format("02 January 2006")
	values["PLACE"] = in.ApplicantState

	if isRTIDocument(in.DocumentType) {
		requested := in.SpecificRequest
		if requested == "" {
			requested = in.IssueDescription
		}
		values["INFORMATION_REQUESTED"] = requested
		values["TIME_PERIOD"] = in.TimePeriod
		values["PAYMENT_MODE"] = defaultPlaceholders["PAYMENT_MODE"]
	} else {
		values["GRIEVANCE_DESCRIPTION"] = in.IssueDescription
		category := in.IssueCategory
		if category == "" {
			category = "Public Service Issue"
		}
		values["ISSUE_CATEGORY"] = category
		values["AFFECTED_LOCATION"] = in.AdditionalContext["location"]
		values["PROBLEM_DURATION"] = in.TimePeriod
		values["IMPACT_DESCRIPTION"] = in.AdditionalContext["impact"]
		values["START_DATE"] = in.AdditionalContext["start_date"]
		values["PREVIOUS_ATTEMPTS"] = in.AdditionalContext["previous_attempts"]
	}

	for key, value := range in.AdditionalContext {
		name := strings.ToUpper(strings.ReplaceAll(key, " ", "_"))
		if _, exists := values[name]; !exists {
			values[name] = value
		}
	}

	text := template
	filled := map[string]string{}
	var missing []string
	seen := map[string]bool{}
	for _, match := range placeholderRe.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		token := "{" + name + "}"
		switch {
		case values[name] != "":
			text = strings.ReplaceAll(text, token, values[name])
			filled[name] = values[name]
		case defaultPlaceholders[name] != "":
			text = strings.ReplaceAll(text, token, defaultPlaceholders[name])
			missing = append(missing, name)
		case name == "APPLICANT_CONTACT":
			// Drop the whole line rather than leave a blank one.
			text = strings.ReplaceAll(text, token+"\n", "")
			text = strings.ReplaceAll(text, token, "")
		default:
			missing = append(missing, name)
		}
	}

	if in.Tone != "" && in.Tone != ToneNeutral {
		text = AdjustTone(text, in.Tone)
	}

	a.logger.Info("draft assembled",
		logging.String("document_type", string(in.DocumentType)),
		logging.Int("placeholders_filled", len(filled)),
		logging.Int("placeholders_missing", len(missing)),
	)

	return &Draft{
		Text:                text,
		DocumentType:        in.DocumentType,
		TemplateUsed:        templateFiles[in.DocumentType],
		PlaceholdersFilled:  filled,
		PlaceholdersMissing: missing,
		WordCount:           len(strings.Fields(text)),
		EditableSections: EditableSections{
			IssueDescription: in.IssueDescription,
			SpecificRequest:  in.SpecificRequest,
			TimePeriod:       in.TimePeriod,
		},
		GeneratedAt: a.now(),
	}, nil
}

// TemplatePreview returns the raw template text for display, or "" when the
// document type has no template.
func (a *Assembler) TemplatePreview(docType inference.DocumentType) string {
	return a.templates[docType]
}

// AvailableTemplates lists the document types the assembler can draft.
func (a *Assembler) AvailableTemplates() []inference.DocumentType {
	types := make([]inference.DocumentType, 0, len(a.templates))
	for _, docType := range []inference.DocumentType{
		inference.DocInformationRequest,
		inference.DocRecordsRequest,
		inference.DocInspectionRequest,
		inference.DocGrievance,
		inference.DocEscalation,
		inference.DocFollowUp,
	} {
		if _, ok := a.templates[docType]; ok {
			types = append(types, docType)
		}
	}
	return types
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func (a *Assembler) applicantDetails(values map[string]string, in Input) {
	var contact []string
	if in.ApplicantPhone != "" {
		contact = append(contact, "Phone: "+in.ApplicantPhone)
	}
	if in.ApplicantEmail != "" {
		contact = append(contact, "Email: "+in.ApplicantEmail)
	}

	address := in.ApplicantAddress
	state := in.ApplicantState
	if state != "" && !strings.Contains(strings.ToLower(address), strings.ToLower(state)) {
		if address != "" {
			address = address + ", " + state
		} else {
			address = state
		}
	}

	values["APPLICANT_NAME"] = in.ApplicantName
	values["APPLICANT_ADDRESS"] = address
	values["APPLICANT_CONTACT"] = strings.Join(contact, "\n")
}

func (a *Assembler) authorityDetails(values map[string]string, in Input) {
	name := in.DepartmentName
	if name == "" {
		name = "The Concerned Department"
	}
	address := in.DepartmentAddress
	if address == "" {
		address = "[Department Address]"
	}
	designation := in.AuthorityDesignation
	if designation == "" {
		designation = "The Concerned Authority"
	}
	values["DEPARTMENT_NAME"] = name
	values["DEPARTMENT_ADDRESS"] = address
	values["AUTHORITY_DESIGNATION"] = designation
}

func isRTIDocument(docType inference.DocumentType) bool {
	switch docType {
	case inference.DocInformationRequest, inference.DocRecordsRequest, inference.DocInspectionRequest:
		return true
	}
	return false
}

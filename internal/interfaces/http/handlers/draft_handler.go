package handlers

import (
	"net/http"

	"github.com/turtacn/CivicDraft/internal/application/draft"
	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/domain/classify"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// DraftHandler assembles documents from pre-approved templates.
type DraftHandler struct {
	asm     *draft.Assembler
	metrics *prometheus.AppMetrics
	maxBody int64
	logger  logging.Logger
}

func NewDraftHandler(asm *draft.Assembler, metrics *prometheus.AppMetrics, maxBody int64, logger logging.Logger) *DraftHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DraftHandler{asm: asm, metrics: metrics, maxBody: maxBody, logger: logger.Named("http.draft")}
}

type applicantPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type issuePayload struct {
	Description     string `json:"description"`
	SpecificRequest string `json:"specific_request"`
	TimePeriod      string `json:"time_period"`
	Category        string `json:"category"`
}

type authorityPayload struct {
	DepartmentName    string `json:"department_name"`
	DepartmentAddress string `json:"department_address"`
	Designation       string `json:"designation"`
}

type draftRequest struct {
	DocumentType      string            `json:"document_type"`
	Applicant         applicantPayload  `json:"applicant"`
	Issue             issuePayload      `json:"issue"`
	Authority         authorityPayload  `json:"authority"`
	AdditionalContext map[string]string `json:"additional_context"`
	Tone              string            `json:"tone"`
}

// Draft handles POST /api/v1/draft.
func (h *DraftHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := decodeJSON(r, h.maxBody, &req); err != nil {
		writeAppError(w, err)
		return
	}

	docType := inference.DocumentType(req.DocumentType)
	if !docType.Valid() {
		writeAppError(w, errors.New(errors.CodeDocumentTypeInvalid,
			"document_type must be one of information_request, records_request, inspection_request, grievance, escalation, follow_up"))
		return
	}
	if req.Applicant.Name == "" || req.Issue.Description == "" {
		writeAppError(w, errors.New(errors.CodeValidation,
			"applicant.name and issue.description are required"))
		return
	}

	d, err := h.asm.Assemble(draft.Input{
		DocumentType:         docType,
		ApplicantName:        req.Applicant.Name,
		ApplicantAddress:     req.Applicant.Address,
		ApplicantState:       req.Applicant.State,
		ApplicantPhone:       req.Applicant.Phone,
		ApplicantEmail:       req.Applicant.Email,
		DepartmentName:       req.Authority.DepartmentName,
		DepartmentAddress:    req.Authority.DepartmentAddress,
		AuthorityDesignation: req.Authority.Designation,
		IssueDescription:     req.Issue.Description,
		SpecificRequest:      req.Issue.SpecificRequest,
		TimePeriod:           req.Issue.TimePeriod,
		IssueCategory:        req.Issue.Category,
		AdditionalContext:    req.AdditionalContext,
		Tone:                 req.Tone,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	prometheus.RecordDraft(h.metrics, string(docType))
	writeJSON(w, http.StatusOK, d)
}

// Templates handles GET /api/v1/draft/templates, listing available types
// with the inputs a client must collect for each.
func (h *DraftHandler) Templates(w http.ResponseWriter, r *http.Request) {
	types := h.asm.AvailableTemplates()
	fields := make(map[string][]classify.Field, len(types))
	for _, docType := range types {
		fields[string(docType)] = classify.RequiredFields(intentForDocument(docType))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document_types":  types,
		"required_fields": fields,
	})
}

func intentForDocument(t inference.DocumentType) classify.Intent {
	switch t {
	case inference.DocInformationRequest, inference.DocRecordsRequest, inference.DocInspectionRequest:
		return classify.IntentRTI
	case inference.DocEscalation:
		return classify.IntentEscalation
	case inference.DocFollowUp:
		return classify.IntentFollowUp
	default:
		return classify.IntentComplaint
	}
}

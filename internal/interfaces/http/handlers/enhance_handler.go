package handlers

import (
	"net/http"

	"github.com/turtacn/CivicDraft/internal/application/enhance"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// EnhanceHandler polishes draft text.  Enhancement failures are not request
// failures: the response always carries usable text with a summary saying
// what happened.
type EnhanceHandler struct {
	svc     *enhance.Service
	maxBody int64
	logger  logging.Logger
}

func NewEnhanceHandler(svc *enhance.Service, maxBody int64, logger logging.Logger) *EnhanceHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &EnhanceHandler{svc: svc, maxBody: maxBody, logger: logger.Named("http.enhance")}
}

type enhanceRequest struct {
	Text     string `json:"text"`
	Tone     string `json:"tone"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// Enhance handles POST /api/v1/enhance.
func (h *EnhanceHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := decodeJSON(r, h.maxBody, &req); err != nil {
		writeAppError(w, err)
		return
	}
	if req.Text == "" {
		writeAppError(w, errors.New(errors.CodeValidation, "text is required"))
		return
	}

	mode := enhance.ModeFor(req.Language, req.Tone)
	result, err := h.svc.EnhanceDraft(r.Context(), req.Text, mode, enhance.Request{
		Tone:     req.Tone,
		Language: req.Language,
		Category: req.Category,
	})
	if err != nil {
		// The result still holds the original text; surface it with the
		// degradation reason rather than failing the request.
		h.logger.Warn("enhancement degraded", logging.Err(err))
	}

	writeJSON(w, http.StatusOK, result)
}

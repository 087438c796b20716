package handlers

import (
	"net/http"

	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// InferHandler runs the inference pipeline over submitted text.
type InferHandler struct {
	svc     *inference.Service
	maxBody int64
	logger  logging.Logger
}

func NewInferHandler(svc *inference.Service, maxBody int64, logger logging.Logger) *InferHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &InferHandler{svc: svc, maxBody: maxBody, logger: logger.Named("http.infer")}
}

type inferRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Infer handles POST /api/v1/infer.  The response never makes a final
// decision: it carries confidence scores and a confirmation flag for the UI.
func (h *InferHandler) Infer(w http.ResponseWriter, r *http.Request) {
	var req inferRequest
	if err := decodeJSON(r, h.maxBody, &req); err != nil {
		writeAppError(w, err)
		return
	}

	result, err := h.svc.Run(r.Context(), inference.Request{
		Text:     req.Text,
		Language: req.Language,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Audit handles GET /api/v1/infer/audit, returning recent gate decisions.
func (h *InferHandler) Audit(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.Audit().Recent(50)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

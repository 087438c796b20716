package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CivicDraft/internal/infrastructure/render"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// DownloadHandler renders drafts to downloadable files.  Documents are built
// in memory and streamed; nothing is stored server-side.
type DownloadHandler struct {
	exporter *render.Exporter
	metrics  *prometheus.AppMetrics
	maxBody  int64
	logger   logging.Logger
}

func NewDownloadHandler(exporter *render.Exporter, metrics *prometheus.AppMetrics, maxBody int64, logger logging.Logger) *DownloadHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DownloadHandler{exporter: exporter, metrics: metrics, maxBody: maxBody, logger: logger.Named("http.download")}
}

type downloadRequest struct {
	DraftText    string           `json:"draft_text"`
	DocumentType string           `json:"document_type"`
	Applicant    applicantPayload `json:"applicant"`
	Authority    authorityPayload `json:"authority"`
}

// Download handles POST /api/v1/download/{format}.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")

	var req downloadRequest
	if err := decodeJSON(r, h.maxBody, &req); err != nil {
		writeAppError(w, err)
		return
	}
	if req.DraftText == "" || req.DocumentType == "" {
		writeAppError(w, errors.New(errors.CodeValidation,
			"draft_text and document_type are required"))
		return
	}

	var applicantDetails []render.Field
	for _, f := range []render.Field{
		{Label: "Name", Value: req.Applicant.Name},
		{Label: "Address", Value: req.Applicant.Address},
		{Label: "State", Value: req.Applicant.State},
		{Label: "Phone", Value: req.Applicant.Phone},
		{Label: "Email", Value: req.Applicant.Email},
	} {
		if f.Value != "" {
			applicantDetails = append(applicantDetails, f)
		}
	}
	var authorityDetails []render.Field
	for _, f := range []render.Field{
		{Label: "Department", Value: req.Authority.DepartmentName},
		{Label: "Address", Value: req.Authority.DepartmentAddress},
		{Label: "Designation", Value: req.Authority.Designation},
	} {
		if f.Value != "" {
			authorityDetails = append(authorityDetails, f)
		}
	}

	out, err := h.exporter.Export(r.Context(), format, render.Request{
		DraftText:        req.DraftText,
		DocumentType:     req.DocumentType,
		ApplicantName:    req.Applicant.Name,
		ApplicantDetails: applicantDetails,
		AuthorityDetails: authorityDetails,
	})
	if err != nil {
		prometheus.RecordRender(h.metrics, format, false)
		writeAppError(w, err)
		return
	}
	prometheus.RecordRender(h.metrics, format, true)

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}

// Formats handles GET /api/v1/download/formats.
func (h *DownloadHandler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"formats": h.exporter.Formats(),
	})
}

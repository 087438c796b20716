package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/CivicDraft/internal/domain/authority"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// AuthorityHandler serves the authority directory.
type AuthorityHandler struct {
	resolver *authority.Resolver
	logger   logging.Logger
}

func NewAuthorityHandler(resolver *authority.Resolver, logger logging.Logger) *AuthorityHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AuthorityHandler{resolver: resolver, logger: logger.Named("http.authority")}
}

// List handles GET /api/v1/authorities, returning the known categories and
// states for UI pickers.
func (h *AuthorityHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.resolver.Categories(),
		"states":     h.resolver.States(),
	})
}

// Resolve handles GET /api/v1/authorities/{category}.  Query parameters:
// state, district, area, rti (truthy selects the RTI path), hints
// (comma-separated phrases from the user's raw text).
func (h *AuthorityHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var hints []string
	for _, hint := range strings.Split(q.Get("hints"), ",") {
		if hint = strings.TrimSpace(hint); hint != "" {
			hints = append(hints, hint)
		}
	}

	resolution := h.resolver.Resolve(authority.Request{
		Category: chi.URLParam(r, "category"),
		State:    q.Get("state"),
		District: q.Get("district"),
		Area:     q.Get("area"),
		IsRTI:    q.Get("rti") == "true" || q.Get("rti") == "1",
		Hints:    hints,
	})

	writeJSON(w, http.StatusOK, resolution)
}

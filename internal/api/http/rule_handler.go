package http

import (
	"encoding/json"
	"net/http"

	"libris-backend/internal/domain"
	"libris-backend/internal/service"
)

type RuleHandler struct {
	svc service.RuleService
}

func NewRuleHandler(svc service.RuleService) *RuleHandler {
	return &RuleHandler{svc: svc}
}

func (h *RuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.GetRule(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// Update replaces the whole rule document. The updated_on field in the body
// acts as the optimistic version; omitting it adopts the current one.
func (h *RuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, role, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var rule domain.FineRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := h.svc.UpdateRule(r.Context(), role, &rule)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

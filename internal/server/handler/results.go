package handler

import (
	"errors"
	"net/http"
	"strings"

	"menulens/internal/analysis"
	"menulens/internal/insight"
	"menulens/internal/store/result"
	"menulens/internal/util/jsonutil"
)

// HandleResult returns the persisted result for a finished run.
func (h *Handler) HandleResult(w http.ResponseWriter, r *http.Request) {
	runID := strings.TrimSpace(r.URL.Query().Get("run_id"))
	if runID == "" {
		writeError(w, http.StatusBadRequest, "run_id is required")
		return
	}
	raw, err := h.Store.Get(r.Context(), runID, "result.json")
	if errors.Is(err, result.ErrNotFound) {
		if h.Runs.Live(runID) {
			writeJSON(w, http.StatusOK, map[string]string{"run_id": runID, "status": "running"})
			return
		}
		writeError(w, http.StatusNotFound, "no result for run "+runID)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

type insightsRequest struct {
	RunID      string `json:"run_id"`
	Role       string `json:"role"`
	Restaurant string `json:"restaurant,omitempty"`
}

// HandleInsights generates role-specific insights over a stored result.
func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req insightsRequest
	if err := jsonDecode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	role := insight.Role(strings.ToLower(req.Role))
	if role != insight.RoleChef && role != insight.RoleManager {
		writeError(w, http.StatusBadRequest, "role must be chef or manager")
		return
	}
	raw, err := h.Store.Get(r.Context(), req.RunID, "result.json")
	if err != nil {
		writeError(w, http.StatusNotFound, "no result for run "+req.RunID)
		return
	}
	var res analysis.Result
	if err := jsonutil.UnmarshalFlex(raw, &res); err != nil {
		writeError(w, http.StatusInternalServerError, "stored result unreadable: "+err.Error())
		return
	}
	gen := &insight.Generator{LLM: h.LLM, Logger: h.Logger}
	out, err := gen.Generate(r.Context(), res, role, req.Restaurant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

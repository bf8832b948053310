package handler

import (
	"context"
	"net/http"

	"menulens/internal/analysis"
	"menulens/internal/review"
	"menulens/internal/util/jsonutil"
)

type analyzeRequest struct {
	Restaurant string   `json:"restaurant"`
	Reviews    []string `json:"reviews"`
	BatchSize  int      `json:"batch_size,omitempty"`
	MaxItems   int      `json:"max_items,omitempty"`
	MaxAspects int      `json:"max_aspects,omitempty"`
	Mode       string   `json:"mode,omitempty"` // unified (default), menu, aspects
	Async      bool     `json:"async,omitempty"`
}

type analyzeResponse struct {
	RunID  string           `json:"run_id"`
	Status string           `json:"status"`
	Result *analysis.Result `json:"result,omitempty"`
}

// HandleAnalyze runs one analysis. Synchronous by default; with "async" the
// run continues in the background and progress is observable over the watch
// websocket using the returned run_id.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req analyzeRequest
	if err := jsonDecode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Restaurant == "" {
		writeError(w, http.StatusBadRequest, "restaurant is required")
		return
	}

	mode, ok := parseMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "mode must be one of unified, menu, aspects")
		return
	}

	cleaned := review.Clean(req.Reviews)
	h.Index.Put(req.Restaurant, cleaned)

	runID := NewRunID()
	h.Runs.Begin(runID)

	az := &analysis.Analyzer{
		LLM:        h.LLM,
		Mode:       mode,
		BatchSize:  pick(req.BatchSize, h.Cfg.BatchSize),
		MaxItems:   pick(req.MaxItems, h.Cfg.MaxItems),
		MaxAspects: pick(req.MaxAspects, h.Cfg.MaxAspects),
		Logger:     h.Logger,
		OnBatch:    func(ev analysis.BatchEvent) { h.Runs.Publish(runID, ev) },
	}

	if req.Async {
		go h.runAndPersist(context.Background(), az, runID, req.Restaurant, cleaned)
		writeJSON(w, http.StatusAccepted, analyzeResponse{RunID: runID, Status: "running"})
		return
	}

	res := h.runAndPersist(r.Context(), az, runID, req.Restaurant, cleaned)
	writeJSON(w, http.StatusOK, analyzeResponse{RunID: runID, Status: "done", Result: &res})
}

func (h *Handler) runAndPersist(ctx context.Context, az *analysis.Analyzer, runID, restaurant string, reviews []string) analysis.Result {
	defer h.Runs.Finish(runID)
	res := az.Run(ctx, restaurant, reviews)
	if raw, err := jsonutil.MarshalNoEscape(res); err == nil {
		if err := h.Store.Put(ctx, runID, "result.json", raw); err != nil {
			h.Logger.Printf("analyze: persist %s failed: %v", runID, err)
		}
	}
	return res
}

func parseMode(s string) (analysis.Mode, bool) {
	switch s {
	case "", "unified":
		return analysis.ModeUnified, true
	case "menu":
		return analysis.ModeMenu, true
	case "aspects":
		return analysis.ModeAspects, true
	default:
		return 0, false
	}
}

func pick(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

package server

import (
	"net/http"

	"menulens/internal/server/handler"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/analyze", h.HandleAnalyze)
	mux.HandleFunc("/v1/analyze/watch", h.HandleWatch)
	mux.HandleFunc("/v1/results", h.HandleResult)
	mux.HandleFunc("/v1/insights", h.HandleInsights)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return CORS(mux)
}

package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"menulens/internal/config"
	"menulens/internal/llm"
	"menulens/internal/review"
	"menulens/internal/store/result"
)

// Handler bundles the dependencies shared by all HTTP endpoints.
type Handler struct {
	LLM    llm.Client
	Store  result.Store
	Index  *review.Index
	Runs   *RunRegistry
	Cfg    config.LLMConfig
	Logger *log.Logger
}

func New(cli llm.Client, store result.Store, index *review.Index, cfg config.LLMConfig) *Handler {
	return &Handler{
		LLM:    cli,
		Store:  store,
		Index:  index,
		Runs:   NewRunRegistry(),
		Cfg:    cfg,
		Logger: log.Default(),
	}
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

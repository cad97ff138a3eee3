package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/sync/semaphore"

	"cartoonlab/internal/cartoon"
	"cartoonlab/internal/gemini"
	"cartoonlab/internal/infra"
)

// ImageModel is the slice of the Gemini client the handlers need. Tests
// substitute a stub.
type ImageModel interface {
	Generate(ctx context.Context, parts []gemini.Part) (string, error)
}

// App carries the shared dependencies of all handlers.
type App struct {
	Config  *infra.Config
	Logger  infra.Logger
	Model   ImageModel
	History *cartoon.History

	// One in-flight request per action type. The UI disables its submit
	// button while a request is outstanding; these guards enforce the same
	// rule server-side without queueing anything.
	generateSem *semaphore.Weighted
	editSem     *semaphore.Weighted
}

// NewApp wires an App container.
func NewApp(cfg *infra.Config, logger infra.Logger, model ImageModel, history *cartoon.History) *App {
	return &App{
		Config:      cfg,
		Logger:      logger,
		Model:       model,
		History:     history,
		generateSem: semaphore.NewWeighted(1),
		editSem:     semaphore.NewWeighted(1),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

// upstreamError surfaces a failed API call with its message text, or a
// generic fallback when the failure carries none.
func (a *App) upstreamError(w http.ResponseWriter, err error) {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "image generation failed"
	}
	a.Logger.Error().Err(err).Msg("upstream call failed")
	a.error(w, http.StatusBadGateway, "upstream", msg)
}

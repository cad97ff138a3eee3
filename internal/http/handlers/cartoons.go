package handlers

import (
	"errors"
	"net/http"
	"time"

	"cartoonlab/internal/cartoon"
	"cartoonlab/internal/gemini"
)

type cartoonResponse struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// CartoonsGenerate handles the generation flow: validate the form, compose
// the prompt and part list, issue one API call, and record the result.
func (a *App) CartoonsGenerate(w http.ResponseWriter, r *http.Request) {
	if !a.generateSem.TryAcquire(1) {
		a.error(w, http.StatusConflict, "busy", "a cartoon generation is already in progress")
		return
	}
	defer a.generateSem.Release(1)

	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}

	req := cartoon.GenerateRequest{
		Description:   r.FormValue("description"),
		StyleCategory: cartoon.NormalizeStyleCategory(r.FormValue("style_category")),
		Signature:     r.FormValue("signature"),
		ColorMode:     cartoon.NormalizeColorMode(r.FormValue("color_mode")),
	}
	req.StyleName = cartoon.ResolveStyleName(req.StyleCategory, r.FormValue("style_name"))

	character, err := readUpload(r, "character")
	switch {
	case err == nil:
		req.Character = character
	case errors.Is(err, http.ErrMissingFile):
		// character image is optional
	default:
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	image, err := a.Model.Generate(r.Context(), req.Parts())
	if err != nil {
		if errors.Is(err, gemini.ErrNoImage) {
			a.error(w, http.StatusBadGateway, "no_image", "no image was generated")
			return
		}
		a.upstreamError(w, err)
		return
	}

	entry := a.History.Add(cartoon.EntryKindCartoon, cartoon.BuildPrompt(req), image)
	a.json(w, http.StatusOK, cartoonResponse{
		ID:        entry.ID,
		Prompt:    entry.Prompt,
		Image:     entry.Image,
		CreatedAt: entry.CreatedAt,
	})
}

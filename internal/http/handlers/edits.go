package handlers

import (
	"errors"
	"net/http"
	"time"

	"cartoonlab/internal/cartoon"
	"cartoonlab/internal/gemini"
)

type editResponse struct {
	ID          string    `json:"id"`
	Instruction string    `json:"instruction"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// EditsApply handles the edit flow: the uploaded image plus the raw user
// instruction, passed through unmodified.
func (a *App) EditsApply(w http.ResponseWriter, r *http.Request) {
	if !a.editSem.TryAcquire(1) {
		a.error(w, http.StatusConflict, "busy", "an image edit is already in progress")
		return
	}
	defer a.editSem.Release(1)

	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}

	req := cartoon.EditRequest{Instruction: r.FormValue("instruction")}

	source, err := readUpload(r, "image")
	switch {
	case err == nil:
		req.Image = *source
	case errors.Is(err, http.ErrMissingFile):
		a.error(w, http.StatusBadRequest, "bad_request", cartoon.ErrMissingImage.Error())
		return
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
			a.error(w, http.StatusBadGateway, "no_image", "no image was generated from the edit")
			return
		}
		a.upstreamError(w, err)
		return
	}

	entry := a.History.Add(cartoon.EntryKindEdit, req.Instruction, image)
	a.json(w, http.StatusOK, editResponse{
		ID:          entry.ID,
		Instruction: entry.Prompt,
		Image:       entry.Image,
		CreatedAt:   entry.CreatedAt,
	})
}

package handlers

import (
	"net/http"

	"cartoonlab/internal/cartoon"
)

// Styles serves the fixed catalog so the UI dropdowns stay server-driven.
func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string][]cartoon.StyleOption{
		"magazine":   cartoon.MagazineStyles(),
		"cartoonist": cartoon.CartoonistStyles(),
	})
}

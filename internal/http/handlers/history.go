package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"cartoonlab/pkg/zip"
)

func (a *App) HistoryList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": a.History.List()})
}

func (a *App) HistoryClear(w http.ResponseWriter, r *http.Request) {
	a.History.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// HistoryArchive streams every history image as a single zip download.
func (a *App) HistoryArchive(w http.ResponseWriter, r *http.Request) {
	entries := a.History.List()
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "history is empty")
		return
	}

	var assets []zip.Asset
	for _, entry := range entries {
		mime, data, ok := parseDataURL(entry.Image)
		if !ok {
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: fmt.Sprintf("%s-%s", entry.Kind, entry.ID),
			MIME:     mime,
			Data:     data,
		})
	}

	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=cartoonlab-history.zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// parseDataURL splits a data:{mime};base64,{payload} string back into its
// MIME type and raw bytes.
func parseDataURL(s string) (string, []byte, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, false
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return mime, data, true
}

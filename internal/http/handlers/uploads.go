package handlers

import (
	"fmt"
	"io"
	"net/http"

	"cartoonlab/internal/cartoon"
)

// readUpload reads a multipart file field fully into memory. A present but
// zero-byte file is an error rather than a silent empty payload.
func readUpload(r *http.Request, field string) (*cartoon.SourceImage, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s upload: %w", field, err)
	}
	if len(data) == 0 {
		return nil, cartoon.ErrEmptyImageData
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	return &cartoon.SourceImage{MIMEType: mime, Data: data}, nil
}

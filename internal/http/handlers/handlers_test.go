package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"

	"cartoonlab/internal/cartoon"
	"cartoonlab/internal/gemini"
	"cartoonlab/internal/infra"
)

type stubModel struct {
	calls  int
	parts  []gemini.Part
	result string
	err    error
}

func (s *stubModel) Generate(ctx context.Context, parts []gemini.Part) (string, error) {
	s.calls++
	s.parts = parts
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func newTestApp(model ImageModel) *App {
	cfg := &infra.Config{MaxUploadBytes: 10 << 20, HistoryLimit: 10}
	return NewApp(cfg, zerolog.Nop(), model, cartoon.NewHistory(10))
}

type formFile struct {
	field    string
	filename string
	mime     string
	data     []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.mime)
		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := pw.Write(f.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

package zip

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestArchiveAssetsAddsExtensions(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "cartoon-1", MIME: "image/png", Data: []byte{1, 2, 3}},
		{Filename: "edit-2", MIME: "image/jpeg", Data: []byte{4, 5}},
		{Filename: "odd-3", MIME: "application/x-thing", Data: []byte{6}},
	})

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	want := map[string]int{"cartoon-1.png": 3, "edit-2.jpg": 2, "odd-3.bin": 1}
	if len(zr.File) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(zr.File))
	}
	for _, f := range zr.File {
		size, ok := want[f.Name]
		if !ok {
			t.Fatalf("unexpected file %q", f.Name)
		}
		if int(f.UncompressedSize64) != size {
			t.Fatalf("file %q size mismatch: %d", f.Name, f.UncompressedSize64)
		}
	}
}

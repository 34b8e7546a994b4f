package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"mime/multipart"
	"os"
	"testing"

	"docuscan/internal/common"
	"docuscan/internal/config"
)

// buildFileHeader runs content through a real multipart round trip so the
// header behaves exactly like one from an incoming request.
func buildFileHeader(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(config.MaxMultipartMemory)
	if err != nil {
		t.Fatal(err)
	}
	header := form.File["file"][0]
	file, err := header.Open()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestSave(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("roundtrip keeps content and hashes it", func(t *testing.T) {
		content := []byte("Invoice Number: INV-1\nTotal: 10.00\n")
		file, header := buildFileHeader(t, "invoice.txt", content)

		saved, err := store.Save(file, header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.OriginalName != "invoice.txt" {
			t.Errorf("original name = %q", saved.OriginalName)
		}
		if saved.Size != int64(len(content)) {
			t.Errorf("size = %d, want %d", saved.Size, len(content))
		}

		onDisk, err := os.ReadFile(saved.Path)
		if err != nil {
			t.Fatalf("saved file unreadable: %v", err)
		}
		if !bytes.Equal(onDisk, content) {
			t.Error("saved content differs from upload")
		}

		sum := sha256.Sum256(content)
		if saved.SHA256 != hex.EncodeToString(sum[:]) {
			t.Errorf("sha256 = %s", saved.SHA256)
		}
	})

	t.Run("uppercase extension is accepted", func(t *testing.T) {
		file, header := buildFileHeader(t, "Report.PDF", []byte("%PDF-1.4 fake"))
		if _, err := store.Save(file, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("disallowed extension is a validation failure", func(t *testing.T) {
		file, header := buildFileHeader(t, "malware.exe", []byte("MZ"))
		_, err := store.Save(file, header)
		if err == nil {
			t.Fatal("expected an error")
		}
		if common.KindOf(err) != common.ValidationFailure {
			t.Errorf("error kind = %s, want VALIDATION_FAILURE", common.KindOf(err))
		}
	})

	t.Run("oversize upload is a validation failure", func(t *testing.T) {
		// Size check runs before any read, so a bare header is enough.
		header := &multipart.FileHeader{Filename: "huge.pdf", Size: config.MaxUploadSize + 1}
		_, err := store.Save(nil, header)
		if err == nil {
			t.Fatal("expected an error")
		}
		if common.KindOf(err) != common.ValidationFailure {
			t.Errorf("error kind = %s, want VALIDATION_FAILURE", common.KindOf(err))
		}
	})
}

func TestDelete(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	file, header := buildFileHeader(t, "gone.txt", []byte("x"))
	saved, err := store.Save(file, header)
	if err != nil {
		t.Fatal(err)
	}

	store.Delete(saved.Path)
	if _, err := os.Stat(saved.Path); !os.IsNotExist(err) {
		t.Error("file still exists after Delete")
	}

	// Deleting again must be a no-op, not a panic or raised error.
	store.Delete(saved.Path)
	store.Delete("")
}

func TestNormalizeExt(t *testing.T) {
	cases := map[string]string{
		".PDF":  "pdf",
		".jpeg": "jpeg",
		"png":   "png",
		"":      "",
	}
	for in, want := range cases {
		if got := NormalizeExt(in); got != want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}

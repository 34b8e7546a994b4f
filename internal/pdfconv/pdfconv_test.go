package pdfconv

import (
	"os"
	"path/filepath"
	"testing"

	"docuscan/internal/config"
)

func writeTemp(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0640); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsPDF(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	t.Run("header sniff", func(t *testing.T) {
		path := writeTemp(t, dir, "renamed.bin", []byte("%PDF-1.7 rest of file"))
		if !s.IsPDF(path) {
			t.Error("PDF header should be detected regardless of extension")
		}
	})

	t.Run("non-pdf content", func(t *testing.T) {
		path := writeTemp(t, dir, "notes.txt", []byte("just some text"))
		if s.IsPDF(path) {
			t.Error("plain text misdetected as PDF")
		}
	})

	t.Run("unreadable file falls back to extension", func(t *testing.T) {
		if !s.IsPDF(filepath.Join(dir, "missing.pdf")) {
			t.Error("expected extension fallback for unreadable .pdf")
		}
		if s.IsPDF(filepath.Join(dir, "missing.png")) {
			t.Error("unreadable non-pdf should not be a PDF")
		}
	})
}

func TestTextLayer(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	t.Run("plain text file", func(t *testing.T) {
		path := writeTemp(t, dir, "invoice.txt", []byte("Invoice Number: INV-1\nTotal: 10.00\n"))
		pages, ok := s.TextLayer(path)
		if !ok {
			t.Fatal("expected a text layer for a .txt file")
		}
		if len(pages) != 1 {
			t.Fatalf("pages = %d, want 1", len(pages))
		}
		if pages[0].Confidence != config.TextLayerConfidence {
			t.Errorf("confidence = %v", pages[0].Confidence)
		}
	})

	t.Run("blank text file has no layer", func(t *testing.T) {
		path := writeTemp(t, dir, "blank.txt", []byte("   \n\t\n"))
		if _, ok := s.TextLayer(path); ok {
			t.Error("whitespace-only file should fall through to OCR")
		}
	})

	t.Run("image has no layer", func(t *testing.T) {
		path := writeTemp(t, dir, "scan.png", []byte{0x89, 'P', 'N', 'G'})
		if _, ok := s.TextLayer(path); ok {
			t.Error("images never have a text layer")
		}
	})
}

package pdfconv

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"docuscan/internal/common"
	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

// Splitter converts PDFs into per-page images for OCR, and exposes the
// text-layer fast path for files that already contain text.
type Splitter struct {
	workDir string
	logger  *logz.Logger
}

func NewSplitter(workDir string) *Splitter {
	return &Splitter{
		workDir: workDir,
		logger:  logz.New("pdfconv"),
	}
}

// IsPDF sniffs the file header and falls back to the extension when the
// file cannot be read.
func (s *Splitter) IsPDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return strings.EqualFold(filepath.Ext(path), ".pdf")
	}
	defer f.Close()

	header := make([]byte, 5)
	n, _ := f.Read(header)
	return bytes.HasPrefix(header[:n], []byte("%PDF-"))
}

// ConvertToImages renders every page to PNG via pdftoppm. Zero pages out,
// or a failed command, is a ConversionFailure.
func (s *Splitter) ConvertToImages(ctx context.Context, path string) ([]string, error) {
	outPrefix := filepath.Join(s.workDir, "pages-"+uuid.New().String())

	cmd := exec.CommandContext(ctx, config.PdftoppmBin, "-png", "-r", config.PdftoppmDPI, path, outPrefix)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.Error("pdf.convert.failed", "pdf", path, "error", err, "stderr", stderr.String())
		return nil, common.NewConversionError("pdftoppm failed", err)
	}

	pages, err := filepath.Glob(outPrefix + "-*.png")
	if err != nil {
		return nil, common.NewConversionError("glob page images", err)
	}
	if len(pages) == 0 {
		return nil, common.NewConversionError("pdf produced no page images", nil)
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	s.logger.Debug("pdf.convert.ok", "pdf", path, "pages", len(pages))
	return pages, nil
}

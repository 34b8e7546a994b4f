package pdfconv

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"

	"docuscan/internal/config"
	"docuscan/internal/domain/document"
)

const pageExtractTimeout = 10 * time.Second

// TextLayer tries to read text straight out of the file without OCR:
// embedded PDF text, or the content of plain-text/word-processor formats.
// Returns false when the file has no usable text layer (e.g. a scanned
// PDF), in which case the caller falls back to page conversion + OCR.
func (s *Splitter) TextLayer(path string) ([]document.PageText, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.pdfTextLayer(path)
	case ".txt", ".docx", ".rtf", ".odt":
		return s.documentText(path)
	default:
		return nil, false
	}
}

func (s *Splitter) pdfTextLayer(path string) ([]document.PageText, bool) {
	f, err := pdf.Open(path)
	if err != nil {
		s.logger.Debug("pdf.textlayer.open_failed", "pdf", path, "error", err)
		return nil, false
	}

	var pages []document.PageText
	total := 0
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := guardedPlainText(page)
		if err != nil {
			s.logger.Warn("pdf.textlayer.page_failed", "pdf", path, "page", i, "error", err)
			continue
		}
		total += len(strings.TrimSpace(content))
		pages = append(pages, document.PageText{
			Text:       content,
			Confidence: config.TextLayerConfidence,
		})
	}

	// A scanned PDF parses fine but yields empty pages.
	if total == 0 {
		return nil, false
	}
	s.logger.Debug("pdf.textlayer.ok", "pdf", path, "pages", len(pages))
	return pages, true
}

func (s *Splitter) documentText(path string) ([]document.PageText, bool) {
	text, err := cat.File(path)
	if err != nil {
		s.logger.Debug("textlayer.cat_failed", "path", path, "error", err)
		return nil, false
	}
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	return []document.PageText{
		{Text: text, Confidence: config.TextLayerConfidence},
	}, true
}

// guardedPlainText runs the page extraction in a goroutine with a timeout;
// malformed content streams can hang the parser.
func guardedPlainText(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(pageExtractTimeout):
		return "", errors.New("page extraction timeout")
	}
}

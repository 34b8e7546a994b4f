package orchestrator

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"docuscan/internal/domain/document"
	"docuscan/internal/extraction"
	"docuscan/internal/metrics"
	"docuscan/internal/ocr"
	"docuscan/pkg/logz"
)

// PageSplitter is the PDF collaborator surface the orchestrator needs.
type PageSplitter interface {
	IsPDF(path string) bool
	ConvertToImages(ctx context.Context, path string) ([]string, error)
	TextLayer(path string) ([]document.PageText, bool)
}

// Cleaner removes temporary page images; best-effort.
type Cleaner interface {
	DeleteAll(paths []string)
}

// Outcome is one file's final extraction: the typed schema plus the
// combined confidence. Confidence here is min(avg OCR confidence,
// detection confidence) - deliberately not the extractor's own fixed
// constant.
type Outcome struct {
	DocumentType        document.Type
	Confidence          float64
	Schema              document.Schema
	RawText             string
	OCRConfidence       float64
	DetectionConfidence float64
	Pages               int
}

type Service struct {
	Provider ocr.Provider
	Splitter PageSplitter
	Cleaner  Cleaner
	Logger   *logz.Logger
}

func New(provider ocr.Provider, splitter PageSplitter, cleaner Cleaner) *Service {
	return &Service{
		Provider: provider,
		Splitter: splitter,
		Cleaner:  cleaner,
		Logger:   logz.New("orchestrator"),
	}
}

// ProcessFile runs the whole pipeline for one stored upload: page text
// acquisition (text layer or OCR), then classification and extraction.
// Collaborator failures propagate unchanged; no retries, no partial
// recovery. Page images are always cleaned up.
func (s *Service) ProcessFile(ctx context.Context, path string, hint document.Type) (Outcome, error) {
	start := time.Now()

	pages, err := s.collectPages(ctx, path)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Combine(pages, hint)

	s.Logger.Info("extract.ok",
		"file", filepath.Base(path),
		"pages", outcome.Pages,
		"document_type", outcome.DocumentType,
		"confidence", outcome.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	metrics.ObserveExtraction(string(outcome.DocumentType), time.Since(start))
	return outcome, nil
}

func (s *Service) collectPages(ctx context.Context, path string) ([]document.PageText, error) {
	if pages, ok := s.Splitter.TextLayer(path); ok {
		s.Logger.Debug("extract.text_layer", "file", filepath.Base(path), "pages", len(pages))
		return pages, nil
	}

	if s.Splitter.IsPDF(path) {
		images, err := s.Splitter.ConvertToImages(ctx, path)
		if err != nil {
			return nil, err
		}
		defer s.Cleaner.DeleteAll(images)
		return s.recognizeAll(ctx, images)
	}

	return s.recognizeAll(ctx, []string{path})
}

// recognizeAll fans the OCR calls out, one goroutine per page, and joins
// all-or-nothing: the first error fails the whole batch, since joining the
// document text requires every page.
func (s *Service) recognizeAll(ctx context.Context, images []string) ([]document.PageText, error) {
	pages := make([]document.PageText, len(images))
	errs := make([]error, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(i int, img string) {
			defer wg.Done()
			start := time.Now()
			res, err := s.Provider.ProcessImage(ctx, img)
			metrics.ObserveProviderLatency(s.Provider.Name(), time.Since(start))
			if err != nil {
				errs[i] = err
				return
			}
			pages[i] = document.PageText{Text: res.Text, Confidence: res.Confidence}
		}(i, img)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pages, nil
}

// Combine is the pure tail of the pipeline: join page texts, average OCR
// confidence, classify (unless hinted), extract, and take the minimum of
// OCR and detection confidence as the final score.
func Combine(pages []document.PageText, hint document.Type) Outcome {
	texts := make([]string, 0, len(pages))
	sum := 0.0
	for _, p := range pages {
		texts = append(texts, p.Text)
		sum += p.Confidence
	}
	fullText := strings.Join(texts, "\n\n")

	avgConfidence := 0.0
	if len(pages) > 0 {
		avgConfidence = sum / float64(len(pages))
	}

	docType := hint
	detectionConfidence := 1.0
	if hint == "" || hint == document.Unknown {
		detection := extraction.Detect(fullText)
		docType = detection.DocumentType
		detectionConfidence = detection.Confidence
	}

	result := extraction.ExtractSchema(fullText, docType)

	confidence := avgConfidence
	if detectionConfidence < confidence {
		confidence = detectionConfidence
	}

	return Outcome{
		DocumentType:        result.DocumentType,
		Confidence:          confidence,
		Schema:              result.Schema,
		RawText:             fullText,
		OCRConfidence:       avgConfidence,
		DetectionConfidence: detectionConfidence,
		Pages:               len(pages),
	}
}

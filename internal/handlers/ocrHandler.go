package handlers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"

	"docuscan/internal/adapter"
	"docuscan/internal/api"
	"docuscan/internal/config"
	"docuscan/internal/data/store"
	"docuscan/internal/domain/document"
	"docuscan/internal/metrics"
	"docuscan/internal/ocr"
	"docuscan/internal/orchestrator"
	"docuscan/internal/storage"
	"docuscan/pkg/logz"
)

var logOH *logz.Logger

// Extractor is the orchestrator surface the handlers depend on; narrowed
// so tests can stub the whole pipeline.
type Extractor interface {
	ProcessFile(ctx context.Context, path string, hint document.Type) (orchestrator.Outcome, error)
}

var (
	initOnce    sync.Once
	extractor   Extractor
	provider    ocr.Provider
	files       *storage.Store
	resultCache store.ResultCache
)

func Init(e Extractor, p ocr.Provider, s *storage.Store, cache store.ResultCache) {
	initOnce.Do(func() {
		logOH = logz.New("handlers")
		extractor = e
		provider = p
		files = s
		resultCache = cache
	})
}

func parseHint(r *http.Request) (document.Type, bool) {
	raw := r.URL.Query().Get("documentType")
	if raw == "" {
		return "", true
	}
	hint, ok := document.ParseType(raw)
	if !ok {
		return "", false
	}
	return hint, true
}

// extractOne saves, caches, and processes a single uploaded file. The
// cache key is the content hash plus the hint, so a hinted request never
// reuses an unhinted result.
func extractOne(ctx context.Context, fileHeader *multipart.FileHeader, hint document.Type) (api.ExtractionResponse, bool, error) {
	start := time.Now()

	reader, err := fileHeader.Open()
	if err != nil {
		return api.ExtractionResponse{}, false, err
	}
	defer reader.Close()

	saved, err := files.Save(reader, fileHeader)
	if err != nil {
		return api.ExtractionResponse{}, false, err
	}
	defer files.Delete(saved.Path)

	cacheKey := saved.SHA256 + ":" + string(hint)
	if resultCache != nil && config.CacheEnabled() {
		if raw, ok := resultCache.Get(ctx, cacheKey); ok {
			metrics.CountCacheLookup(true)
			var cached api.ExtractionResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				cached.Filename = fileHeader.Filename
				return cached, true, nil
			}
			logOH.Warn("discarding undecodable cache entry", "key", cacheKey)
		}
		metrics.CountCacheLookup(false)
	}

	outcome, err := extractor.ProcessFile(ctx, saved.Path, hint)
	if err != nil {
		metrics.CountDocument(string(document.Unknown), "error")
		return api.ExtractionResponse{}, false, err
	}
	metrics.CountDocument(string(outcome.DocumentType), "success")

	resp := adapter.ToExtractionResponse(fileHeader.Filename, outcome, time.Since(start))

	if resultCache != nil && config.CacheEnabled() {
		if raw, err := json.Marshal(resp); err == nil {
			resultCache.Set(ctx, cacheKey, raw)
		}
	}
	return resp, false, nil
}

// ExtractHandler godoc
// @Summary      Extract structured data from one document
// @Description  Accepts a file via multipart/form-data, runs OCR, classifies the document, and returns the extracted schema.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true   "The document to process (pdf, image, or text format)"
// @Param        documentType  query     string  false  "Skip detection and extract as this type"  Enums(INVOICE, RECEIPT, FORM, TABLE)
// @Success      200  {object}  api.ExtractionResponse
// @Failure      400  {object}  api.ErrorResponse  "Unsupported type, oversize file, or bad hint"
// @Failure      500  {object}  api.ErrorResponse  "OCR provider or conversion failure"
// @Router       /ocr/extract [post]
func ExtractHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.MaxMultipartMemory); err != nil {
		WriteErrorResponse(w, r, http.StatusBadRequest, "File too large or bad request")
		return
	}

	hint, ok := parseHint(r)
	if !ok {
		WriteErrorResponse(w, r, http.StatusBadRequest, "unknown documentType hint: "+r.URL.Query().Get("documentType"))
		return
	}

	fileHeaders := r.MultipartForm.File["file"]
	if len(fileHeaders) == 0 {
		WriteErrorResponse(w, r, http.StatusBadRequest, "file field is required")
		return
	}
	fileHeader := fileHeaders[0]

	ctx, cancel := context.WithTimeout(r.Context(), config.ExtractTimeout)
	defer cancel()

	resp, fromCache, err := extractOne(ctx, fileHeader, hint)
	if err != nil {
		logOH.Warn("extract failed", "file", fileHeader.Filename, "error", err)
		writeAppError(w, r, err)
		return
	}
	if fromCache {
		w.Header().Set("X-Cache", "HIT")
	}
	writeJsonResponse(w, http.StatusOK, resp)
}

// BatchExtractHandler godoc
// @Summary      Extract structured data from up to 10 documents
// @Description  Processes each file independently; one bad file fails only its own slot in the response.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        files         formData  file    true   "The documents to process"
// @Param        documentType  query     string  false  "Skip detection and extract every file as this type"  Enums(INVOICE, RECEIPT, FORM, TABLE)
// @Success      200  {object}  api.BatchResponse
// @Failure      400  {object}  api.ErrorResponse  "No files, too many files, or bad hint"
// @Router       /ocr/extract/batch [post]
func BatchExtractHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.MaxMultipartMemory); err != nil {
		WriteErrorResponse(w, r, http.StatusBadRequest, "File too large or bad request")
		return
	}

	hint, ok := parseHint(r)
	if !ok {
		WriteErrorResponse(w, r, http.StatusBadRequest, "unknown documentType hint: "+r.URL.Query().Get("documentType"))
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		WriteErrorResponse(w, r, http.StatusBadRequest, "files field is required")
		return
	}
	if len(fileHeaders) > config.MaxBatchFiles {
		WriteErrorResponse(w, r, http.StatusBadRequest, "too many files in one batch")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.ExtractTimeout)
	defer cancel()

	results := make([]api.BatchFileResult, len(fileHeaders))
	var wg sync.WaitGroup
	for i, fh := range fileHeaders {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			resp, _, err := extractOne(ctx, fh, hint)
			if err != nil {
				logOH.Warn("batch file failed", "file", fh.Filename, "error", err)
				results[i] = api.BatchFileResult{Filename: fh.Filename, Error: err.Error()}
				return
			}
			results[i] = api.BatchFileResult{Filename: fh.Filename, Success: true, Result: &resp}
		}(i, fh)
	}
	wg.Wait()

	writeJsonResponse(w, http.StatusOK, adapter.ToBatchResponse(results))
}

// HealthHandler godoc
// @Summary      Service health
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /ocr/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	available := provider.IsAvailable()
	status := "ok"
	if !available {
		status = "degraded"
	}
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:    status,
		Provider:  provider.Name(),
		Available: available,
	})
}

// SupportedFormatsHandler godoc
// @Summary      List accepted upload extensions
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  api.SupportedFormatsResponse
// @Router       /ocr/supported-formats [get]
func SupportedFormatsHandler(w http.ResponseWriter, r *http.Request) {
	formats := make([]string, 0, len(storage.AllowedExtensions))
	for ext := range storage.AllowedExtensions {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	writeJsonResponse(w, http.StatusOK, api.SupportedFormatsResponse{Formats: formats})
}

package adapter

import (
	"time"

	"docuscan/internal/api"
	"docuscan/internal/common"
	"docuscan/internal/orchestrator"
)

func ToExtractionResponse(filename string, outcome orchestrator.Outcome, elapsed time.Duration) api.ExtractionResponse {
	return api.ExtractionResponse{
		Success:             true,
		Filename:            filename,
		DocumentType:        string(outcome.DocumentType),
		Confidence:          outcome.Confidence,
		OCRConfidence:       outcome.OCRConfidence,
		DetectionConfidence: outcome.DetectionConfidence,
		Pages:               outcome.Pages,
		Schema:              outcome.Schema,
		RawText:             outcome.RawText,
		ProcessingTimeMs:    elapsed.Milliseconds(),
	}
}

func ToErrorResponse(err error, path string, requestID string) (api.ErrorResponse, int) {
	kind := common.KindOf(err)
	status := common.HTTPStatus(kind)
	return api.ErrorResponse{
		StatusCode: status,
		Error:      string(kind),
		Message:    err.Error(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       path,
		RequestID:  requestID,
	}, status
}

func ToBatchResponse(results []api.BatchFileResult) api.BatchResponse {
	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}
	return api.BatchResponse{
		TotalProcessed: len(results),
		Successful:     successful,
		Failed:         len(results) - successful,
		Results:        results,
	}
}

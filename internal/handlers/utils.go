package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"docuscan/internal/adapter"
	"docuscan/internal/api"
	"docuscan/internal/common"
	"docuscan/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logOH.Error("Error encoding response: %v", err)
	}
}

func requestIDFrom(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id, ok := r.Context().Value(config.REQUEST_ID_KEY).(string); ok {
		return id
	}
	return ""
}

// WriteErrorResponse writes the envelope for boundary failures that never
// became an AppError (multipart errors, rate limiting, missing fields).
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, httpCode int, message string) {
	path := ""
	if r != nil {
		path = r.URL.Path
	}
	writeJsonResponse(w, httpCode, api.ErrorResponse{
		StatusCode: httpCode,
		Error:      errorLabel(httpCode),
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       path,
		RequestID:  requestIDFrom(r),
	})
}

func errorLabel(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return string(common.ValidationFailure)
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		return string(common.ProviderFailure)
	}
}

func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := adapter.ToErrorResponse(err, r.URL.Path, requestIDFrom(r))
	writeJsonResponse(w, status, resp)
}

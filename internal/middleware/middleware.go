package middleware

import (
	"net/http"
	"strconv"

	"docuscan/internal/handlers"
	"docuscan/internal/metrics"
	"docuscan/pkg/logz"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logz.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var ExtractHandler = Wrap(handlers.ExtractHandler)
var BatchExtractHandler = Wrap(handlers.BatchExtractHandler)
var HealthHandler = Wrap(handlers.HealthHandler)
var SupportedFormatsHandler = Wrap(handlers.SupportedFormatsHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logz.New("middleware")
	re = injectRequestID(re)
	re = rateLimiter(re)
	return re
}

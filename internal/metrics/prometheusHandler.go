package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var extractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "extraction_duration_seconds",
	Help:    "End-to-end extraction time per file, labelled by detected document type.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"document_type"})

var providerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ocr_provider_latency_seconds",
	Help:    "Latency of single-page OCR provider calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"provider"})

var documentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_processed_total",
	Help: "Processed files by document type and outcome.",
}, []string{"document_type", "outcome"})

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "result_cache_lookups_total",
	Help: "Result cache lookups by outcome (hit/miss).",
}, []string{"outcome"})

// HttpStatusRecorder captures the status code a handler writes so the
// request counter can be labelled with it.
type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func ObserveExtraction(documentType string, elapsed time.Duration) {
	extractionDuration.WithLabelValues(documentType).Observe(elapsed.Seconds())
}

func ObserveProviderLatency(provider string, elapsed time.Duration) {
	providerLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func CountDocument(documentType string, outcome string) {
	documentsProcessed.WithLabelValues(documentType, outcome).Inc()
}

func CountCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
}

package api

// ExtractionResponse is the successful result for one file. Schema is
// deliberately untyped here: its shape varies by document type, and cached
// responses decode back through this struct.
type ExtractionResponse struct {
	Success             bool        `json:"success" example:"true"`
	Filename            string      `json:"filename" example:"invoice-march.pdf"`
	DocumentType        string      `json:"documentType" example:"INVOICE"`
	Confidence          float64     `json:"confidence" example:"0.85"`
	OCRConfidence       float64     `json:"ocrConfidence" example:"0.92"`
	DetectionConfidence float64     `json:"detectionConfidence" example:"0.85"`
	Pages               int         `json:"pages" example:"2"`
	Schema              interface{} `json:"schema"`
	RawText             string      `json:"rawText,omitempty"`
	ProcessingTimeMs    int64       `json:"processingTimeMs" example:"1830"`
}

// BatchFileResult holds one file's outcome inside a batch; failed files
// carry an error string instead of a result.
type BatchFileResult struct {
	Filename string              `json:"filename"`
	Success  bool                `json:"success"`
	Result   *ExtractionResponse `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type BatchResponse struct {
	TotalProcessed int               `json:"totalProcessed" example:"3"`
	Successful     int               `json:"successful" example:"2"`
	Failed         int               `json:"failed" example:"1"`
	Results        []BatchFileResult `json:"results"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Error      string `json:"error" example:"VALIDATION_FAILURE"`
	Message    string `json:"message" example:"file type \"exe\" is not supported"`
	Timestamp  string `json:"timestamp" example:"2026-08-24T10:30:00Z"`
	Path       string `json:"path" example:"/ocr/extract"`
	RequestID  string `json:"requestId,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Provider  string `json:"provider" example:"local"`
	Available bool   `json:"providerAvailable" example:"true"`
}

type SupportedFormatsResponse struct {
	Formats []string `json:"formats"`
}

package document

import "strings"

// Type is the closed set of document classifications.
type Type string

const (
	Invoice Type = "INVOICE"
	Receipt Type = "RECEIPT"
	Form    Type = "FORM"
	Table   Type = "TABLE"
	Unknown Type = "UNKNOWN"
)

// ParseType resolves a user-supplied type hint. The empty string is not a
// valid hint; callers treat it as "no hint".
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case Invoice:
		return Invoice, true
	case Receipt:
		return Receipt, true
	case Form:
		return Form, true
	case Table:
		return Table, true
	case Unknown:
		return Unknown, true
	}
	return Unknown, false
}

// DetectionResult is produced by the detector and consumed immediately by
// the orchestrator. Not persisted.
type DetectionResult struct {
	DocumentType Type    `json:"documentType"`
	Confidence   float64 `json:"confidence"`
	RawText      string  `json:"rawText"`
}

// ExtractionResult carries the typed schema for one document. Confidence is
// the extractor's fixed per-type constant, not a measure of how many fields
// were actually found.
type ExtractionResult struct {
	DocumentType Type    `json:"documentType"`
	Confidence   float64 `json:"confidence"`
	Schema       Schema  `json:"schema"`
	RawText      string  `json:"rawText"`
}

// PageText is the OCR output for a single page.
type PageText struct {
	Text       string
	Confidence float64
}

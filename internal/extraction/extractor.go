package extraction

import (
	"docuscan/internal/domain/document"
)

const (
	// typedConfidence is fixed per recognized type regardless of how many
	// fields were actually found. Callers should not over-trust it.
	typedConfidence    = 0.7
	fallbackConfidence = 0.3
)

// ExtractSchema runs the extraction routine for the resolved document type.
// UNKNOWN (or anything unrecognized) falls back to a raw-text schema. A
// pattern finding nothing is not an error: absent fields are omitted or
// defaulted, never raised.
func ExtractSchema(text string, docType document.Type) document.ExtractionResult {
	var schema document.Schema
	confidence := typedConfidence

	switch docType {
	case document.Invoice:
		schema = extractInvoice(text)
	case document.Receipt:
		schema = extractReceipt(text)
	case document.Form:
		schema = extractForm(text)
	case document.Table:
		schema = extractTable(text)
	default:
		schema = document.RawTextSchema{RawText: text}
		confidence = fallbackConfidence
	}

	return document.ExtractionResult{
		DocumentType: docType,
		Confidence:   confidence,
		Schema:       schema,
		RawText:      text,
	}
}

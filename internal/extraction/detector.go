package extraction

import (
	"strings"

	"docuscan/internal/domain/document"
)

const (
	unknownConfidence = 0.3
	baseConfidence    = 0.5
	confidencePerHit  = 0.1
	maxConfidence     = 0.95

	// tableStructureBonus is added to the table score when the text has a
	// column structure (a delimiter count shared by most lines).
	tableStructureBonus = 3
)

// delimiter candidates for the table-structure heuristic, and for cell
// splitting in the table extractor. Order is the selection priority.
var delimiters = []string{"|", "\t", ",", ";"}

// Detect classifies raw OCR text into one of the document types with a
// heuristic confidence. It never fails; text that matches nothing comes
// back as UNKNOWN with low confidence.
func Detect(text string) document.DetectionResult {
	invoiceScore := CountMatches(text, invoicePatterns)
	receiptScore := CountMatches(text, receiptPatterns)
	formScore := CountMatches(text, formPatterns)
	tableScore := CountMatches(text, tablePatterns)
	if hasConsistentDelimiter(text) {
		tableScore += tableStructureBonus
	}

	// Ties resolve by precedence: invoice > receipt > table > form.
	ranked := []struct {
		docType document.Type
		score   int
	}{
		{document.Invoice, invoiceScore},
		{document.Receipt, receiptScore},
		{document.Table, tableScore},
		{document.Form, formScore},
	}

	maxScore := 0
	for _, r := range ranked {
		if r.score > maxScore {
			maxScore = r.score
		}
	}

	if maxScore == 0 {
		return document.DetectionResult{
			DocumentType: document.Unknown,
			Confidence:   unknownConfidence,
			RawText:      text,
		}
	}

	best := document.Unknown
	for _, r := range ranked {
		if r.score == maxScore {
			best = r.docType
			break
		}
	}

	confidence := baseConfidence + confidencePerHit*float64(maxScore)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return document.DetectionResult{
		DocumentType: best,
		Confidence:   confidence,
		RawText:      text,
	}
}

// hasConsistentDelimiter reports whether at least 3 lines (and 60% of all
// non-blank lines) share the same per-line occurrence count, greater than
// one, for any of the candidate delimiters.
func hasConsistentDelimiter(text string) bool {
	lines := nonBlankLines(text)
	if len(lines) < 3 {
		return false
	}

	for _, delim := range delimiters {
		freqByCount := make(map[int]int)
		for _, ln := range lines {
			freqByCount[strings.Count(ln, delim)]++
		}

		// Most frequent occurrence count; ties resolve to the larger count
		// so the result is deterministic.
		modeCount, modeFreq := 0, 0
		for count, freq := range freqByCount {
			if freq > modeFreq || (freq == modeFreq && count > modeCount) {
				modeCount, modeFreq = count, freq
			}
		}

		if modeCount > 1 && modeFreq >= 3 && float64(modeFreq) >= 0.6*float64(len(lines)) {
			return true
		}
	}
	return false
}

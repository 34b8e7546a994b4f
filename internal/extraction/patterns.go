package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern tables are constant data, one set per document type. Scoring is a
// straight count of patterns that match at least once.

var invoicePatterns = compileAll(
	`invoice\s*(number|#|no\.?)`,
	`bill\s*to`,
	`invoice\s*date`,
	`due\s*date`,
	`subtotal`,
	`amount\s*due`,
)

var receiptPatterns = compileAll(
	`receipt`,
	`thank\s*you`,
	`transaction`,
	`payment\s*method`,
	`card\s*number`,
	`store`,
)

var formPatterns = compileAll(
	`first\s*name`,
	`last\s*name`,
	`email`,
	`phone`,
	`address`,
	`signature`,
	`date\s*of\s*birth`,
)

// Structural hints: a pipe-delimited row, a horizontal rule run, or
// box-drawing corner characters.
var tablePatterns = compileAll(
	`\|.*\|`,
	`[-─═]{3,}`,
	`[┌┐└┘├┤┬┴┼]`,
)

const (
	datePattern   = `\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`
	amountPattern = `\d+[,.]?\d*\.?\d{2}`
)

// priceToken matches a price-like token anywhere in a line, with or without
// a currency sign.
var priceToken = regexp.MustCompile(`\$?\s*` + amountPattern)

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+e))
	}
	return patterns
}

// CountMatches returns how many of the given patterns match text at least
// once. Pure function, no side effects.
func CountMatches(text string, patterns []*regexp.Regexp) int {
	count := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			count++
		}
	}
	return count
}

// nonBlankLines splits text into trimmed, non-empty lines.
func nonBlankLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(strings.TrimSuffix(ln, "\r"))
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// parseAmount converts a price token to a number, dropping the currency
// sign, whitespace and thousands separators.
func parseAmount(token string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "\t", "").Replace(token)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

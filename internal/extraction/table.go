package extraction

import (
	"strings"

	"docuscan/internal/domain/document"
)

// separatorChars are the characters a ruling line may consist of. Lines
// made solely of these (plus whitespace) carry no cell data.
const separatorChars = "-─═|+┼┬┴├┤"

func extractTable(text string) document.TableSchema {
	schema := document.TableSchema{
		Headers: []string{},
		Rows:    [][]string{},
	}

	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return schema
	}

	delim := pickDelimiter(lines[0])

	haveHeaders := false
	for _, ln := range lines {
		if isSeparatorLine(ln) {
			continue
		}
		cells := splitCells(ln, delim)
		if len(cells) == 0 {
			continue
		}
		if !haveHeaders {
			schema.Headers = cells
			haveHeaders = true
			continue
		}
		// No column-count validation against headers; OCR output is ragged.
		schema.Rows = append(schema.Rows, cells)
	}

	return schema
}

// pickDelimiter takes the first candidate present in the first line,
// defaulting to tab.
func pickDelimiter(firstLine string) string {
	for _, d := range delimiters {
		if strings.Contains(firstLine, d) {
			return d
		}
	}
	return "\t"
}

func isSeparatorLine(line string) bool {
	for _, r := range line {
		if r == ' ' || r == '\t' {
			continue
		}
		if !strings.ContainsRune(separatorChars, r) {
			return false
		}
	}
	return true
}

// splitCells splits on the delimiter, trims each cell and drops leading and
// trailing empty cells (a "|a|b|" row yields two cells, not four).
func splitCells(line, delim string) []string {
	parts := strings.Split(line, delim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	start, end := 0, len(parts)
	for start < end && parts[start] == "" {
		start++
	}
	for end > start && parts[end-1] == "" {
		end--
	}
	return parts[start:end]
}

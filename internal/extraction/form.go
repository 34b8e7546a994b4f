package extraction

import (
	"regexp"
	"strings"

	"docuscan/internal/domain/document"
)

var (
	// labeledValueRe requires a non-empty value after the colon; the key may
	// contain anything but a colon.
	labeledValueRe = regexp.MustCompile(`^([^:]+):\s*(.+)$`)

	// alphaLabelRe is the secondary pattern: an alphabetic label whose value
	// may be empty (a blank field on the form). It can overwrite a key set
	// by the primary pattern on a later line; last line wins, preserved
	// source behavior.
	alphaLabelRe = regexp.MustCompile(`^([A-Za-z\s]+):\s*(.*)$`)
)

func extractForm(text string) document.FormSchema {
	fields := make(map[string]string)

	for _, ln := range nonBlankLines(text) {
		if m := labeledValueRe.FindStringSubmatch(ln); m != nil {
			key := normalizeKey(m[1])
			value := strings.TrimSpace(m[2])
			if key != "" && value != "" {
				fields[key] = value
				continue
			}
		}
		if m := alphaLabelRe.FindStringSubmatch(ln); m != nil {
			if key := normalizeKey(m[1]); key != "" {
				fields[key] = strings.TrimSpace(m[2])
			}
		}
	}

	return document.FormSchema{Fields: fields}
}

// normalizeKey trims, lowercases and converts spaces to underscores.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, " ", "_")
}

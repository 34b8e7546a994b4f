package extraction

import (
	"regexp"
	"strings"

	"docuscan/internal/domain/document"
)

var (
	vendorRe     = regexp.MustCompile(`(?i)(from|vendor|company)[:\s]+(.+)`)
	invoiceNumRe = regexp.MustCompile(`(?i)invoice\s*(number|#|no\.?)[:\s]+([A-Z0-9-]+)`)

	// invoiceDateRe also matches the "date" inside "due date" when no other
	// date label exists; full-text first match, preserved source behavior.
	invoiceDateRe = regexp.MustCompile(`(?i)(invoice\s*)?date[:\s]+(` + datePattern + `)`)
	dueDateRe     = regexp.MustCompile(`(?i)due\s*date[:\s]+(` + datePattern + `)`)

	subtotalRe = regexp.MustCompile(`(?i)subtotal[:\s]+\$?\s*(` + amountPattern + `)`)
	taxRe      = regexp.MustCompile(`(?i)tax[:\s]+\$?\s*(` + amountPattern + `)`)
	totalRe    = regexp.MustCompile(`(?i)total[:\s]+\$?\s*(` + amountPattern + `)`)

	currencyRe = regexp.MustCompile(`(?i)\b(USD|EUR|GBP|CAD|AUD)\b`)
)

const minItemLineLen = 10

func extractInvoice(text string) document.InvoiceSchema {
	schema := document.InvoiceSchema{
		Vendor:   "Unknown Vendor",
		Items:    []document.LineItem{},
		Currency: "USD",
	}

	lines := nonBlankLines(text)

	for _, ln := range lines {
		if m := vendorRe.FindStringSubmatch(ln); m != nil {
			schema.Vendor = strings.TrimSpace(m[2])
			break
		}
	}

	if m := invoiceNumRe.FindStringSubmatch(text); m != nil {
		schema.InvoiceNumber = m[2]
	}
	if m := invoiceDateRe.FindStringSubmatch(text); m != nil {
		schema.Date = m[2]
	}
	if m := dueDateRe.FindStringSubmatch(text); m != nil {
		schema.DueDate = m[1]
	}

	for _, ln := range lines {
		if len(ln) <= minItemLineLen {
			continue
		}
		tokens := priceToken.FindAllString(ln, -1)
		if len(tokens) == 0 {
			continue
		}
		description := strings.TrimSpace(priceToken.ReplaceAllString(ln, ""))
		if len(description) <= 3 {
			continue
		}
		item := document.LineItem{Description: description}
		if amount, ok := parseAmount(tokens[0]); ok {
			item.Total = &amount
		}
		schema.Items = append(schema.Items, item)
	}

	// Amount lines are classified subtotal > tax > total so that a
	// "Subtotal:" line never also satisfies the total rule.
	haveTotal := false
	for _, ln := range lines {
		switch {
		case schema.Subtotal == nil && subtotalRe.MatchString(ln):
			if amount, ok := parseAmount(subtotalRe.FindStringSubmatch(ln)[1]); ok {
				schema.Subtotal = &amount
			}
		case schema.Tax == nil && taxRe.MatchString(ln):
			if amount, ok := parseAmount(taxRe.FindStringSubmatch(ln)[1]); ok {
				schema.Tax = &amount
			}
		case !haveTotal && totalRe.MatchString(ln):
			if amount, ok := parseAmount(totalRe.FindStringSubmatch(ln)[1]); ok {
				schema.Total = amount
				haveTotal = true
			}
		}
	}

	if m := currencyRe.FindString(text); m != "" {
		schema.Currency = strings.ToUpper(m)
	}

	return schema
}

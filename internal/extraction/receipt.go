package extraction

import (
	"regexp"
	"strings"

	"docuscan/internal/domain/document"
)

var (
	genericDateRe = regexp.MustCompile(datePattern)
	receiptItemRe = regexp.MustCompile(`^(.+?)\s+\$?\s*(` + amountPattern + `)$`)
	receiptTotRe  = regexp.MustCompile(`(?i)total[:\s]+\$?\s*(` + amountPattern + `)`)
	transactionRe = regexp.MustCompile(`(?i)(transaction|trans|ref)[:\s#]+([A-Z0-9-]+)`)
	paymentRe     = regexp.MustCompile(`(?i)(payment|card)[:\s]+(.+)`)
)

func extractReceipt(text string) document.ReceiptSchema {
	schema := document.ReceiptSchema{
		Merchant: "Unknown Merchant",
		Items:    []document.ReceiptItem{},
	}

	lines := nonBlankLines(text)
	if len(lines) > 0 {
		schema.Merchant = lines[0]
	}

	if m := genericDateRe.FindString(text); m != "" {
		schema.Date = m
	}

	for _, ln := range lines {
		m := receiptItemRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		item := document.ReceiptItem{Name: strings.TrimSpace(m[1])}
		if price, ok := parseAmount(m[2]); ok {
			item.Price = &price
		}
		schema.Items = append(schema.Items, item)
	}

	if m := receiptTotRe.FindStringSubmatch(text); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			schema.Total = amount
		}
	}
	if m := transactionRe.FindStringSubmatch(text); m != nil {
		schema.TransactionID = m[2]
	}
	if m := paymentRe.FindStringSubmatch(text); m != nil {
		schema.PaymentMethod = strings.TrimSpace(m[2])
	}

	return schema
}

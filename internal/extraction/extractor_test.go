package extraction

import (
	"reflect"
	"testing"

	"docuscan/internal/domain/document"
)

func TestExtractSchema_Invoice(t *testing.T) {
	text := `From: ACME Corp
Invoice Number: INV-2024-001
Invoice Date: 01/15/2024
Due Date: 02/15/2024
Premium Widget Assembly    $100.00
Subtotal: $100.00
Tax: $10.00
Total: $110.00`

	res := ExtractSchema(text, document.Invoice)
	if res.DocumentType != document.Invoice {
		t.Fatalf("wrong type: %s", res.DocumentType)
	}
	if res.Confidence != 0.7 {
		t.Errorf("typed extraction confidence is fixed at 0.7, got %v", res.Confidence)
	}

	schema, ok := res.Schema.(document.InvoiceSchema)
	if !ok {
		t.Fatalf("expected InvoiceSchema, got %T", res.Schema)
	}
	if schema.Vendor != "ACME Corp" {
		t.Errorf("vendor: got %q", schema.Vendor)
	}
	if schema.InvoiceNumber != "INV-2024-001" {
		t.Errorf("invoiceNumber: got %q", schema.InvoiceNumber)
	}
	if schema.Date != "01/15/2024" {
		t.Errorf("date: got %q", schema.Date)
	}
	if schema.DueDate != "02/15/2024" {
		t.Errorf("dueDate: got %q", schema.DueDate)
	}
	if schema.Total != 110.00 {
		t.Errorf("total: got %v", schema.Total)
	}
	if schema.Subtotal == nil || *schema.Subtotal != 100.00 {
		t.Errorf("subtotal: got %v", schema.Subtotal)
	}
	if schema.Tax == nil || *schema.Tax != 10.00 {
		t.Errorf("tax: got %v", schema.Tax)
	}
	// No currency token anywhere in the text.
	if schema.Currency != "USD" {
		t.Errorf("currency should default to USD, got %q", schema.Currency)
	}

	found := false
	for _, item := range schema.Items {
		if item.Description == "Premium Widget Assembly" {
			found = true
			if item.Total == nil || *item.Total != 100.00 {
				t.Errorf("item total: got %v", item.Total)
			}
		}
	}
	if !found {
		t.Error("line item 'Premium Widget Assembly' not extracted")
	}
}

func TestExtractSchema_InvoiceDefaults(t *testing.T) {
	res := ExtractSchema("nothing that looks like an invoice", document.Invoice)
	schema := res.Schema.(document.InvoiceSchema)
	if schema.Vendor != "Unknown Vendor" {
		t.Errorf("vendor default: got %q", schema.Vendor)
	}
	if schema.Total != 0 {
		t.Errorf("total default: got %v", schema.Total)
	}
	if schema.Currency != "USD" {
		t.Errorf("currency default: got %q", schema.Currency)
	}
}

func TestExtractSchema_InvoiceCurrency(t *testing.T) {
	res := ExtractSchema("Total: 99.00\nAmount in eur", document.Invoice)
	schema := res.Schema.(document.InvoiceSchema)
	if schema.Currency != "EUR" {
		t.Errorf("currency should be upper-cased EUR, got %q", schema.Currency)
	}
}

func TestExtractSchema_Receipt(t *testing.T) {
	text := `Corner Store

Coffee  $4.50
Bagel  $3.25
Total: $7.75
Transaction #ABC-123
Payment: VISA 1234
Date 03/22/2024`

	schema := ExtractSchema(text, document.Receipt).Schema.(document.ReceiptSchema)
	if schema.Merchant != "Corner Store" {
		t.Errorf("merchant should be the first non-blank line, got %q", schema.Merchant)
	}
	if schema.Total != 7.75 {
		t.Errorf("total: got %v", schema.Total)
	}
	if schema.TransactionID != "ABC-123" {
		t.Errorf("transactionId: got %q", schema.TransactionID)
	}
	if schema.PaymentMethod != "VISA 1234" {
		t.Errorf("paymentMethod: got %q", schema.PaymentMethod)
	}
	if schema.Date != "03/22/2024" {
		t.Errorf("date: got %q", schema.Date)
	}
	if len(schema.Items) < 2 {
		t.Fatalf("expected at least 2 items, got %d", len(schema.Items))
	}
	if schema.Items[0].Name != "Coffee" || schema.Items[0].Price == nil || *schema.Items[0].Price != 4.50 {
		t.Errorf("first item: %+v", schema.Items[0])
	}
}

func TestExtractSchema_ReceiptDefaults(t *testing.T) {
	schema := ExtractSchema("", document.Receipt).Schema.(document.ReceiptSchema)
	if schema.Merchant != "Unknown Merchant" {
		t.Errorf("merchant default: got %q", schema.Merchant)
	}
	if schema.Total != 0 {
		t.Errorf("total default: got %v", schema.Total)
	}
}

func TestExtractSchema_Form(t *testing.T) {
	text := `Email: a@b.com
First Name: Jane
Date of Birth: 01/02/1990
Signature:`

	schema := ExtractSchema(text, document.Form).Schema.(document.FormSchema)
	if schema.Fields["email"] != "a@b.com" {
		t.Errorf("email: got %q", schema.Fields["email"])
	}
	if schema.Fields["first_name"] != "Jane" {
		t.Errorf("keys are lowercased with underscores: %v", schema.Fields)
	}
	if schema.Fields["date_of_birth"] != "01/02/1990" {
		t.Errorf("date_of_birth: got %q", schema.Fields["date_of_birth"])
	}
	// Empty value falls through to the secondary pattern and stores "".
	if v, ok := schema.Fields["signature"]; !ok || v != "" {
		t.Errorf("signature: got %q (present=%t)", v, ok)
	}
}

func TestExtractSchema_FormLastOccurrenceWins(t *testing.T) {
	schema := ExtractSchema("Email: first@b.com\nEmail: second@b.com", document.Form).Schema.(document.FormSchema)
	if schema.Fields["email"] != "second@b.com" {
		t.Errorf("last occurrence should win, got %q", schema.Fields["email"])
	}
}

func TestExtractSchema_Table(t *testing.T) {
	schema := ExtractSchema("A|B|C\n1|2|3\n4|5|6", document.Table).Schema.(document.TableSchema)
	if !reflect.DeepEqual(schema.Headers, []string{"A", "B", "C"}) {
		t.Errorf("headers: got %v", schema.Headers)
	}
	want := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}
	if !reflect.DeepEqual(schema.Rows, want) {
		t.Errorf("rows: got %v", schema.Rows)
	}
}

func TestExtractSchema_TableSkipsSeparators(t *testing.T) {
	text := "Name | Qty\n------|----\nApple | 2\n| Pear | 1 |"
	schema := ExtractSchema(text, document.Table).Schema.(document.TableSchema)
	if !reflect.DeepEqual(schema.Headers, []string{"Name", "Qty"}) {
		t.Errorf("headers: got %v", schema.Headers)
	}
	want := [][]string{{"Apple", "2"}, {"Pear", "1"}}
	if !reflect.DeepEqual(schema.Rows, want) {
		t.Errorf("separator rows must be skipped, outer empties stripped: got %v", schema.Rows)
	}
}

func TestExtractSchema_UnknownFallback(t *testing.T) {
	res := ExtractSchema("whatever", document.Unknown)
	if res.Confidence != 0.3 {
		t.Errorf("fallback confidence: got %v", res.Confidence)
	}
	schema, ok := res.Schema.(document.RawTextSchema)
	if !ok {
		t.Fatalf("expected RawTextSchema, got %T", res.Schema)
	}
	if schema.RawText != "whatever" {
		t.Errorf("rawText: got %q", schema.RawText)
	}
}

func TestExtractSchema_RoundTripWithDetect(t *testing.T) {
	inputs := []string{
		"Invoice Number: 42\nBill To: someone\nAmount Due: $5.00",
		"Corner Store\nthank you\nTotal: $1.00",
		"First Name: A\nLast Name: B\nEmail: a@b.com",
		"A|B|C\n1|2|3\n4|5|6",
		"no patterns here",
	}
	for _, in := range inputs {
		detected := Detect(in)
		extracted := ExtractSchema(in, detected.DocumentType)
		if extracted.DocumentType != detected.DocumentType {
			t.Errorf("round-trip mismatch for %q: %s vs %s",
				in, extracted.DocumentType, detected.DocumentType)
		}
	}
}

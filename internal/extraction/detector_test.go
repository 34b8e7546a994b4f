package extraction

import (
	"strings"
	"testing"

	"docuscan/internal/domain/document"
)

const sampleInvoice = `ACME Corp
Invoice Number: INV-2024-001
Invoice Date: 01/15/2024
Due Date: 02/15/2024
Bill To: John Smith
Widget A    $25.00
Subtotal: $25.00
Amount Due: $27.50`

func TestDetect_EmptyText(t *testing.T) {
	res := Detect("")
	if res.DocumentType != document.Unknown {
		t.Errorf("expected UNKNOWN, got %s", res.DocumentType)
	}
	if res.Confidence != 0.3 {
		t.Errorf("expected confidence 0.3, got %v", res.Confidence)
	}
}

func TestDetect_ConfidenceBounds(t *testing.T) {
	inputs := []string{
		"",
		"random text with no structure at all",
		sampleInvoice,
		"receipt thank you transaction payment method card number store",
		strings.Repeat("a|b|c\n", 20),
		"first name last name email phone address signature date of birth",
	}
	for _, in := range inputs {
		res := Detect(in)
		if res.Confidence < 0.3 || res.Confidence > 0.95 {
			t.Errorf("confidence %v out of [0.3, 0.95] for input %q", res.Confidence, in)
		}
	}
}

func TestDetect_Invoice(t *testing.T) {
	res := Detect(sampleInvoice)
	if res.DocumentType != document.Invoice {
		t.Fatalf("expected INVOICE, got %s", res.DocumentType)
	}
	// 6 of 6 invoice patterns hit; capped at 0.95.
	if res.Confidence != 0.95 {
		t.Errorf("expected capped confidence 0.95, got %v", res.Confidence)
	}
}

func TestDetect_TieBreakPrefersInvoice(t *testing.T) {
	// Exactly one invoice pattern ("subtotal") and one receipt pattern
	// ("receipt") match: equal scores, precedence picks INVOICE.
	res := Detect("subtotal figures on the receipt")
	if res.DocumentType != document.Invoice {
		t.Errorf("tie should resolve to INVOICE, got %s", res.DocumentType)
	}
	if res.Confidence != 0.6 {
		t.Errorf("expected 0.5 + 1*0.1 = 0.6, got %v", res.Confidence)
	}
}

func TestDetect_TableStructureBonus(t *testing.T) {
	t.Run("consistent comma counts", func(t *testing.T) {
		text := "name,qty,price\napple,2,1.00\npear,1,0.50\nplum,4,2.00"
		res := Detect(text)
		if res.DocumentType != document.Table {
			t.Errorf("expected TABLE, got %s", res.DocumentType)
		}
	})

	t.Run("pipes", func(t *testing.T) {
		res := Detect("A|B|C\n1|2|3\n4|5|6")
		if res.DocumentType != document.Table {
			t.Errorf("expected TABLE, got %s", res.DocumentType)
		}
	})

	t.Run("two lines is not enough", func(t *testing.T) {
		if hasConsistentDelimiter("a,b,c\nd,e,f") {
			t.Error("bonus requires at least 3 non-blank lines")
		}
	})

	t.Run("single delimiter per line does not count", func(t *testing.T) {
		if hasConsistentDelimiter("a,b\nc,d\ne,f\ng,h") {
			t.Error("modal count of 1 must not trigger the bonus")
		}
	})
}

func TestDetect_Form(t *testing.T) {
	text := "First Name: Jane\nLast Name: Doe\nEmail: jane@example.com\nPhone: 555-0100"
	res := Detect(text)
	if res.DocumentType != document.Form {
		t.Errorf("expected FORM, got %s", res.DocumentType)
	}
}

func TestDetect_Idempotent(t *testing.T) {
	first := Detect(sampleInvoice)
	second := Detect(sampleInvoice)
	if first != second {
		t.Errorf("detect is not idempotent: %+v vs %+v", first, second)
	}
}

func TestDetect_RawTextEchoed(t *testing.T) {
	res := Detect(sampleInvoice)
	if res.RawText != sampleInvoice {
		t.Error("detection result should carry the input text")
	}
}

package document

// Schema is the tagged union of per-type extraction outputs. The set of
// variants is closed; there is one per document type plus the raw-text
// fallback for UNKNOWN.
type Schema interface {
	isSchema()
}

type LineItem struct {
	Description string   `json:"description"`
	Total       *float64 `json:"total,omitempty"`
}

type InvoiceSchema struct {
	Vendor        string     `json:"vendor"`
	InvoiceNumber string     `json:"invoiceNumber,omitempty"`
	Date          string     `json:"date,omitempty"`
	DueDate       string     `json:"dueDate,omitempty"`
	Items         []LineItem `json:"items"`
	Subtotal      *float64   `json:"subtotal,omitempty"`
	Tax           *float64   `json:"tax,omitempty"`
	Total         float64    `json:"total"`
	Currency      string     `json:"currency"`
}

type ReceiptItem struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

type ReceiptSchema struct {
	Merchant      string        `json:"merchant"`
	Date          string        `json:"date,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
}

// FormSchema maps normalized keys (lowercased, spaces to underscores) to
// values. Last occurrence of a key wins.
type FormSchema struct {
	Fields map[string]string `json:"fields"`
}

type TableSchema struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RawTextSchema is the fallback for UNKNOWN or unrecognized types.
type RawTextSchema struct {
	RawText string `json:"rawText"`
}

func (InvoiceSchema) isSchema() {}
func (ReceiptSchema) isSchema() {}
func (FormSchema) isSchema()    {}
func (TableSchema) isSchema()   {}
func (RawTextSchema) isSchema() {}

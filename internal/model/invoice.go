// Package model defines the invoice data types: the loosely typed record
// callers submit and the canonical record the document layout consumes.
package model

import "github.com/shopspring/decimal"

// RawItem is one line item as submitted. Every field is loosely typed:
// numbers may arrive as strings, integers, or floats.
type RawItem struct {
	Name   string `json:"name"`
	HSN    string `json:"hsn"`
	Qty    any    `json:"qty"`
	Rate   any    `json:"rate"`
	Amount any    `json:"amount"`
}

// RawInvoice is the simplified input record. Amount fields are loosely
// typed on purpose; coercion happens in the normalizer, never here.
type RawInvoice struct {
	InvoiceNo      string    `json:"invoice_no"`
	InvoiceDate    string    `json:"invoice_date"`
	To             string    `json:"to"`
	JobDescription string    `json:"job_description"`
	EventName      string    `json:"event_name,omitempty"`
	Items          []RawItem `json:"items"`
	TaxableAmount  any       `json:"taxable_amount"`
	CGST           any       `json:"cgst"`
	SGST           any       `json:"sgst"`
	IGSTRate       string    `json:"igst_rate,omitempty"`
	Total          any       `json:"total"`
	CustomerGSTIN  string    `json:"customer_gstin,omitempty"`
}

// requiredFields lists the top-level keys a submission must carry, in the
// order missing ones are reported.
var requiredFields = []string{
	"invoice_no", "invoice_date", "to", "items", "taxable_amount", "total",
}

// RequiredFields returns a copy of the required top-level keys.
func RequiredFields() []string {
	out := make([]string, len(requiredFields))
	copy(out, requiredFields)
	return out
}

// MissingFields reports every required key absent from a decoded payload,
// in stable order. Keys present with empty or null values count as present;
// only absence fails.
func MissingFields(payload map[string]any) []string {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := payload[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// Customer is the parsed recipient block.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// Item is a coerced line item. Quantity and Rate stay display strings
// exactly as submitted; only Amount takes part in computation.
type Item struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    string          `json:"quantity"`
	Rate        string          `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// TaxSummary holds the computed tax block.
//
// RoundOff is a magnitude: the direction of the adjustment is discarded and
// the invoice always shows it as a positive addition. HasRoundOff is false
// when the adjustment is 0.01 or less, in which case the row prints blank.
// IGSTRate is a pass-through display string; no IGST amount is derived.
type TaxSummary struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTRate      decimal.Decimal `json:"cgst_rate"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTRate      decimal.Decimal `json:"sgst_rate"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTRate      string          `json:"igst_rate,omitempty"`
	RoundOff      decimal.Decimal `json:"round_off"`
	HasRoundOff   bool            `json:"has_round_off"`
	InvoiceTotal  decimal.Decimal `json:"invoice_total"`
}

// Company is the seller block stamped onto every invoice.
type Company struct {
	Name      string      `json:"name" mapstructure:"name"`
	Address   string      `json:"address" mapstructure:"address"`
	Mobile    string      `json:"mobile" mapstructure:"mobile"`
	State     string      `json:"state" mapstructure:"state"`
	GSTIN     string      `json:"gstin" mapstructure:"gstin"`
	StateCode string      `json:"state_code" mapstructure:"state_code"`
	Bank      BankDetails `json:"bank_details" mapstructure:"bank_details"`
}

// BankDetails is the payment block printed in the invoice footer.
type BankDetails struct {
	IFSC          string `json:"ifsc" mapstructure:"ifsc"`
	AccountNumber string `json:"account_number" mapstructure:"account_number"`
	BankName      string `json:"bank_name" mapstructure:"bank_name"`
}

// CanonicalInvoice is the fully normalized, computation-ready record.
// It is built fresh per call, never mutated afterwards, never persisted.
type CanonicalInvoice struct {
	Company        Company    `json:"company"`
	InvoiceNumber  string     `json:"invoice_number"`
	InvoiceDate    string     `json:"invoice_date"`
	Customer       Customer   `json:"customer"`
	JobDescription string     `json:"job_description"`
	EventName      string     `json:"event_name,omitempty"`
	Items          []Item     `json:"items"`
	TaxSummary     TaxSummary `json:"tax_summary"`
}

// Package invoicegen provides a public API for generating GST tax invoices.
//
// This package exposes the core types for normalizing a simplified invoice
// record and rendering it to a PDF document.
//
// Example usage:
//
//	gen := invoicegen.NewGenerator(invoicegen.DefaultOptions())
//	pdfBytes, err := gen.Generate(&invoicegen.RawInvoice{...})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice_134.pdf", pdfBytes, 0644)
package invoicegen

import "github.com/rezonia/gst-invoice/internal/model"

// Re-export core types for public API
type (
	RawInvoice       = model.RawInvoice
	RawItem          = model.RawItem
	CanonicalInvoice = model.CanonicalInvoice
	Customer         = model.Customer
	Item             = model.Item
	TaxSummary       = model.TaxSummary
	Company          = model.Company
	BankDetails      = model.BankDetails
)

// Re-export error types
type (
	MissingFieldsError = model.MissingFieldsError
	FormatError        = model.FormatError
	RenderError        = model.RenderError
)

// RequiredFields returns the top-level keys a submission must carry, in the
// order missing ones are reported.
func RequiredFields() []string {
	return model.RequiredFields()
}

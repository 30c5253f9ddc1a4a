package invoicegen

import (
	"fmt"
	"os"

	"github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/normalize"
	"github.com/rezonia/gst-invoice/internal/pdf"
)

// Options configures a Generator.
type Options struct {
	// Config carries the company block, default tax rates, and layout
	// settings. Zero value means built-in defaults.
	Config config.Config

	// CheckOutput runs a structural validation over every generated PDF.
	CheckOutput bool
}

// DefaultOptions returns options with the built-in configuration.
func DefaultOptions() Options {
	return Options{Config: config.Default()}
}

// LoadOptions reads configuration from a file path ("" for defaults).
func LoadOptions(configPath string) (Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return Options{}, err
	}
	return Options{Config: cfg}, nil
}

// Generator renders simplified invoice records to PDF documents. Stateless
// and safe for concurrent use.
type Generator struct {
	options Options
	pdfgen  *pdf.Generator
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Config.Company.Name == "" {
		opts.Config = config.Default()
	}
	return &Generator{
		options: opts,
		pdfgen:  pdf.NewGenerator(opts.Config.Layout),
	}
}

// Normalize transforms a raw record into the canonical computation-ready
// form without rendering.
func (g *Generator) Normalize(raw *RawInvoice) *CanonicalInvoice {
	return normalize.Normalize(raw, g.options.Config)
}

// Generate normalizes and renders the invoice, returning the PDF bytes.
func (g *Generator) Generate(raw *RawInvoice) ([]byte, error) {
	data, err := g.pdfgen.Generate(g.Normalize(raw))
	if err != nil {
		return nil, err
	}
	if g.options.CheckOutput {
		if err := pdf.Validate(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// GenerateToFile renders the invoice and writes it to path. An empty path
// derives invoice_<invoice_no>.pdf in the working directory.
func (g *Generator) GenerateToFile(raw *RawInvoice, path string) (string, error) {
	data, err := g.Generate(raw)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = Filename(raw.InvoiceNo)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Filename derives the attachment filename for an invoice number.
func Filename(invoiceNo string) string {
	return fmt.Sprintf("invoice_%s.pdf", invoiceNo)
}

// CheckRequired reports every missing required key in a decoded payload,
// in stable order. Empty result means the payload is complete.
func CheckRequired(payload map[string]any) []string {
	return model.MissingFields(payload)
}

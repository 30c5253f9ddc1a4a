package invoicegen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/gst-invoice/pkg/invoicegen"
)

func sampleRaw() *invoicegen.RawInvoice {
	return &invoicegen.RawInvoice{
		InvoiceNo:      "134",
		InvoiceDate:    "05-Dec-2025",
		To:             "The Director, CSIR - National Metallurgical Laboratory",
		JobDescription: "Platinum Jubilee",
		Items: []invoicegen.RawItem{
			{Name: "Stage Programme PA System", HSN: "997329", Qty: 1, Rate: "25400", Amount: "25400"},
		},
		TaxableAmount: "25400",
		CGST:          "2286",
		SGST:          "2286",
		Total:         "29972",
	}
}

func TestGenerate(t *testing.T) {
	gen := invoicegen.NewGenerator(invoicegen.DefaultOptions())

	data, err := gen.Generate(sampleRaw())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerate_WithCheck(t *testing.T) {
	opts := invoicegen.DefaultOptions()
	opts.CheckOutput = true
	gen := invoicegen.NewGenerator(opts)

	_, err := gen.Generate(sampleRaw())
	require.NoError(t, err)
}

func TestGenerateToFile(t *testing.T) {
	gen := invoicegen.NewGenerator(invoicegen.DefaultOptions())
	path := filepath.Join(t.TempDir(), "out.pdf")

	written, err := gen.GenerateToFile(sampleRaw(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestNormalize(t *testing.T) {
	gen := invoicegen.NewGenerator(invoicegen.DefaultOptions())

	inv := gen.Normalize(sampleRaw())
	assert.Equal(t, "The Director", inv.Customer.Name)
	assert.Equal(t, "GOPAL TENT HOUSE", inv.Company.Name)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice_134.pdf", invoicegen.Filename("134"))
	assert.Equal(t, "invoice_INV-002.pdf", invoicegen.Filename("INV-002"))
}

func TestCheckRequired(t *testing.T) {
	missing := invoicegen.CheckRequired(map[string]any{"invoice_no": "1"})
	assert.Equal(t, []string{"invoice_date", "to", "items", "taxable_amount", "total"}, missing)
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t,
		[]string{"invoice_no", "invoice_date", "to", "items", "taxable_amount", "total"},
		invoicegen.RequiredFields())
}

package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/normalize"
	"github.com/rezonia/gst-invoice/internal/pdf"
)

func sampleInvoice(t *testing.T) *model.CanonicalInvoice {
	t.Helper()
	raw := &model.RawInvoice{
		InvoiceNo:      "134",
		InvoiceDate:    "05-Dec-2025",
		To:             "The Director, CSIR - National Metallurgical Laboratory, Jamshedpur - 831017",
		JobDescription: "Platinum Jubilee",
		Items: []model.RawItem{
			{Name: "Stage Programme PA System with Stage light & codeless microphone (3nos)",
				HSN: "997329", Qty: 1, Rate: "25400", Amount: "25400"},
		},
		TaxableAmount: "25400",
		CGST:          "2286",
		SGST:          "2286",
		Total:         "29972",
	}
	return normalize.Normalize(raw, config.Default())
}

func TestGenerate(t *testing.T) {
	g := pdf.NewGenerator(config.Default().Layout)

	data, err := g.Generate(sampleInvoice(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerate_PassesValidation(t *testing.T) {
	g := pdf.NewGenerator(config.Default().Layout)

	data, err := g.Generate(sampleInvoice(t))
	require.NoError(t, err)
	require.NoError(t, pdf.Validate(data))
}

func TestGenerate_ManyItems(t *testing.T) {
	// More items than the padded row count must not fail; the table just
	// spills onto the next page.
	raw := &model.RawInvoice{
		InvoiceNo:     "135",
		InvoiceDate:   "06-Dec-2025",
		To:            "XYZ Corporation, 456 Business Park, Mumbai - 400001",
		Items:         make([]model.RawItem, 0, 20),
		TaxableAmount: "100000",
		CGST:          "9000",
		SGST:          "9000",
		Total:         "118000",
	}
	for i := 0; i < 20; i++ {
		raw.Items = append(raw.Items, model.RawItem{
			Name: "Lighting Equipment", HSN: "997329", Qty: 5, Rate: "1000", Amount: "5000",
		})
	}

	g := pdf.NewGenerator(config.Default().Layout)
	data, err := g.Generate(normalize.Normalize(raw, config.Default()))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerate_EmptyItems(t *testing.T) {
	raw := &model.RawInvoice{
		InvoiceNo:     "136",
		InvoiceDate:   "07-Dec-2025",
		To:            "Just A Name",
		TaxableAmount: "0",
		Total:         "0",
	}

	g := pdf.NewGenerator(config.Default().Layout)
	data, err := g.Generate(normalize.Normalize(raw, config.Default()))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	assert.Error(t, pdf.Validate([]byte("not a pdf")))
}

func TestNewGenerator_Defaults(t *testing.T) {
	g := pdf.NewGenerator(config.Layout{})
	data, err := g.Generate(sampleInvoice(t))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

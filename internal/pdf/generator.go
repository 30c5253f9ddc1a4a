// Package pdf renders a canonical invoice to an A4 tax-invoice document.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                       Tax Invoice                            │
//	│                  COMPANY NAME / address / mobile             │
//	│  State        │  GSTIN NO: …            │  State Code: …     │
//	│  Invoice No.: …                      Invoice Date: …         │
//	│  Details of Recipient        │  Job Description              │
//	│  TABLE: Sl.No | Description | HSN | Qty | Rate | Amount      │
//	│  Bank details                │  Tax summary                  │
//	│  In Words: …                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	"github.com/shopspring/decimal"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcfg "github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/money"
	"github.com/rezonia/gst-invoice/internal/words"
)

var (
	colorBlack = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray  = &props.Color{Red: 90, Green: 90, Blue: 90}
)

// extraItemLabel fills the last padded row so handwritten additions land in
// a named slot, matching the paper forms this layout replaced.
const extraItemLabel = "Extra Item Total Amount"

// Generator renders canonical invoices to PDF bytes. Stateless; safe for
// concurrent use.
type Generator struct {
	layout appcfg.Layout
}

// NewGenerator creates a generator with the given layout settings.
func NewGenerator(layout appcfg.Layout) *Generator {
	if layout.MaxItemRows <= 0 {
		layout.MaxItemRows = 12
	}
	if layout.Currency == "" {
		layout.Currency = "Rs."
	}
	return &Generator{layout: layout}
}

// Generate renders the invoice and returns the PDF bytes.
func (g *Generator) Generate(inv *model.CanonicalInvoice) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(11).WithRightMargin(11).
		WithTopMargin(11).WithBottomMargin(11).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(inv)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.4}))
	m.AddRows(g.invoiceInfoRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.4}))
	m.AddRows(g.customerRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.4}))

	m.AddRows(g.itemsHeaderRow())
	m.AddRows(g.itemRows(inv)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.4}))

	m.AddRows(g.footerRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.4}))
	m.AddRows(g.wordsRow(inv))

	// Trailing space for stamp and signature.
	m.AddRows(row.New(20))

	doc, err := m.Generate()
	if err != nil {
		return nil, model.NewRenderError("layout", "generate document", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: document title, company identity, and the GST band.
func (g *Generator) headerRows(inv *model.CanonicalInvoice) []core.Row {
	c := inv.Company
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Tax Invoice", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 1,
			}),
		)),
		row.New(16).Add(col.New(12).Add(
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 1,
			}),
			text.New(c.Address, props.Text{
				Size: 9, Align: align.Center, Top: 9, Color: colorGray,
			}),
			text.New("Mobile No.: "+c.Mobile, props.Text{
				Size: 9, Align: align.Center, Top: 13, Color: colorGray,
			}),
		)),
		row.New(7).Add(
			col.New(3).Add(text.New(c.State, props.Text{
				Size: 9, Align: align.Center, Top: 2,
			})),
			col.New(6).Add(text.New("GSTIN NO: "+c.GSTIN, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
			})),
			col.New(3).Add(text.New("State Code: "+c.StateCode, props.Text{
				Size: 9, Align: align.Center, Top: 2,
			})),
		),
	}
}

// invoiceInfoRow: invoice number left, date right.
func (g *Generator) invoiceInfoRow(inv *model.CanonicalInvoice) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Invoice No.: "+inv.InvoiceNumber, props.Text{
			Size: 10, Top: 2, Left: 2,
		})),
		col.New(6).Add(text.New("Invoice Date: "+inv.InvoiceDate, props.Text{
			Size: 10, Align: align.Right, Top: 2, Right: 2,
		})),
	)
}

// customerRow: recipient block left, job description right.
func (g *Generator) customerRow(inv *model.CanonicalInvoice) core.Row {
	cust := inv.Customer

	job := "Job Description: " + inv.JobDescription
	right := []core.Component{
		text.New(job, props.Text{Size: 9, Top: 2, Left: 2}),
	}
	if inv.EventName != "" {
		right = append(right, text.New(inv.EventName, props.Text{
			Size: 9, Top: 8, Left: 2, Color: colorGray,
		}))
	}

	return row.New(24).Add(
		col.New(6).Add(
			text.New("Details of Recipient:", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Left: 2,
			}),
			text.New("Name: "+cust.Name, props.Text{Size: 9, Top: 7, Left: 2}),
			text.New("Address: "+cust.Address, props.Text{Size: 9, Top: 12, Left: 2}),
			text.New("GST No: "+cust.GSTIN, props.Text{Size: 9, Top: 17, Left: 2}),
		),
		col.New(6).Add(right...),
	)
}

// itemsHeaderRow: column headings for the goods/services table.
func (g *Generator) itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sl. No.", 1, align.Center),
		h("Description of Goods / Services", 5, align.Left),
		h("HSN Code", 2, align.Center),
		h("Qty", 1, align.Center),
		h("Rate", 1, align.Center),
		h("Amount ("+g.layout.Currency+")", 2, align.Right),
	)
}

// itemRows: one row per line item, then blank filler rows up to the
// configured count so short invoices still occupy a full-height table; the
// last filler row is the extra-item slot.
func (g *Generator) itemRows(inv *model.CanonicalInvoice) []core.Row {
	rows := make([]core.Row, 0, g.layout.MaxItemRows)

	for i, item := range inv.Items {
		rows = append(rows, g.itemRow(i+1, item.Description, item.HSNCode,
			item.Quantity, item.Rate, money.Format(item.Amount)))
	}

	for i := len(inv.Items); i < g.layout.MaxItemRows; i++ {
		desc := ""
		if i == g.layout.MaxItemRows-1 {
			desc = extraItemLabel
		}
		rows = append(rows, g.itemRow(i+1, desc, "", "", "", ""))
	}

	return rows
}

func (g *Generator) itemRow(slNo int, desc, hsn, qty, rate, amount string) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		c := col.New(size)
		if s != "" {
			c.Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		return c
	}
	return row.New(6).Add(
		cell(fmt.Sprintf("%d", slNo), 1, align.Center),
		cell(desc, 5, align.Left),
		cell(hsn, 2, align.Center),
		cell(qty, 1, align.Center),
		cell(rate, 1, align.Center),
		cell(amount, 2, align.Right),
	)
}

// footerRow: bank details left, tax summary right.
func (g *Generator) footerRow(inv *model.CanonicalInvoice) core.Row {
	bank := inv.Company.Bank
	ts := inv.TaxSummary

	left := col.New(6).Add(
		text.New("Bank Details: "+inv.Company.Name, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Left: 2,
		}),
		text.New("IFSC Code: "+bank.IFSC, props.Text{Size: 9, Top: 8, Left: 2}),
		text.New("Account No.: "+bank.AccountNumber, props.Text{Size: 9, Top: 13, Left: 2}),
		text.New("Bank: "+bank.BankName, props.Text{Size: 9, Top: 18, Left: 2}),
	)

	lines := taxSummaryLines(ts)
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		top := 2 + float64(i)*5
		style := fontstyle.Normal
		if l.grand {
			style = fontstyle.Bold
		}
		labels = append(labels, text.New(l.label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: top, Left: 2,
		}))
		if l.value != "" {
			values = append(values, text.New(l.value, props.Text{
				Style: style, Size: 9, Align: align.Right, Top: top, Right: 2,
			}))
		}
	}

	return row.New(34).Add(
		left,
		col.New(4).Add(labels...),
		col.New(2).Add(values...),
	)
}

type taxLine struct {
	label string
	value string
	grand bool
}

// taxSummaryLines applies the display rules of the tax block: taxable and
// total as whole rupees, tax amounts with decimals only when present, rate
// labels in parentheses, unused rows blank.
func taxSummaryLines(ts model.TaxSummary) []taxLine {
	igstRate := money.SafeParse(ts.IGSTRate, money.Zero)

	roundOff := ""
	if ts.HasRoundOff {
		roundOff = ts.RoundOff.StringFixed(2)
	}

	return []taxLine{
		{label: "TAXABLE AMOUNT", value: ts.TaxableAmount.Truncate(0).String()},
		{label: rateLabel("CGST", ts.CGSTRate), value: money.FormatOptional(ts.CGSTAmount)},
		{label: rateLabel("SGST", ts.SGSTRate), value: money.FormatOptional(ts.SGSTAmount)},
		{label: rateLabel("IGST", igstRate), value: ""},
		{label: "Round off", value: roundOff},
		{label: "Invoice Total", value: ts.InvoiceTotal.Truncate(0).String(), grand: true},
	}
}

func rateLabel(name string, rate decimal.Decimal) string {
	if s := money.FormatRate(rate); s != "" {
		return name + " (" + s + ")"
	}
	return name
}

// wordsRow: the invoice total in words.
func (g *Generator) wordsRow(inv *model.CanonicalInvoice) core.Row {
	return row.New(8).Add(
		col.New(2).Add(text.New("In Words", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2, Left: 2,
		})),
		col.New(10).Add(text.New(words.AmountInWords(inv.TaxSummary.InvoiceTotal), props.Text{
			Size: 10, Top: 2, Left: 2,
		})),
	)
}

// Package normalize turns a loosely typed invoice submission into the
// canonical, computation-ready record the document layout consumes.
//
// The transform is deliberately permissive: malformed numeric input
// degrades to defaults instead of failing, mirroring what bookkeepers
// actually paste into the entry form.
package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/money"
)

// roundOffEpsilon: adjustments at or below a paisa are not worth a row on
// the invoice.
var roundOffEpsilon = decimal.RequireFromString("0.01")

// Normalize builds a fresh CanonicalInvoice from a raw submission and the
// company configuration. It never fails: every coercion has a defined
// fallback. The result is not mutated afterwards.
func Normalize(raw *model.RawInvoice, cfg config.Config) *model.CanonicalInvoice {
	name, address := ParseCustomer(raw.To)

	taxable := money.SafeParse(raw.TaxableAmount, money.Zero)
	cgstAmount := money.SafeParse(raw.CGST, money.Zero)
	sgstAmount := money.SafeParse(raw.SGST, money.Zero)
	totalInput := money.SafeParse(raw.Total, money.Zero)

	cgstRate := money.TaxRate(cgstAmount, taxable, money.FromFloat(cfg.Tax.CGSTRate))
	sgstRate := money.TaxRate(sgstAmount, taxable, money.FromFloat(cfg.Tax.SGSTRate))

	// Round-off is a magnitude: the sign of the adjustment is discarded and
	// the invoice always shows it as an addition.
	actualTotal := taxable.Add(cgstAmount).Add(sgstAmount)
	roundedTotal := money.RoundRupee(actualTotal)
	roundOff := roundedTotal.Sub(actualTotal).Abs()

	hasRoundOff := roundOff.GreaterThan(roundOffEpsilon)
	if hasRoundOff {
		roundOff = roundOff.Round(2)
	} else {
		roundOff = money.Zero
	}

	finalTotal := roundedTotal
	if money.IsPositive(totalInput) {
		finalTotal = totalInput
	}

	gstin := raw.CustomerGSTIN
	if gstin == "" {
		gstin = cfg.Tax.CustomerGSTIN
	}

	return &model.CanonicalInvoice{
		Company:        cfg.Company,
		InvoiceNumber:  raw.InvoiceNo,
		InvoiceDate:    raw.InvoiceDate,
		Customer:       model.Customer{Name: name, Address: address, GSTIN: gstin},
		JobDescription: raw.JobDescription,
		EventName:      raw.EventName,
		Items:          normalizeItems(raw.Items),
		TaxSummary: model.TaxSummary{
			TaxableAmount: taxable,
			CGSTRate:      cgstRate,
			CGSTAmount:    cgstAmount,
			SGSTRate:      sgstRate,
			SGSTAmount:    sgstAmount,
			IGSTRate:      raw.IGSTRate,
			RoundOff:      roundOff,
			HasRoundOff:   hasRoundOff,
			InvoiceTotal:  finalTotal,
		},
	}
}

// ParseCustomer splits the combined "to" string on the first comma: the
// left part is the name, the remainder the address. With no comma the
// address repeats the whole input rather than staying empty — longstanding
// behavior that downstream templates rely on, so it is kept as is.
func ParseCustomer(to string) (name, address string) {
	before, after, found := strings.Cut(to, ",")
	name = strings.TrimSpace(before)
	if !found {
		return name, to
	}
	return name, strings.TrimSpace(after)
}

// normalizeItems coerces line items: qty and rate stay display strings
// exactly as they arrived (including empty), amount becomes a decimal with
// default 0.
func normalizeItems(items []model.RawItem) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, model.Item{
			Description: it.Name,
			HSNCode:     it.HSN,
			Quantity:    displayString(it.Qty),
			Rate:        displayString(it.Rate),
			Amount:      money.SafeParse(it.Amount, money.Zero),
		})
	}
	return out
}

// displayString stringifies whatever arrived in a loosely typed field.
// JSON numbers decode as float64; whole values print without the trailing
// ".0" a naive conversion would add.
func displayString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

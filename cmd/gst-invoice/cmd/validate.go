package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/gst-invoice/internal/money"
	"github.com/rezonia/gst-invoice/pkg/invoicegen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.json>",
	Short: "Check an invoice record without rendering it",
	Long: `Check a simplified invoice record: reports every missing required
field and prints the normalized tax summary so amounts and derived rates
can be reviewed before rendering.

Examples:
  gst-invoice validate invoice.json
  gst-invoice validate invoice.json --config company.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, missing, err := readInvoiceFile(args[0])
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		fmt.Printf("INVALID: missing required fields: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inv := invoicegen.NewGenerator(invoicegen.Options{Config: cfg}).Normalize(raw)
	ts := inv.TaxSummary

	fmt.Printf("OK: %s\n\n", invoicegen.Filename(raw.InvoiceNo))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Customer\t%s\n", inv.Customer.Name)
	fmt.Fprintf(w, "Address\t%s\n", inv.Customer.Address)
	fmt.Fprintf(w, "Items\t%d\n", len(inv.Items))
	fmt.Fprintf(w, "Taxable\t%s\n", money.Format(ts.TaxableAmount))
	fmt.Fprintf(w, "CGST\t%s (%s)\n", money.Format(ts.CGSTAmount), money.FormatRate(ts.CGSTRate))
	fmt.Fprintf(w, "SGST\t%s (%s)\n", money.Format(ts.SGSTAmount), money.FormatRate(ts.SGSTRate))
	if ts.HasRoundOff {
		fmt.Fprintf(w, "Round off\t%s\n", ts.RoundOff.StringFixed(2))
	}
	fmt.Fprintf(w, "Total\t%s\n", money.Format(ts.InvoiceTotal))
	return w.Flush()
}

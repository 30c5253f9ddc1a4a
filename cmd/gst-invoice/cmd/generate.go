package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gst-invoice/internal/logging"
	"github.com/rezonia/gst-invoice/pkg/invoicegen"
)

var (
	generateOutput string
	generateCheck  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <input.json>",
	Short: "Render an invoice PDF from a JSON record",
	Long: `Render a GST tax invoice PDF from a simplified JSON record.

The output filename defaults to invoice_<invoice_no>.pdf next to the
working directory; use -o to override.

Examples:
  # Render with defaults
  gst-invoice generate invoice.json

  # Explicit output path, with a structural check of the result
  gst-invoice generate invoice.json -o /tmp/out.pdf --check`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default invoice_<invoice_no>.pdf)")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Validate the generated PDF structurally")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New(true, verbose)

	raw, missing, err := readInvoiceFile(args[0])
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &invoicegen.MissingFieldsError{Fields: missing}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := invoicegen.NewGenerator(invoicegen.Options{Config: cfg, CheckOutput: generateCheck})

	path, err := gen.GenerateToFile(raw, generateOutput)
	if err != nil {
		return err
	}

	logger.Info().Str("file", path).Str("invoice_no", raw.InvoiceNo).Msg("invoice generated")
	fmt.Println(path)
	return nil
}

// readInvoiceFile loads and decodes an input record, reporting every
// missing required field.
func readInvoiceFile(path string) (*invoicegen.RawInvoice, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, fmt.Errorf("%s is not a JSON object: %w", path, err)
	}

	missing := invoicegen.CheckRequired(fields)

	var raw invoicegen.RawInvoice
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%s does not match the invoice schema: %w", path, err)
	}

	return &raw, missing, nil
}

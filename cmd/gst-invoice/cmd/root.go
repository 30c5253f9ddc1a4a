package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gst-invoice/internal/config"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gst-invoice",
	Short: "Generate GST-compliant tax invoice PDFs",
	Long: `gst-invoice renders GST tax invoices from a simplified JSON record.

The record carries the invoice header, a combined customer string, line
items, and the tax amounts; rates, round-off, and the amount-in-words line
are derived automatically.

Examples:
  # Render an invoice to invoice_<no>.pdf
  gst-invoice generate invoice.json

  # Render with a custom company configuration
  gst-invoice generate invoice.json --config company.yaml

  # Check an input record without rendering
  gst-invoice validate invoice.json

  # Run the HTTP API
  gst-invoice serve --address :8080

  # Spell out a number the way the invoice does
  gst-invoice words 29972`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (env: GSTINV_CONFIG)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if configPath == "" {
		configPath = os.Getenv("GSTINV_CONFIG")
	}
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/gst-invoice/internal/logging"
	"github.com/rezonia/gst-invoice/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for generating invoices.

The API provides endpoints for:
  - POST /api/v1/invoice    - Render an invoice PDF (JSON or base64 body)
  - POST /api/v1/normalize  - Return the canonical record without rendering
  - GET  /health            - Health check

Examples:
  # Start server on default port
  gst-invoice serve

  # Start on custom port with a company config
  gst-invoice serve --address :9090 --config company.yaml

  # Start in debug mode
  gst-invoice serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.New(false, verbose || serverDebug)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv := server.NewServer(&server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		App:          cfg,
	}, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	logger.Info().Str("address", serverAddr).Str("company", cfg.Company.Name).Msg("starting server")
	return srv.Run()
}

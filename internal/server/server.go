// Package server exposes invoice generation over HTTP.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appcfg "github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/normalize"
	"github.com/rezonia/gst-invoice/internal/pdf"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	App          appcfg.Config
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	generator *pdf.Generator
	logger    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config, logger zerolog.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	s := &Server{
		config:    config,
		router:    router,
		generator: pdf.NewGenerator(config.App.Layout),
		logger:    logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoice", s.handleInvoice)
		v1.POST("/normalize", s.handleNormalize)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleInvoice accepts a simplified invoice record (JSON, optionally
// base64-encoded) and responds with the rendered PDF as an attachment.
func (s *Server) handleInvoice(c *gin.Context) {
	raw, ok := s.bindInvoice(c)
	if !ok {
		return
	}

	inv := normalize.Normalize(raw, s.config.App)

	data, err := s.generator.Generate(inv)
	if err != nil {
		s.logger.Error().Err(err).Str("invoice_no", raw.InvoiceNo).Msg("render failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	filename := fmt.Sprintf("invoice_%s.pdf", raw.InvoiceNo)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// handleNormalize returns the canonical record without rendering, for
// callers that want to inspect the computed tax block.
func (s *Server) handleNormalize(c *gin.Context) {
	raw, ok := s.bindInvoice(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, normalize.Normalize(raw, s.config.App))
}

// bindInvoice reads and decodes the request body, reporting missing-fields
// and invalid-format errors itself. Returns ok=false when a response has
// already been written.
func (s *Server) bindInvoice(c *gin.Context) (*model.RawInvoice, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}

	raw, err := decodeInvoice(body)
	if err != nil {
		switch e := err.(type) {
		case *model.MissingFieldsError:
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:         "missing required fields",
				MissingFields: e.Fields,
			})
		case *model.FormatError:
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid format",
				Details: e.Message,
			})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return nil, false
	}

	return raw, true
}

// decodeInvoice parses a request body into a raw invoice. Bodies that are
// not JSON are tried as base64-wrapped JSON before being rejected, the way
// gateway integrations deliver them.
func decodeInvoice(body []byte) (*model.RawInvoice, error) {
	payload := bytes.TrimSpace(body)

	if len(payload) > 0 && payload[0] != '{' {
		decoded, err := base64.StdEncoding.DecodeString(string(payload))
		if err != nil {
			return nil, model.NewFormatError("request body is neither JSON nor base64-encoded JSON", err)
		}
		payload = bytes.TrimSpace(decoded)
	}

	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, model.NewFormatError("request body is not a JSON object", err)
	}

	if missing := model.MissingFields(fields); len(missing) > 0 {
		return nil, model.NewMissingFieldsError(missing)
	}

	var raw model.RawInvoice
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, model.NewFormatError("request body does not match the invoice schema", err)
	}

	return &raw, nil
}

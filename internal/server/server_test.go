package server_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/gst-invoice/internal/config"
	"github.com/rezonia/gst-invoice/internal/model"
	"github.com/rezonia/gst-invoice/internal/server"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	return server.NewServer(&server.Config{
		Address: ":0",
		App:     config.Default(),
	}, zerolog.Nop())
}

func post(t *testing.T, srv *server.Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

const validBody = `{
	"invoice_no": "134",
	"invoice_date": "05-Dec-2025",
	"to": "The Director, CSIR - National Metallurgical Laboratory, Jamshedpur - 831017",
	"job_description": "Platinum Jubilee",
	"items": [
		{"name": "Stage Programme PA System", "hsn": "997329", "qty": 1, "rate": "25400", "amount": "25400"}
	],
	"taxable_amount": "25400",
	"cgst": "2286",
	"sgst": "2286",
	"total": "29972"
}`

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestInvoice_Success(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/invoice", validBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice_134.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestInvoice_Base64Body(t *testing.T) {
	srv := newTestServer(t)
	encoded := base64.StdEncoding.EncodeToString([]byte(validBody))
	w := post(t, srv, "/api/v1/invoice", encoded)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestInvoice_MissingFields(t *testing.T) {
	srv := newTestServer(t)
	// lacks items and total: both must be reported, in stable order
	body := `{"invoice_no": "1", "invoice_date": "x", "to": "y", "taxable_amount": "5"}`
	w := post(t, srv, "/api/v1/invoice", body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing required fields", resp.Error)
	assert.Equal(t, []string{"items", "total"}, resp.MissingFields)
}

func TestInvoice_InvalidFormat(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/invoice", `{"invoice_no": `)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid format", resp.Error)
	assert.Empty(t, resp.MissingFields)
}

func TestInvoice_NotJSONNotBase64(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/invoice", "!!! definitely not json !!!")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid format")
}

func TestInvoice_EmptyBody(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/invoice", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty request body")
}

func TestNormalize(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/normalize", validBody)

	require.Equal(t, http.StatusOK, w.Code)

	var inv model.CanonicalInvoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))

	assert.Equal(t, "134", inv.InvoiceNumber)
	assert.Equal(t, "The Director", inv.Customer.Name)
	assert.Equal(t, "CSIR - National Metallurgical Laboratory, Jamshedpur - 831017", inv.Customer.Address)
	assert.True(t, inv.TaxSummary.InvoiceTotal.Equal(inv.TaxSummary.InvoiceTotal.Truncate(0)))
	assert.Equal(t, "GOPAL TENT HOUSE", inv.Company.Name)
}

func TestNormalize_MissingFields(t *testing.T) {
	srv := newTestServer(t)
	w := post(t, srv, "/api/v1/normalize", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t,
		[]string{"invoice_no", "invoice_date", "to", "items", "taxable_amount", "total"},
		resp.MissingFields)
}

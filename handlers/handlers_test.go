package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
	"github.com/yourusername/invoicely/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Invoice{},
		&models.Client{},
		&models.Template{},
		&models.BusinessProfile{},
		&models.Setting{},
	))
	store := repository.NewGormStore(db)

	return SetupRouter(Services{
		Invoices:  services.NewInvoiceService(store.Invoices()),
		Numbering: services.NewNumberingService(store.Settings()),
		Clients:   services.NewClientService(store.Clients()),
		Business:  services.NewBusinessService(store.BusinessProfile()),
		Templates: services.NewTemplateService(store.Templates()),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func invoiceRequest() CreateInvoiceRequest {
	return CreateInvoiceRequest{
		IssueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Client:    models.CompanyDetails{FirstName: "Grace", LastName: "Hopper", Email: "grace@client.test"},
		Items: []models.InvoiceItem{
			{Description: "Consulting", Quantity: 2, Price: 50},
			{Description: "Support", Quantity: 1, Price: 25},
		},
		TaxRate: 10,
		Adjustments: []models.Adjustment{
			{Type: models.AdjustmentAddition, Description: "Rush fee", Amount: 10},
		},
	}
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("Assigns Number And Computes Total", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/invoices", invoiceRequest())
		require.Equal(t, http.StatusCreated, w.Code)

		var inv models.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
		// No number in the request, so the numbering service issued one.
		assert.NotEmpty(t, inv.InvoiceNumber)
		assert.Contains(t, inv.InvoiceNumber, "INV-")
		assert.Equal(t, 147.5, inv.Total)
		assert.Equal(t, 147.5, inv.RemainingBalance)
		assert.Equal(t, models.StatusDraft, inv.Status)
	})

	t.Run("Validation Failure Returns Field", func(t *testing.T) {
		req := invoiceRequest()
		req.Items = []models.InvoiceItem{}
		w := doJSON(t, router, "POST", "/api/v1/invoices", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing Body Rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/invoices", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInvoiceLifecycleEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/invoices", invoiceRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var inv models.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))

	t.Run("Get", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/invoices/"+inv.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Get Missing Is 404", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/invoices/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update Memo", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/api/v1/invoices/"+inv.ID, map[string]any{"memo": "net 30"})
		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "net 30", updated.Memo)
		assert.Equal(t, inv.Total, updated.Total)
	})

	t.Run("Payment Flow", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/invoices/"+inv.ID+"/payments", map[string]any{
			"amount": 47.5,
			"method": "cash",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var after models.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
		assert.Equal(t, 100.0, after.RemainingBalance)
		assert.Equal(t, models.StatusPartial, after.Status)

		// Overpayment is rejected at the boundary.
		w = doJSON(t, router, "POST", "/api/v1/invoices/"+inv.ID+"/payments", map[string]any{
			"amount": 500.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "remaining balance")
	})

	t.Run("Toggle Paid", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/invoices/"+inv.ID+"/toggle-paid", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var toggled models.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
		assert.Equal(t, models.StatusPaid, toggled.Status)
	})

	t.Run("Filter By Status", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/invoices?status=paid", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []models.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)

		w = doJSON(t, router, "GET", "/api/v1/invoices?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/api/v1/invoices/"+inv.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = doJSON(t, router, "GET", "/api/v1/invoices/"+inv.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOverdueSweepEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req := invoiceRequest()
	req.Status = models.StatusSent
	req.DueDate = time.Now().AddDate(0, 0, -5)
	req.IssueDate = time.Now().AddDate(0, 0, -35)
	w := doJSON(t, router, "POST", "/api/v1/invoices", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/v1/invoices/overdue-sweep", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"marked":1`)
}

func TestClientEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/clients", map[string]any{
		"first_name":   "Grace",
		"last_name":    "Hopper",
		"company_name": "Navy Labs",
		"email":        "grace@navy.test",
		"phone":        "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var client models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))

	t.Run("Search", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/clients/search?q=navy", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []models.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/clients", map[string]any{
			"first_name": "X",
			"email":      "not-an-email",
			"phone":      "1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update And Delete", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/api/v1/clients/"+client.ID, map[string]any{"phone": "555-0199"})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "DELETE", "/api/v1/clients/"+client.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, "PUT", "/api/v1/clients/"+client.ID, map[string]any{"phone": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBusinessProfileEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/business-profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "PUT", "/api/v1/business-profile", map[string]any{
		"company_name": "Acme LLC",
		"first_name":   "Ada",
		"email":        "ada@acme.test",
		"default_memo": "Payment due within 30 days",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// New invoices inherit the profile's default memo and sender.
	w = doJSON(t, router, "POST", "/api/v1/invoices", invoiceRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var inv models.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, "Payment due within 30 days", inv.Memo)
	assert.Equal(t, "Acme LLC", inv.Sender.CompanyName)
}

func TestTemplateEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/templates", map[string]any{
		"name":   "Modern Blue",
		"layout": "modern",
		"theme":  map[string]string{"primary": "#1d4ed8", "secondary": "#93c5fd"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var tpl models.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))

	w = doJSON(t, router, "POST", "/api/v1/templates/"+tpl.ID+"/duplicate", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var dup models.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dup))
	assert.Equal(t, "Modern Blue (Copy)", dup.Name)

	w = doJSON(t, router, "GET", "/api/v1/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestNumberSettingsEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/settings/invoice-number", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg models.InvoiceNumberConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, models.DefaultInvoiceNumberConfig(), cfg)

	cfg.Format = "nn"
	cfg.Prefix = "ACME-"
	cfg.StartNumber = 5
	cfg.Padding = 2
	w = doJSON(t, router, "PUT", "/api/v1/settings/invoice-number", cfg)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/v1/settings/invoice-number/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ACME-05")

	bad := cfg
	bad.StartNumber = 0
	w = doJSON(t, router, "PUT", "/api/v1/settings/invoice-number", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/services"
)

type InvoiceHandler struct {
	invoices  *services.InvoiceService
	numbering *services.NumberingService
	business  *services.BusinessService
}

func NewInvoiceHandler(invoices *services.InvoiceService, numbering *services.NumberingService, business *services.BusinessService) *InvoiceHandler {
	return &InvoiceHandler{
		invoices:  invoices,
		numbering: numbering,
		business:  business,
	}
}

type CreateInvoiceRequest struct {
	InvoiceNumber string                `json:"invoice_number"`
	IssueDate     time.Time             `json:"issue_date" binding:"required"`
	DueDate       time.Time             `json:"due_date" binding:"required"`
	Sender        models.CompanyDetails `json:"sender"`
	Client        models.CompanyDetails `json:"client" binding:"required"`
	Items         []models.InvoiceItem  `json:"items" binding:"required"`
	TaxRate       float64               `json:"tax_rate"`
	Adjustments   []models.Adjustment   `json:"adjustments"`
	Memo          string                `json:"memo"`
	Status        models.InvoiceStatus  `json:"status"`
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Blank fields fall back to the configured defaults: the next
	// sequential number, the business profile as sender, and its
	// default memo.
	if req.InvoiceNumber == "" {
		req.InvoiceNumber = h.numbering.GenerateNextNumber()
	}
	if req.Sender == (models.CompanyDetails{}) {
		req.Sender = h.business.SenderDetails()
	}
	if req.Memo == "" {
		req.Memo = h.business.DefaultMemo()
	}

	invoice, err := h.invoices.Create(models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Sender:        req.Sender,
		Client:        req.Client,
		Items:         req.Items,
		TaxRate:       req.TaxRate,
		Adjustments:   req.Adjustments,
		Memo:          req.Memo,
		Status:        req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoices.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var (
		invoices []models.Invoice
		err      error
	)
	if status := c.Query("status"); status != "" {
		invoices, err = h.invoices.GetByStatus(models.InvoiceStatus(status))
	} else {
		invoices, err = h.invoices.GetAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var patch models.InvoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoices.Update(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoices.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type AddPaymentRequest struct {
	Amount float64              `json:"amount" binding:"required"`
	Date   time.Time            `json:"date"`
	Method models.PaymentMethod `json:"method"`
	Notes  string               `json:"notes"`
}

func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoices.AddPayment(c.Param("id"), models.Payment{
		Amount: req.Amount,
		Date:   req.Date,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) TogglePaid(c *gin.Context) {
	invoice, err := h.invoices.TogglePaid(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) OverdueSweep(c *gin.Context) {
	marked, err := h.invoices.MarkOverdue(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
	"github.com/yourusername/invoicely/utils"
)

// InvoiceService owns invoice validation, the authoritative total, and
// the payment/status state machine. All persistence goes through the
// repository; the service never cares which backend is behind it.
type InvoiceService struct {
	repo repository.InvoiceRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewInvoiceService(repo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		repo: repo,
		log:  logger.WithComponent("invoices"),
		now:  time.Now,
	}
}

// Create validates the invoice, recomputes its total and remaining
// balance from the line items, and persists it. Nothing is stored when
// validation fails.
func (s *InvoiceService) Create(inv models.Invoice) (*models.Invoice, error) {
	if inv.Status == "" {
		inv.Status = models.StatusDraft
	}
	ensureLineIDs(&inv)
	subtotal := utils.CalculateSubtotal(inv.Items)
	inv.Total = utils.CalculateTotal(subtotal, inv.TaxRate, inv.Adjustments)
	inv.RemainingBalance = inv.Total - paymentsSum(inv.Payments)

	if err := validateInvoice(&inv); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(&inv)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("invoice_id", created.ID).
		Str("invoice_number", created.InvoiceNumber).
		Float64("total", created.Total).
		Msg("invoice created")
	return created, nil
}

// Get returns the invoice or (nil, nil) when the id is unknown.
func (s *InvoiceService) Get(id string) (*models.Invoice, error) {
	return s.repo.GetByID(id)
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	return s.repo.GetAll()
}

func (s *InvoiceService) GetByStatus(status models.InvoiceStatus) ([]models.Invoice, error) {
	if !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.GetByStatus(status)
}

// Update applies the patch, recomputes total and remaining balance
// from the merged state, and validates the result before persisting.
func (s *InvoiceService) Update(id string, patch models.InvoicePatch) (*models.Invoice, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	merged := *existing
	patch.Apply(&merged)
	ensureLineIDs(&merged)

	subtotal := utils.CalculateSubtotal(merged.Items)
	total := utils.CalculateTotal(subtotal, merged.TaxRate, merged.Adjustments)
	remaining := total - paymentsSum(merged.Payments)
	merged.Total = total
	merged.RemainingBalance = remaining

	if err := validateInvoice(&merged); err != nil {
		return nil, err
	}

	patch.Items = &merged.Items
	patch.Adjustments = &merged.Adjustments
	patch.Total = &total
	patch.RemainingBalance = &remaining

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_id", id).Msg("invoice updated")
	return updated, nil
}

func (s *InvoiceService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("invoice_id", id).Msg("invoice deleted")
	return nil
}

// AddPayment appends a payment to the invoice ledger, recomputes the
// remaining balance and moves the status to partial or paid. Payments
// with a non-positive amount or exceeding the remaining balance are
// rejected without touching the invoice.
func (s *InvoiceService) AddPayment(invoiceID string, payment models.Payment) (*models.Invoice, error) {
	inv, err := s.repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, repository.ErrNotFound
	}

	if payment.Amount <= 0 {
		return nil, invalid("amount", "payment amount must be greater than zero")
	}
	if payment.Amount > inv.RemainingBalance {
		return nil, invalid("amount", "payment amount exceeds remaining balance")
	}
	if payment.Method == "" {
		payment.Method = models.MethodOther
	}
	if !payment.Method.Valid() {
		return nil, invalid("method", fmt.Sprintf("unknown payment method %q", payment.Method))
	}

	payment.ID = uuid.NewString()
	if payment.Date.IsZero() {
		payment.Date = s.now().UTC()
	}

	payments := append(append([]models.Payment{}, inv.Payments...), payment)
	remaining := inv.Total - paymentsSum(payments)
	status := models.StatusPartial
	if remaining <= 0 {
		status = models.StatusPaid
	}

	updated, err := s.repo.Update(invoiceID, models.InvoicePatch{
		Payments:         &payments,
		RemainingBalance: &remaining,
		Status:           &status,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("invoice_id", invoiceID).
		Str("payment_id", payment.ID).
		Float64("amount", payment.Amount).
		Float64("remaining_balance", remaining).
		Str("status", string(status)).
		Msg("payment recorded")
	return updated, nil
}

// TogglePaid flips the status between paid and sent without touching
// the payment ledger or the remaining balance. This is the manual
// override from the invoice list; the ledger and status can disagree
// afterwards, which is accepted behavior.
func (s *InvoiceService) TogglePaid(invoiceID string) (*models.Invoice, error) {
	inv, err := s.repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, repository.ErrNotFound
	}

	next := models.StatusPaid
	if inv.Status == models.StatusPaid {
		next = models.StatusSent
	}
	updated, err := s.repo.Update(invoiceID, models.InvoicePatch{Status: &next})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_id", invoiceID).Str("status", string(next)).Msg("paid status toggled")
	return updated, nil
}

// MarkOverdue moves every sent or partial invoice whose due date lies
// before asOf to overdue. Returns the number of invoices changed.
func (s *InvoiceService) MarkOverdue(asOf time.Time) (int, error) {
	var marked int
	for _, status := range []models.InvoiceStatus{models.StatusSent, models.StatusPartial} {
		invoices, err := s.repo.GetByStatus(status)
		if err != nil {
			return marked, err
		}
		for _, inv := range invoices {
			if inv.DueDate.IsZero() || !inv.DueDate.Before(asOf) {
				continue
			}
			overdue := models.StatusOverdue
			if _, err := s.repo.Update(inv.ID, models.InvoicePatch{Status: &overdue}); err != nil {
				return marked, err
			}
			marked++
		}
	}
	if marked > 0 {
		s.log.Info().Int("count", marked).Msg("invoices marked overdue")
	}
	return marked, nil
}

func validateInvoice(inv *models.Invoice) error {
	if inv.InvoiceNumber == "" {
		return invalid("invoice_number", "invoice number is required")
	}
	if inv.Client.FirstName == "" && inv.Client.CompanyName == "" {
		return invalid("client.first_name", "client name is required")
	}
	if inv.Client.Email == "" {
		return invalid("client.email", "client email is required")
	}
	if len(inv.Items) == 0 {
		return invalid("items", "at least one item is required")
	}
	if inv.TaxRate < 0 {
		return invalid("tax_rate", "tax rate cannot be negative")
	}
	if inv.Total < 0 {
		return invalid("total", "total amount cannot be negative")
	}
	if inv.IssueDate.IsZero() {
		return invalid("issue_date", "issue date is required")
	}
	if inv.DueDate.IsZero() {
		return invalid("due_date", "due date is required")
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return invalid("due_date", "due date cannot be before issue date")
	}
	if !inv.Status.Valid() {
		return invalid("status", fmt.Sprintf("unknown status %q", inv.Status))
	}
	return nil
}

func ensureLineIDs(inv *models.Invoice) {
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
	}
	for i := range inv.Adjustments {
		if inv.Adjustments[i].ID == "" {
			inv.Adjustments[i].ID = uuid.NewString()
		}
	}
}

func paymentsSum(payments []models.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

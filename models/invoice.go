package models

import (
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPartial InvoiceStatus = "partial"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPartial, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCreditCard, MethodOther:
		return true
	}
	return false
}

type AdjustmentType string

const (
	AdjustmentAddition  AdjustmentType = "addition"
	AdjustmentDeduction AdjustmentType = "deduction"
)

// InvoiceItem is a single line on an invoice. The line amount is
// quantity times price; negative values are not rejected here, they
// simply propagate into the subtotal.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Adjustment is a named addition or deduction applied against the
// subtotal, either as a flat amount or as a percentage of it.
type Adjustment struct {
	ID           string         `json:"id"`
	Type         AdjustmentType `json:"type"`
	Description  string         `json:"description"`
	Amount       float64        `json:"amount"`
	IsPercentage bool           `json:"is_percentage"`
}

// Payment is an append-only record of money received against an
// invoice. Payments are never updated or deleted once recorded.
type Payment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Method PaymentMethod `json:"method"`
	Notes  string        `json:"notes,omitempty"`
}

// Invoice is the full invoice record. Sender and client details are
// copied in by value when the invoice is created, so later profile
// edits never rewrite historical invoices. Items, adjustments and
// payments are owned by the invoice and stored as JSON columns.
type Invoice struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	InvoiceNumber    string         `gorm:"size:50;not null;index" json:"invoice_number"`
	IssueDate        time.Time      `json:"issue_date"`
	DueDate          time.Time      `json:"due_date"`
	Sender           CompanyDetails `gorm:"serializer:json" json:"sender"`
	Client           CompanyDetails `gorm:"serializer:json" json:"client"`
	Items            []InvoiceItem  `gorm:"serializer:json" json:"items"`
	TaxRate          float64        `gorm:"default:0" json:"tax_rate"`
	Adjustments      []Adjustment   `gorm:"serializer:json" json:"adjustments"`
	Memo             string         `gorm:"type:text" json:"memo,omitempty"`
	Status           InvoiceStatus  `gorm:"size:20;default:'draft';index" json:"status"`
	Total            float64        `gorm:"not null" json:"total"`
	Payments         []Payment      `gorm:"serializer:json" json:"payments"`
	RemainingBalance float64        `json:"remaining_balance"`
}

// TableName overrides the table name
func (Invoice) TableName() string {
	return "invoices"
}

// InvoicePatch is a partial update to an invoice. Nil fields are left
// untouched; set fields replace the stored value wholesale. Total,
// Payments and RemainingBalance are derived server-side and cannot be
// set through the API.
type InvoicePatch struct {
	InvoiceNumber    *string         `json:"invoice_number,omitempty"`
	IssueDate        *time.Time      `json:"issue_date,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	Sender           *CompanyDetails `json:"sender,omitempty"`
	Client           *CompanyDetails `json:"client,omitempty"`
	Items            *[]InvoiceItem  `json:"items,omitempty"`
	TaxRate          *float64        `json:"tax_rate,omitempty"`
	Adjustments      *[]Adjustment   `json:"adjustments,omitempty"`
	Memo             *string         `json:"memo,omitempty"`
	Status           *InvoiceStatus  `json:"status,omitempty"`
	Total            *float64        `json:"-"`
	Payments         *[]Payment      `json:"-"`
	RemainingBalance *float64        `json:"-"`
}

// Apply copies every set field of the patch onto inv.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Sender != nil {
		inv.Sender = *p.Sender
	}
	if p.Client != nil {
		inv.Client = *p.Client
	}
	if p.Items != nil {
		inv.Items = *p.Items
	}
	if p.TaxRate != nil {
		inv.TaxRate = *p.TaxRate
	}
	if p.Adjustments != nil {
		inv.Adjustments = *p.Adjustments
	}
	if p.Memo != nil {
		inv.Memo = *p.Memo
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Total != nil {
		inv.Total = *p.Total
	}
	if p.Payments != nil {
		inv.Payments = *p.Payments
	}
	if p.RemainingBalance != nil {
		inv.RemainingBalance = *p.RemainingBalance
	}
}

package repository

import (
	"errors"

	"github.com/yourusername/invoicely/models"
)

// ErrNotFound is returned by mutating operations when the target id
// does not exist. Read operations return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

// InvoiceRepository is the persistence contract for invoices. Callers
// must not depend on which backend is active: GetByID returns
// (nil, nil) for a missing id, Update fails with ErrNotFound, Delete
// is idempotent, and GetAll carries no ordering guarantee.
type InvoiceRepository interface {
	Create(inv *models.Invoice) (*models.Invoice, error)
	GetByID(id string) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	Update(id string, patch models.InvoicePatch) (*models.Invoice, error)
	Delete(id string) error
	GetByStatus(status models.InvoiceStatus) ([]models.Invoice, error)
}

// ClientRepository persists client profiles.
type ClientRepository interface {
	Create(c *models.Client) (*models.Client, error)
	GetByID(id string) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Update(id string, patch models.ClientPatch) (*models.Client, error)
	Delete(id string) error
}

// TemplateRepository persists invoice templates.
type TemplateRepository interface {
	Create(t *models.Template) (*models.Template, error)
	GetByID(id string) (*models.Template, error)
	GetAll() ([]models.Template, error)
	Update(id string, patch models.TemplatePatch) (*models.Template, error)
	Delete(id string) error
}

// BusinessProfileStore holds the single sender profile. Load returns
// (nil, nil) until a profile has been saved.
type BusinessProfileStore interface {
	Load() (*models.BusinessProfile, error)
	Save(p *models.BusinessProfile) (*models.BusinessProfile, error)
}

// SettingsStore persists the numbering configuration as a JSON blob
// under its well-known key. Load returns (nil, nil) when nothing has
// been stored yet.
type SettingsStore interface {
	LoadInvoiceNumberConfig() (*models.InvoiceNumberConfig, error)
	SaveInvoiceNumberConfig(cfg models.InvoiceNumberConfig) error
}

// Store aggregates every repository a backend provides.
type Store interface {
	Invoices() InvoiceRepository
	Clients() ClientRepository
	Templates() TemplateRepository
	BusinessProfile() BusinessProfileStore
	Settings() SettingsStore
	Close() error
}

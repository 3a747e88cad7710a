package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/invoicely/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the relational backend, used with the postgres driver
// in production and the sqlite driver in tests.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Invoices() InvoiceRepository           { return &gormInvoices{db: s.db} }
func (s *GormStore) Clients() ClientRepository             { return &gormClients{db: s.db} }
func (s *GormStore) Templates() TemplateRepository         { return &gormTemplates{db: s.db} }
func (s *GormStore) BusinessProfile() BusinessProfileStore { return &gormBusiness{db: s.db} }
func (s *GormStore) Settings() SettingsStore               { return &gormSettings{db: s.db} }

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormInvoices struct {
	db *gorm.DB
}

func (r *gormInvoices) Create(inv *models.Invoice) (*models.Invoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if err := r.db.Create(inv).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}

func (r *gormInvoices) GetByID(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &inv, nil
}

func (r *gormInvoices) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (r *gormInvoices) Update(id string, patch models.InvoicePatch) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	patch.Apply(&inv)
	if err := r.db.Save(&inv).Error; err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return &inv, nil
}

func (r *gormInvoices) Delete(id string) error {
	if err := r.db.Delete(&models.Invoice{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (r *gormInvoices) GetByStatus(status models.InvoiceStatus) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Where("status = ?", status).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices by status: %w", err)
	}
	return invoices, nil
}

type gormClients struct {
	db *gorm.DB
}

func (r *gormClients) Create(c *models.Client) (*models.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.Create(c).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func (r *gormClients) GetByID(id string) (*models.Client, error) {
	var c models.Client
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

func (r *gormClients) GetAll() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *gormClients) Update(id string, patch models.ClientPatch) (*models.Client, error) {
	var c models.Client
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	patch.Apply(&c)
	if err := r.db.Save(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &c, nil
}

func (r *gormClients) Delete(id string) error {
	if err := r.db.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

type gormTemplates struct {
	db *gorm.DB
}

func (r *gormTemplates) Create(t *models.Template) (*models.Template, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := r.db.Create(t).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return t, nil
}

func (r *gormTemplates) GetByID(id string) (*models.Template, error) {
	var t models.Template
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}

func (r *gormTemplates) GetAll() ([]models.Template, error) {
	var templates []models.Template
	if err := r.db.Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *gormTemplates) Update(id string, patch models.TemplatePatch) (*models.Template, error) {
	var t models.Template
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	patch.Apply(&t)
	if err := r.db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return &t, nil
}

func (r *gormTemplates) Delete(id string) error {
	if err := r.db.Delete(&models.Template{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

type gormBusiness struct {
	db *gorm.DB
}

// businessProfileID pins the profile to a single row.
const businessProfileID = "default"

func (r *gormBusiness) Load() (*models.BusinessProfile, error) {
	var p models.BusinessProfile
	err := r.db.First(&p, "id = ?", businessProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}
	return &p, nil
}

func (r *gormBusiness) Save(p *models.BusinessProfile) (*models.BusinessProfile, error) {
	p.ID = businessProfileID
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save business profile: %w", err)
	}
	return p, nil
}

type gormSettings struct {
	db *gorm.DB
}

func (r *gormSettings) LoadInvoiceNumberConfig() (*models.InvoiceNumberConfig, error) {
	var row models.Setting
	err := r.db.First(&row, "key = ?", models.InvoiceNumberSettingsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	var cfg models.InvoiceNumberConfig
	if err := json.Unmarshal([]byte(row.Value), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &cfg, nil
}

func (r *gormSettings) SaveInvoiceNumberConfig(cfg models.InvoiceNumberConfig) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	row := models.Setting{Key: models.InvoiceNumberSettingsKey, Value: string(value)}
	err = r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

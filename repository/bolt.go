package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/invoicely/models"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketInvoices  = []byte("invoices")
	bucketClients   = []byte("clients")
	bucketTemplates = []byte("templates")
	bucketBusiness  = []byte("business")
	bucketSettings  = []byte("settings")
)

// BoltStore is the embedded single-file backend. Every record is a
// JSON blob keyed by id inside its bucket, mirroring the browser
// localStorage layout the app originally shipped with.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketInvoices, bucketClients, bucketTemplates, bucketBusiness, bucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Invoices() InvoiceRepository           { return &boltInvoices{db: s.db} }
func (s *BoltStore) Clients() ClientRepository             { return &boltClients{db: s.db} }
func (s *BoltStore) Templates() TemplateRepository         { return &boltTemplates{db: s.db} }
func (s *BoltStore) BusinessProfile() BusinessProfileStore { return &boltBusiness{db: s.db} }
func (s *BoltStore) Settings() SettingsStore               { return &boltSettings{db: s.db} }

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func putJSON(tx *bolt.Tx, bucket []byte, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return tx.Bucket(bucket).Put([]byte(key), data)
}

type boltInvoices struct {
	db *bolt.DB
}

func (r *boltInvoices) Create(inv *models.Invoice) (*models.Invoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	err := r.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, bucketInvoices, inv.ID, inv)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}

func (r *boltInvoices) GetByID(id string) (*models.Invoice, error) {
	var inv *models.Invoice
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketInvoices).Get([]byte(id))
		if data == nil {
			return nil
		}
		inv = &models.Invoice{}
		return json.Unmarshal(data, inv)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

func (r *boltInvoices) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInvoices).ForEach(func(_, data []byte) error {
			var inv models.Invoice
			if err := json.Unmarshal(data, &inv); err != nil {
				return err
			}
			invoices = append(invoices, inv)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (r *boltInvoices) Update(id string, patch models.InvoicePatch) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketInvoices).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(data, &inv); err != nil {
			return err
		}
		patch.Apply(&inv)
		inv.UpdatedAt = time.Now().UTC()
		return putJSON(tx, bucketInvoices, id, &inv)
	})
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return &inv, nil
}

func (r *boltInvoices) Delete(id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInvoices).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (r *boltInvoices) GetByStatus(status models.InvoiceStatus) ([]models.Invoice, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var filtered []models.Invoice
	for _, inv := range all {
		if inv.Status == status {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

type boltClients struct {
	db *bolt.DB
}

func (r *boltClients) Create(c *models.Client) (*models.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	err := r.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, bucketClients, c.ID, c)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func (r *boltClients) GetByID(id string) (*models.Client, error) {
	var c *models.Client
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketClients).Get([]byte(id))
		if data == nil {
			return nil
		}
		c = &models.Client{}
		return json.Unmarshal(data, c)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (r *boltClients) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketClients).ForEach(func(_, data []byte) error {
			var c models.Client
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			clients = append(clients, c)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *boltClients) Update(id string, patch models.ClientPatch) (*models.Client, error) {
	var c models.Client
	err := r.db.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketClients).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		patch.Apply(&c)
		c.UpdatedAt = time.Now().UTC()
		return putJSON(tx, bucketClients, id, &c)
	})
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &c, nil
}

func (r *boltClients) Delete(id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketClients).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

type boltTemplates struct {
	db *bolt.DB
}

func (r *boltTemplates) Create(t *models.Template) (*models.Template, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	err := r.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, bucketTemplates, t.ID, t)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return t, nil
}

func (r *boltTemplates) GetByID(id string) (*models.Template, error) {
	var t *models.Template
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketTemplates).Get([]byte(id))
		if data == nil {
			return nil
		}
		t = &models.Template{}
		return json.Unmarshal(data, t)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return t, nil
}

func (r *boltTemplates) GetAll() ([]models.Template, error) {
	var templates []models.Template
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTemplates).ForEach(func(_, data []byte) error {
			var t models.Template
			if err := json.Unmarshal(data, &t); err != nil {
				return err
			}
			templates = append(templates, t)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *boltTemplates) Update(id string, patch models.TemplatePatch) (*models.Template, error) {
	var t models.Template
	err := r.db.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketTemplates).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		patch.Apply(&t)
		t.UpdatedAt = time.Now().UTC()
		return putJSON(tx, bucketTemplates, id, &t)
	})
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return &t, nil
}

func (r *boltTemplates) Delete(id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTemplates).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

type boltBusiness struct {
	db *bolt.DB
}

const businessProfileKey = "default"

func (r *boltBusiness) Load() (*models.BusinessProfile, error) {
	var p *models.BusinessProfile
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketBusiness).Get([]byte(businessProfileKey))
		if data == nil {
			return nil
		}
		p = &models.BusinessProfile{}
		return json.Unmarshal(data, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}
	return p, nil
}

func (r *boltBusiness) Save(p *models.BusinessProfile) (*models.BusinessProfile, error) {
	p.ID = businessProfileKey
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	err := r.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, bucketBusiness, businessProfileKey, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save business profile: %w", err)
	}
	return p, nil
}

type boltSettings struct {
	db *bolt.DB
}

func (r *boltSettings) LoadInvoiceNumberConfig() (*models.InvoiceNumberConfig, error) {
	var cfg *models.InvoiceNumberConfig
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSettings).Get([]byte(models.InvoiceNumberSettingsKey))
		if data == nil {
			return nil
		}
		cfg = &models.InvoiceNumberConfig{}
		return json.Unmarshal(data, cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

func (r *boltSettings) SaveInvoiceNumberConfig(cfg models.InvoiceNumberConfig) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, bucketSettings, models.InvoiceNumberSettingsKey, cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

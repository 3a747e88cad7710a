package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a counterparty profile. Its details are copied into an
// invoice's client field at creation time.
type Client struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName   string         `gorm:"size:100;not null" json:"first_name"`
	LastName    string         `gorm:"size:100" json:"last_name"`
	CompanyName string         `gorm:"size:255" json:"company_name,omitempty"`
	Email       string         `gorm:"size:255;not null;index" json:"email"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Address     Address        `gorm:"serializer:json" json:"address"`
	TaxID       string         `gorm:"size:50" json:"tax_id,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
}

// TableName overrides the table name
func (Client) TableName() string {
	return "clients"
}

// Details returns the value copy embedded into invoices.
func (c *Client) Details() CompanyDetails {
	return CompanyDetails{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
	}
}

type ClientPatch struct {
	FirstName   *string  `json:"first_name,omitempty"`
	LastName    *string  `json:"last_name,omitempty"`
	CompanyName *string  `json:"company_name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Address     *Address `json:"address,omitempty"`
	TaxID       *string  `json:"tax_id,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

func (p ClientPatch) Apply(c *Client) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.TaxID != nil {
		c.TaxID = *p.TaxID
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

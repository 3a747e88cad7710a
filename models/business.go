package models

import "time"

// BusinessProfile is the sender identity for outgoing invoices. There
// is a single profile per installation; DefaultMemo is applied to new
// invoices that do not carry their own memo.
type BusinessProfile struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CompanyName string    `gorm:"size:255" json:"company_name,omitempty"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100" json:"last_name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Address     Address   `gorm:"serializer:json" json:"address"`
	Logo        string    `gorm:"size:500" json:"logo,omitempty"`
	TaxID       string    `gorm:"size:50" json:"tax_id,omitempty"`
	DefaultMemo string    `gorm:"type:text" json:"default_memo,omitempty"`
}

// TableName overrides the table name
func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// Details returns the value copy embedded into invoices as the sender.
func (p *BusinessProfile) Details() CompanyDetails {
	return CompanyDetails{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		CompanyName: p.CompanyName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Logo:        p.Logo,
	}
}

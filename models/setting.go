package models

import "time"

// Setting is a key/value row for JSON-serialized application settings
// such as the invoice numbering configuration.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Setting) TableName() string {
	return "settings"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Theme holds the two accent colors a template renders with.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Template is a saved invoice template: a named layout plus theme
// colors and an optional default memo.
type Template struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Layout      string         `gorm:"size:50;default:'modern'" json:"layout"` // modern, minimal, professional, executive, premium
	Theme       Theme          `gorm:"serializer:json" json:"theme"`
	DefaultMemo string         `gorm:"type:text" json:"default_memo,omitempty"`
	IsDefault   bool           `gorm:"default:false" json:"is_default"`
}

// TableName overrides the table name
func (Template) TableName() string {
	return "templates"
}

type TemplatePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Layout      *string `json:"layout,omitempty"`
	Theme       *Theme  `json:"theme,omitempty"`
	DefaultMemo *string `json:"default_memo,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

func (p TemplatePatch) Apply(t *Template) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Layout != nil {
		t.Layout = *p.Layout
	}
	if p.Theme != nil {
		t.Theme = *p.Theme
	}
	if p.DefaultMemo != nil {
		t.DefaultMemo = *p.DefaultMemo
	}
	if p.IsDefault != nil {
		t.IsDefault = *p.IsDefault
	}
}

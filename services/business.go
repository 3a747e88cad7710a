package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
)

// BusinessService manages the single sender profile and its default
// memo for new invoices.
type BusinessService struct {
	store repository.BusinessProfileStore
	log   zerolog.Logger
}

func NewBusinessService(store repository.BusinessProfileStore) *BusinessService {
	return &BusinessService{
		store: store,
		log:   logger.WithComponent("business"),
	}
}

// Get returns the profile or (nil, nil) when none has been saved.
func (s *BusinessService) Get() (*models.BusinessProfile, error) {
	return s.store.Load()
}

func (s *BusinessService) Save(p models.BusinessProfile) (*models.BusinessProfile, error) {
	if strings.TrimSpace(p.FirstName) == "" && strings.TrimSpace(p.CompanyName) == "" {
		return nil, invalid("first_name", "name is required")
	}
	if !emailPattern.MatchString(p.Email) {
		return nil, invalid("email", "invalid email address")
	}
	saved, err := s.store.Save(&p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("company", saved.CompanyName).Msg("business profile saved")
	return saved, nil
}

// DefaultMemo returns the profile's default memo, or "" when no
// profile exists or it has none set.
func (s *BusinessService) DefaultMemo() string {
	p, err := s.store.Load()
	if err != nil || p == nil {
		return ""
	}
	return p.DefaultMemo
}

// SenderDetails returns the profile as the value copy embedded into
// new invoices, or the zero value when no profile exists.
func (s *BusinessService) SenderDetails() models.CompanyDetails {
	p, err := s.store.Load()
	if err != nil || p == nil {
		return models.CompanyDetails{}
	}
	return p.Details()
}

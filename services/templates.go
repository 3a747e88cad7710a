package services

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
)

// TemplateService is the CRUD store for invoice templates.
type TemplateService struct {
	repo repository.TemplateRepository
	log  zerolog.Logger
}

func NewTemplateService(repo repository.TemplateRepository) *TemplateService {
	return &TemplateService{
		repo: repo,
		log:  logger.WithComponent("templates"),
	}
}

func (s *TemplateService) Create(t models.Template) (*models.Template, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, invalid("name", "template name is required")
	}
	created, err := s.repo.Create(&t)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("template_id", created.ID).Str("name", created.Name).Msg("template created")
	return created, nil
}

// Get returns the template or (nil, nil) when the id is unknown.
func (s *TemplateService) Get(id string) (*models.Template, error) {
	return s.repo.GetByID(id)
}

func (s *TemplateService) GetAll() ([]models.Template, error) {
	return s.repo.GetAll()
}

func (s *TemplateService) Update(id string, patch models.TemplatePatch) (*models.Template, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	merged := *existing
	patch.Apply(&merged)
	if strings.TrimSpace(merged.Name) == "" {
		return nil, invalid("name", "template name is required")
	}
	return s.repo.Update(id, patch)
}

func (s *TemplateService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Duplicate stores a copy of the template under a fresh id with
// " (Copy)" appended to the name. Copies are never the default.
func (s *TemplateService) Duplicate(id string) (*models.Template, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	dup := *existing
	dup.ID = ""
	dup.CreatedAt = time.Time{}
	dup.UpdatedAt = time.Time{}
	dup.Name = existing.Name + " (Copy)"
	dup.IsDefault = false
	created, err := s.repo.Create(&dup)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("template_id", created.ID).Str("source_id", id).Msg("template duplicated")
	return created, nil
}

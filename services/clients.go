package services

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ClientService is the CRUD store for counterparty profiles.
type ClientService struct {
	repo repository.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{
		repo: repo,
		log:  logger.WithComponent("clients"),
	}
}

func (s *ClientService) Create(c models.Client) (*models.Client, error) {
	if err := validateClient(c.FirstName, c.Email, c.Phone); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(&c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("client_id", created.ID).Str("email", created.Email).Msg("client created")
	return created, nil
}

// Get returns the client or (nil, nil) when the id is unknown.
func (s *ClientService) Get(id string) (*models.Client, error) {
	return s.repo.GetByID(id)
}

func (s *ClientService) GetAll() ([]models.Client, error) {
	return s.repo.GetAll()
}

func (s *ClientService) Update(id string, patch models.ClientPatch) (*models.Client, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	merged := *existing
	patch.Apply(&merged)
	if err := validateClient(merged.FirstName, merged.Email, merged.Phone); err != nil {
		return nil, err
	}
	return s.repo.Update(id, patch)
}

func (s *ClientService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Search matches the query case-insensitively against first name,
// last name, company name and email. An empty query returns every
// client.
func (s *ClientService) Search(query string) ([]models.Client, error) {
	clients, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients, nil
	}
	var matched []models.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) ||
			strings.Contains(strings.ToLower(c.CompanyName), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func validateClient(firstName, email, phone string) error {
	if strings.TrimSpace(firstName) == "" {
		return invalid("first_name", "name is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email", "invalid email address")
	}
	if strings.TrimSpace(phone) == "" {
		return invalid("phone", "phone is required")
	}
	return nil
}

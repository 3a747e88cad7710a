package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
)

// NumberingService hands out sequential, formatted invoice numbers.
// One instance is shared per process; the counter lives in memory and
// only the configuration is persisted, so replacing the configuration
// restarts the sequence at startNumber. Separate processes each carry
// their own counter and can emit duplicate numbers; the design assumes
// a single writer.
type NumberingService struct {
	mu         sync.Mutex
	store      repository.SettingsStore
	config     models.InvoiceNumberConfig
	lastNumber int
	log        zerolog.Logger
	now        func() time.Time
}

// NewNumberingService loads the persisted configuration, falling back
// to the defaults when nothing is stored or loading fails.
func NewNumberingService(store repository.SettingsStore) *NumberingService {
	s := &NumberingService{
		store:  store,
		config: models.DefaultInvoiceNumberConfig(),
		log:    logger.WithComponent("numbering"),
		now:    time.Now,
	}
	s.lastNumber = s.config.StartNumber - 1

	cfg, err := store.LoadInvoiceNumberConfig()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load numbering settings, using defaults")
		return s
	}
	if cfg != nil {
		s.config = *cfg
		s.lastNumber = cfg.StartNumber - 1
	}
	return s
}

// Config returns a copy of the current configuration.
func (s *NumberingService) Config() models.InvoiceNumberConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// SetConfig replaces the configuration, persists it, and resets the
// counter to startNumber - 1. The reset happens on every call, even
// when only cosmetic fields changed; that restart-on-reconfigure
// behavior is part of the contract.
func (s *NumberingService) SetConfig(cfg models.InvoiceNumberConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveInvoiceNumberConfig(cfg); err != nil {
		return err
	}
	s.config = cfg
	s.lastNumber = cfg.StartNumber - 1
	s.log.Info().
		Str("format", cfg.Format).
		Int("start_number", cfg.StartNumber).
		Msg("numbering configuration replaced")
	return nil
}

// GenerateNextNumber increments the counter and renders it through the
// configured format. Each token is substituted once: "dd" with the
// two-digit year, "mm" with the zero-padded month, "nn" with the
// counter padded to the configured width. Hyphens remaining in the
// body are then rendered as the configured separator, and the result
// is wrapped in prefix and suffix.
func (s *NumberingService) GenerateNextNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastNumber++
	now := s.now()
	year := fmt.Sprintf("%02d", now.Year()%100)
	month := fmt.Sprintf("%02d", int(now.Month()))
	number := fmt.Sprintf("%0*d", s.config.Padding, s.lastNumber)

	body := strings.Replace(s.config.Format, "dd", year, 1)
	body = strings.Replace(body, "mm", month, 1)
	body = strings.Replace(body, "nn", number, 1)
	body = strings.ReplaceAll(body, "-", s.config.Separator)

	return s.config.Prefix + body + s.config.Suffix
}

// LastNumber returns the most recently issued counter value, or
// startNumber - 1 when nothing has been generated yet.
func (s *NumberingService) LastNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastNumber
}

// ResetCounter rewinds the sequence to startNumber - 1 without
// touching the stored configuration.
func (s *NumberingService) ResetCounter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastNumber = s.config.StartNumber - 1
}

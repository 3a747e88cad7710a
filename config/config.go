package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port           string
	DatabaseURL    string
	StorageBackend string // postgres or bolt
	BoltPath       string
	LogLevel       string
	LogFormat      string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		StorageBackend: getEnvOrDefault("STORAGE_BACKEND", "postgres"),
		BoltPath:       getEnvOrDefault("BOLT_PATH", "invoicely.db"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "console"),
	}, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Invoice{},
		&models.Client{},
		&models.Template{},
		&models.BusinessProfile{},
		&models.Setting{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// OpenStore picks the persistence backend from configuration. Both
// backends satisfy the same repository contract; nothing above this
// call knows which one is active.
func OpenStore(cfg *Config) (repository.Store, error) {
	switch cfg.StorageBackend {
	case "bolt":
		return repository.NewBoltStore(cfg.BoltPath)
	case "postgres":
		db, err := InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

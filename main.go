package main

import (
	"log"

	"github.com/yourusername/invoicely/cmd"
	"github.com/yourusername/invoicely/config"
	"github.com/yourusername/invoicely/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}

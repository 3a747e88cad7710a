package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourusername/invoicely/config"
	"github.com/yourusername/invoicely/handlers"
	"github.com/yourusername/invoicely/logger"
	"github.com/yourusername/invoicely/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the invoicely API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := config.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	router := handlers.SetupRouter(handlers.Services{
		Invoices:  services.NewInvoiceService(store.Invoices()),
		Numbering: services.NewNumberingService(store.Settings()),
		Clients:   services.NewClientService(store.Clients()),
		Business:  services.NewBusinessService(store.BusinessProfile()),
		Templates: services.NewTemplateService(store.Templates()),
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("port", port).
		Str("backend", cfg.StorageBackend).
		Msg("starting invoicely API server")
	return router.Run(":" + port)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "invoicely",
	Short:   "Invoicely - invoice generation and management API",
	Long:    "Invoicely is the backend for a web invoice application: client and business profiles, invoices with line items, tax and adjustment calculation, configurable invoice numbering, and payment tracking.",
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

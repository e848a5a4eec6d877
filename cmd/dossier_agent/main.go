// Package main provides the entry point for the dossier builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dossier_agent",
	Short: "Application dossier builder",
	Long:  "Dossier builder assembles student application dossiers from an export bundle: generated cover, profile, project and grade pages merged with uploaded PDFs into one document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

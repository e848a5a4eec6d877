package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/dossier-builder/internal/bundle"
	"github.com/jonathan/dossier-builder/internal/radar"
)

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Render the competency radar as a PNG image",
	Long:  "Render the competency radar from a bundle's competency categories and write it as a standalone PNG image.",
	RunE:  runRadar,
}

var (
	radarBundlePath string
	radarOutPath    string
	radarSize       int
)

func init() {
	radarCmd.Flags().StringVarP(&radarBundlePath, "bundle", "b", "", "Path to export bundle JSON file (required)")
	radarCmd.Flags().StringVarP(&radarOutPath, "out", "o", "radar.png", "Output PNG path")
	radarCmd.Flags().IntVar(&radarSize, "size", 0, "Canvas edge length in pixels")

	radarCmd.MarkFlagRequired("bundle")

	rootCmd.AddCommand(radarCmd)
}

func runRadar(_ *cobra.Command, _ []string) error {
	b, err := bundle.Load(radarBundlePath)
	if err != nil {
		return err
	}

	if len(b.Categories) == 0 {
		return fmt.Errorf("bundle has no competency categories")
	}

	png, err := radar.RenderPNG(b.Categories, radar.Options{Size: radarSize})
	if err != nil {
		return fmt.Errorf("rendering radar: %w", err)
	}

	if err := os.WriteFile(radarOutPath, png, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", radarOutPath, err)
	}

	fmt.Fprintf(os.Stdout, "Radar written to %s\n", radarOutPath)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/dossier-builder/internal/bundle"
	"github.com/jonathan/dossier-builder/internal/config"
	"github.com/jonathan/dossier-builder/internal/delivery"
	"github.com/jonathan/dossier-builder/internal/merge"
	"github.com/jonathan/dossier-builder/internal/observability"
	"github.com/jonathan/dossier-builder/internal/payload"
	"github.com/jonathan/dossier-builder/internal/radar"
	"github.com/jonathan/dossier-builder/internal/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a dossier PDF from an export bundle",
	Long:  "Build a dossier PDF from an export bundle JSON file. Generated sections are rendered, uploaded documents are decoded, and everything is merged in section order.",
	RunE:  runBuild,
}

var (
	buildBundlePath     string
	buildOutDir         string
	buildConfigPath     string
	buildRadarSize      int
	buildMaxUploadBytes int64
	buildVerbose        bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildBundlePath, "bundle", "b", "", "Path to export bundle JSON file")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", ".", "Output directory for the generated PDF")
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to JSON config file")
	buildCmd.Flags().IntVar(&buildRadarSize, "radar-size", 0, "Radar raster size in pixels")
	buildCmd.Flags().Int64Var(&buildMaxUploadBytes, "max-upload-bytes", 0, "Size cap for a single uploaded document")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Bundle:         buildBundlePath,
		OutputDir:      buildOutDir,
		RadarSize:      buildRadarSize,
		MaxUploadBytes: buildMaxUploadBytes,
		Verbose:        buildVerbose,
	}

	if buildConfigPath != "" {
		fileCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Bundle == "" {
		return fmt.Errorf("a bundle file is required; pass --bundle or set 'bundle' in the config")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	b, err := bundle.Load(cfg.Bundle)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
		printer.PrintBundleSummary(b)
		printer.PrintSectionPlan(b.Sections)
	}

	ensureRadarImage(b, cfg.RadarSize)

	result, err := merge.Merge(b, merge.Options{MaxUploadBytes: cfg.MaxUploadBytes})
	if err != nil {
		return err
	}

	if printer != nil {
		printer.PrintMergeResult(result)
	}

	filename := delivery.SuggestedFilename(b.Profile.Name)
	path, err := delivery.WriteFile(cfg.OutputDir, filename, result.PDF)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Dossier written to %s (%d pages)\n", path, result.PageCount)
	if n := len(result.Issues); n > 0 {
		fmt.Fprintf(os.Stdout, "Warning: %d sections were skipped\n", n)
	}

	return nil
}

// ensureRadarImage rasterizes the competency radar from the bundle's
// categories when no pre-rendered image was exported with it.
func ensureRadarImage(b *types.ExportBundle, size int) {
	if b.RadarImage != "" || len(b.Categories) == 0 {
		return
	}
	png, err := radar.RenderPNG(b.Categories, radar.Options{Size: size})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: rendering radar: %v\n", err)
		return
	}
	b.RadarImage = payload.Encode(png)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/dossier-builder/internal/config"
	"github.com/jonathan/dossier-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes endpoints for building dossiers and rendering competency radars.`,
	RunE:  runServe,
}

var (
	servePort           int
	serveConfigPath     string
	serveMaxUploadBytes int64
	serveRadarSize      int
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().Int64Var(&serveMaxUploadBytes, "max-upload-bytes", 0, "Size cap for a single uploaded document")
	serveCmd.Flags().IntVar(&serveRadarSize, "radar-size", 0, "Radar raster size in pixels")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:           servePort,
		MaxUploadBytes: serveMaxUploadBytes,
		RadarSize:      serveRadarSize,
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RadarSize:      cfg.RadarSize,
	})

	return srv.Start()
}

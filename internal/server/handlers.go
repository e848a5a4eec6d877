package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/dossier-builder/internal/bundle"
	"github.com/jonathan/dossier-builder/internal/delivery"
	"github.com/jonathan/dossier-builder/internal/merge"
	"github.com/jonathan/dossier-builder/internal/radar"
	"github.com/jonathan/dossier-builder/internal/types"
)

// handleExport builds a dossier from the posted export bundle and returns
// the merged PDF as a file download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var b types.ExportBundle
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid bundle JSON: %v", err))
		return
	}

	if err := bundle.Validate(&b); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bundle.Normalize(&b)

	result, err := merge.Merge(&b, merge.Options{MaxUploadBytes: s.maxUploadBytes})
	if err != nil {
		var buildErr *merge.BuildError
		if errors.As(err, &buildErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, buildErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("X-Dossier-Pages", fmt.Sprintf("%d", result.PageCount))
	w.Header().Set("X-Dossier-Skipped", fmt.Sprintf("%d", len(result.Issues)))

	filename := delivery.SuggestedFilename(b.Profile.Name)
	if err := delivery.ServeDownload(w, filename, result.PDF); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

type radarRequest struct {
	Categories []types.CompetencyCategory `json:"categories"`
	Size       int                        `json:"size,omitempty"`
}

// handleRadar rasterizes a competency radar from the posted categories and
// returns it as a PNG image.
func (s *Server) handleRadar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req radarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid radar request JSON: %v", err))
		return
	}

	size := req.Size
	if size == 0 {
		size = s.radarSize
	}

	png, err := radar.RenderPNG(req.Categories, radar.Options{Size: size})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(png)))
	if _, err := w.Write(png); err != nil {
		log.Printf("Error writing PNG response: %v", err)
	}
}

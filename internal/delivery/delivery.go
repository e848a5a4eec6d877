// Package delivery hands the finished dossier to the user: as a file on
// disk or as an HTTP attachment download.
package delivery

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SuggestedFilename returns the download filename for a dossier, derived
// from the student name with spaces replaced by underscores.
func SuggestedFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Bewerbungsdossier.pdf"
	}
	name = strings.ReplaceAll(name, " ", "_")
	// Strip characters that are path separators or unsafe in filenames
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, name)
	return "Bewerbungsdossier_" + name + ".pdf"
}

// WriteFile writes the dossier into dir under the given filename and
// returns the path actually written. Existing files are never overwritten;
// like a browser download, a " (n)" suffix is appended until a free name is
// found.
func WriteFile(dir, filename string, data []byte) (string, error) {
	path := filepath.Join(dir, filename)
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("checking output path: %w", err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing dossier: %w", err)
	}
	return path, nil
}

// ServeDownload writes the dossier as an attachment download response.
func ServeDownload(w http.ResponseWriter, filename string, data []byte) error {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing download response: %w", err)
	}
	return nil
}

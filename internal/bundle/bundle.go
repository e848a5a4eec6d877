// Package bundle loads and normalizes export bundles before they are
// handed to the merge orchestrator.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/dossier-builder/internal/schemas"
	"github.com/jonathan/dossier-builder/internal/types"
)

var validate = validator.New()

// Load reads an export bundle from a JSON file, validates it against the
// bundle schema (when the schema file can be located) and the struct rules,
// and normalizes it.
func Load(path string) (*types.ExportBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.BundleSchemaPath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("reading bundle schema: %w", err)
		}
		if err := schemas.ValidateString(string(schemaContent), string(data)); err != nil {
			return nil, err
		}
	}

	var b types.ExportBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle JSON: %w", err)
	}

	if err := Validate(&b); err != nil {
		return nil, err
	}

	Normalize(&b)
	return &b, nil
}

// Validate applies the struct-level validation rules.
func Validate(b *types.ExportBundle) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("validating bundle: %w", err)
	}
	return nil
}

// Normalize prepares a bundle for merging: sections and documents without
// ids get one assigned, the section order is re-derived densely, and an
// uploaded cover document replaces the generated cover section so that only
// one representation of the cover slot remains.
func Normalize(b *types.ExportBundle) {
	for i := range b.Sections {
		if b.Sections[i].ID == "" {
			b.Sections[i].ID = uuid.NewString()
		}
	}
	for i := range b.Documents {
		if b.Documents[i].ID == "" {
			b.Documents[i].ID = uuid.NewString()
		}
	}

	applyCoverOverride(b)
	types.Reorder(b.Sections)
}

// applyCoverOverride converts a generated cover section into an uploaded
// one referencing the document flagged as cover replacement, if any.
func applyCoverOverride(b *types.ExportBundle) {
	cover := types.CoverDocument(b.Documents)
	if cover == nil {
		return
	}
	for i := range b.Sections {
		s := &b.Sections[i]
		if s.Kind == types.KindGenerated && s.SectionType == types.SectionCover {
			s.Kind = types.KindUploaded
			s.SectionType = types.SectionUploaded
			s.SourceID = cover.ID
			if cover.Title != "" {
				s.Label = cover.Title
			}
		}
	}
}

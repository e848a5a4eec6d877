//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SectionKind distinguishes uploaded files from generated pages
type SectionKind string

// Valid section kinds
const (
	KindUploaded  SectionKind = "uploaded"
	KindGenerated SectionKind = "generated"
)

// Valid reports whether the kind is one of the known values.
func (k SectionKind) Valid() bool {
	return k == KindUploaded || k == KindGenerated
}

// SectionType identifies which page source a generated section dispatches to
type SectionType string

// Valid section types
const (
	SectionCover           SectionType = "cover"
	SectionProfile         SectionType = "profile"
	SectionCompetencyRadar SectionType = "competencyRadar"
	SectionProjects        SectionType = "projects"
	SectionGrades          SectionType = "grades"
	SectionUploaded        SectionType = "uploaded"
)

// Valid reports whether the section type is one of the known values.
func (t SectionType) Valid() bool {
	switch t {
	case SectionCover, SectionProfile, SectionCompetencyRadar, SectionProjects, SectionGrades, SectionUploaded:
		return true
	}
	return false
}

// DossierDocument represents a user-uploaded file. Payload holds the PDF
// bytes in the text-safe payload encoding; it is empty for documents whose
// upload never completed.
type DossierDocument struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title"`
	Payload string `json:"payload,omitempty"`
	IsCover bool   `json:"is_cover,omitempty"`
}

// DossierSection is one entry of the dossier's table of contents.
// SourceID references a DossierDocument for uploaded sections.
type DossierSection struct {
	ID          string      `json:"id"`
	Kind        SectionKind `json:"kind" validate:"oneof=uploaded generated"`
	SectionType SectionType `json:"section_type" validate:"oneof=cover profile competencyRadar projects grades uploaded"`
	Label       string      `json:"label"`
	SourceID    string      `json:"source_id,omitempty"`
	Enabled     bool        `json:"enabled"`
	Order       int         `json:"order"`
}

// EnabledSorted returns the enabled sections sorted by ascending order.
// Order values are not assumed unique; ties keep their list position.
func EnabledSorted(sections []DossierSection) []DossierSection {
	out := make([]DossierSection, 0, len(sections))
	for _, s := range sections {
		if s.Enabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Reorder re-derives a dense 0..n-1 order over the given sections, keeping
// their current relative order. Call after any insert, remove or reorder.
func Reorder(sections []DossierSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	for i := range sections {
		sections[i].Order = i
	}
}

// CoverDocument returns the uploaded document flagged as cover replacement,
// or nil if none is flagged. When several are flagged the first one wins.
func CoverDocument(documents []DossierDocument) *DossierDocument {
	for i := range documents {
		if documents[i].IsCover {
			return &documents[i]
		}
	}
	return nil
}

// ExportBundle is the immutable input snapshot for a single export.
// The orchestrator reads it and holds no state across exports.
type ExportBundle struct {
	Sections           []DossierSection     `json:"sections" validate:"required,dive"`
	Documents          []DossierDocument    `json:"documents,omitempty" validate:"dive"`
	Profile            Profile              `json:"profile" validate:"required"`
	Skills             []Skill              `json:"skills,omitempty"`
	Projects           []Project            `json:"projects,omitempty" validate:"dive"`
	Grades             []Grade              `json:"grades,omitempty" validate:"dive"`
	Categories         []CompetencyCategory `json:"categories,omitempty"`
	SelectedProjectIDs []string             `json:"selected_project_ids,omitempty"`
	RadarImage         string               `json:"radar_image,omitempty"` // PNG, payload-encoded or data URI
}

// WorkingProjects resolves the project set for a projects section: the
// explicitly selected ids when given, otherwise all active or completed
// projects. Project order is preserved.
func (b *ExportBundle) WorkingProjects() []Project {
	if len(b.SelectedProjectIDs) > 0 {
		selected := make(map[string]bool, len(b.SelectedProjectIDs))
		for _, id := range b.SelectedProjectIDs {
			selected[id] = true
		}
		out := make([]Project, 0, len(b.SelectedProjectIDs))
		for _, p := range b.Projects {
			if selected[p.ID] {
				out = append(out, p)
			}
		}
		return out
	}
	out := make([]Project, 0, len(b.Projects))
	for _, p := range b.Projects {
		if p.Status == StatusActive || p.Status == StatusCompleted {
			out = append(out, p)
		}
	}
	return out
}

// DocumentByID returns the document with the given id, or nil.
func (b *ExportBundle) DocumentByID(id string) *DossierDocument {
	for i := range b.Documents {
		if b.Documents[i].ID == id {
			return &b.Documents[i]
		}
	}
	return nil
}

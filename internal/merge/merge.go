// Package merge assembles the final dossier PDF from an export bundle: it
// resolves the enabled sections in order to page sources and concatenates
// their pages into one document.
package merge

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jonathan/dossier-builder/internal/pages"
	"github.com/jonathan/dossier-builder/internal/payload"
	"github.com/jonathan/dossier-builder/internal/types"
)

// DefaultMaxUploadBytes bounds the decoded size of a single uploaded PDF
const DefaultMaxUploadBytes = 10 << 20

// Options configures a merge run
type Options struct {
	// Layout is the page layout configuration; pages.DefaultLayout when nil
	Layout *pages.Layout
	// MaxUploadBytes caps decoded upload size; DefaultMaxUploadBytes when zero
	MaxUploadBytes int64
	// Logf receives per-section warnings; log.Printf when nil
	Logf func(format string, args ...any)
}

// Issue describes a section that was skipped or failed during a merge
type Issue struct {
	SectionID string `json:"section_id"`
	Label     string `json:"label"`
	Reason    string `json:"reason"`
}

// SectionPages records how many pages one section contributed
type SectionPages struct {
	SectionID string `json:"section_id"`
	Label     string `json:"label"`
	Pages     int    `json:"pages"`
}

// Result is the outcome of a merge: the final PDF bytes plus a per-section
// accounting. Issues lists degraded sections; a non-empty Issues list still
// means a usable document.
type Result struct {
	PDF       []byte         `json:"-"`
	PageCount int            `json:"page_count"`
	Sections  []SectionPages `json:"sections"`
	Issues    []Issue        `json:"issues,omitempty"`
}

// Merge builds the dossier from an immutable input snapshot. Sections are
// processed strictly in order; any single section's failure is recorded and
// skipped. Merge fails only when no section produced pages or the final
// assembly errors.
func Merge(bundle *types.ExportBundle, opts Options) (*Result, error) {
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	layout := pages.DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	gen := pages.NewGenerator(layout)

	sorted := types.EnabledSorted(bundle.Sections)
	hasProfile := false
	for _, s := range sorted {
		if s.Kind == types.KindGenerated && s.SectionType == types.SectionProfile {
			hasProfile = true
			break
		}
	}

	radarPNG := resolveRadarImage(bundle.RadarImage, logf)

	result := &Result{}
	var buffers [][]byte

	appendBuffer := func(section types.DossierSection, data []byte) {
		n, err := countPages(data)
		if err != nil {
			result.addIssue(section, fmt.Sprintf("invalid PDF data: %v", err))
			logf("section %q: invalid PDF data: %v", section.Label, err)
			return
		}
		buffers = append(buffers, data)
		result.addPages(section, n)
	}

	for _, section := range sorted {
		switch section.Kind {
		case types.KindUploaded:
			doc := bundle.DocumentByID(section.SourceID)
			if doc == nil || doc.Payload == "" {
				result.addIssue(section, "referenced document has no payload")
				logf("section %q: referenced document has no payload", section.Label)
				continue
			}
			data, err := payload.Decode(doc.Payload)
			if err != nil {
				result.addIssue(section, fmt.Sprintf("decoding payload: %v", err))
				logf("section %q: decoding payload: %v", section.Label, err)
				continue
			}
			if int64(len(data)) > maxUpload {
				result.addIssue(section, fmt.Sprintf("upload exceeds %d bytes", maxUpload))
				logf("section %q: upload exceeds %d bytes", section.Label, maxUpload)
				continue
			}
			appendBuffer(section, data)

		case types.KindGenerated:
			switch section.SectionType {
			case types.SectionCover:
				data, err := gen.Cover(bundle.Profile, bundle.Skills)
				if err != nil {
					result.addIssue(section, err.Error())
					logf("section %q: %v", section.Label, err)
					continue
				}
				appendBuffer(section, data)

			case types.SectionProfile:
				data, err := gen.Profile(bundle.Profile, bundle.Skills, bundle.Grades, radarPNG)
				if err != nil {
					result.addIssue(section, err.Error())
					logf("section %q: %v", section.Label, err)
					continue
				}
				appendBuffer(section, data)

			case types.SectionCompetencyRadar:
				// Contributes no page of its own; the radar image is
				// embedded on the profile sheet.
				continue

			case types.SectionProjects:
				for _, project := range bundle.WorkingProjects() {
					data, err := gen.Project(project)
					if err != nil {
						result.addIssue(section, fmt.Sprintf("project %s: %v", project.ID, err))
						logf("section %q: project %s: %v", section.Label, project.ID, err)
						continue
					}
					appendBuffer(section, data)
				}

			case types.SectionGrades:
				if hasProfile {
					// Grades are already embedded on the profile sheet.
					continue
				}
				data, err := gen.Grades(bundle.Grades)
				if err != nil {
					result.addIssue(section, err.Error())
					logf("section %q: %v", section.Label, err)
					continue
				}
				appendBuffer(section, data)

			default:
				result.addIssue(section, fmt.Sprintf("unknown section type %q", section.SectionType))
				logf("section %q: unknown section type %q", section.Label, section.SectionType)
			}

		default:
			result.addIssue(section, fmt.Sprintf("unknown section kind %q", section.Kind))
			logf("section %q: unknown section kind %q", section.Label, section.Kind)
		}
	}

	if len(buffers) == 0 {
		return nil, &BuildError{Message: "no sections produced any pages"}
	}

	readers := make([]io.ReadSeeker, len(buffers))
	for i, b := range buffers {
		readers[i] = bytes.NewReader(b)
	}
	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, relaxedConfiguration()); err != nil {
		return nil, &BuildError{Message: "merging section pages", Cause: err}
	}

	result.PDF = out.Bytes()
	for _, s := range result.Sections {
		result.PageCount += s.Pages
	}
	return result, nil
}

// resolveRadarImage decodes the optional pre-rendered radar image. A bad
// image is treated as absent; the profile page then shows its placeholder.
func resolveRadarImage(encoded string, logf func(string, ...any)) []byte {
	if encoded == "" {
		return nil
	}
	data, err := payload.Decode(encoded)
	if err != nil {
		logf("radar image: decoding payload: %v", err)
		return nil
	}
	return data
}

// countPages loads a buffer as an independent PDF document and returns its
// page count, validating the data in the process.
func countPages(data []byte) (int, error) {
	return api.PageCount(bytes.NewReader(data), relaxedConfiguration())
}

func relaxedConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func (r *Result) addIssue(section types.DossierSection, reason string) {
	r.Issues = append(r.Issues, Issue{SectionID: section.ID, Label: section.Label, Reason: reason})
}

func (r *Result) addPages(section types.DossierSection, n int) {
	r.Sections = append(r.Sections, SectionPages{SectionID: section.ID, Label: section.Label, Pages: n})
}

// Package pages generates the standalone PDF pages of a dossier from typed
// domain data. Every generator returns a one-page document as a byte buffer
// and never fails on missing optional input.
package pages

import "github.com/jonathan/dossier-builder/internal/types"

// A4 geometry in millimeters
const (
	pageW    = 210.0
	pageH    = 297.0
	margin   = 12.0
	sidebarW = 52.0
	contentW = pageW - 2*margin
)

// rgb is a plain 8-bit color triple
type rgb struct {
	r, g, b int
}

var (
	colorPrimary = rgb{30, 55, 153}
	colorBlack   = rgb{33, 37, 41}
	colorGray700 = rgb{73, 80, 87}
	colorGray600 = rgb{108, 117, 125}
	colorGray400 = rgb{173, 181, 189}
	colorGray200 = rgb{233, 236, 239}
	colorGray100 = rgb{245, 247, 250}
	colorWhite   = rgb{255, 255, 255}
	colorSuccess = rgb{25, 135, 84}
	colorDanger  = rgb{220, 53, 69}
)

// LanguageLevel is one sidebar language entry
type LanguageLevel struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// EducationEntry is one station of the education timeline
type EducationEntry struct {
	Period string `json:"period"`
	Title  string `json:"title"`
	Place  string `json:"place"`
}

// CompetencyNote is a short labeled explanation flanking the radar image
type CompetencyNote struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Layout carries the configurable placeholder content and measurements of
// the generated pages. The zero value is not usable; start from
// DefaultLayout and override what the caller knows better.
type Layout struct {
	ContactLines   []string
	Certificates   []string
	SoftSkills     []string
	Languages      []LanguageLevel
	DefaultSkills  []types.Skill
	FallbackGrades []types.Grade
	Education      []EducationEntry
	References     []string
	FooterContact  string
	SchoolName     string
	SchoolPlace    string
	SemesterLabel  string
	FallbackBio    string
	FallbackRole   string

	LeftCompetencies  []CompetencyNote
	RightCompetencies []CompetencyNote

	// RadarSizeMM is the edge length of the embedded radar square
	RadarSizeMM float64
}

// DefaultLayout returns the demo placeholder content of the original
// portfolio app. Callers with real data should replace these values.
func DefaultLayout() Layout {
	return Layout{
		ContactLines: []string{
			"076 222 13 44",
			"frodo.beutlin@stud.edubs.ch",
			"Hobbitonalley 1, 4056 Mittelerde",
			"",
			"26.10.2007",
			"Hobbit (Schutzstatus S)",
		},
		Certificates: []string{"ECDL (Word, Excel)", "TELC Deutsch B1"},
		SoftSkills:   []string{"Teamfähigkeit", "Selbstorganisation", "Flexibilität", "Ausdauer", "Kritikfähigkeit"},
		Languages: []LanguageLevel{
			{Name: "Deutsch", Level: "Muttersprache"},
			{Name: "Russisch", Level: "B1"},
			{Name: "Elbisch", Level: "A2-B1"},
			{Name: "Englisch", Level: "A2"},
		},
		DefaultSkills: []types.Skill{
			{Subject: "MS Word", Value: 85, FullMark: 100},
			{Subject: "MS Excel", Value: 75, FullMark: 100},
			{Subject: "10-Finger", Value: 70, FullMark: 100},
			{Subject: "Python", Value: 40, FullMark: 100},
		},
		FallbackGrades: []types.Grade{
			{Subject: "Deutsch", Value: 4.5, Category: "Semester", Date: "Jan 26"},
			{Subject: "Mathematik", Value: 4.0, Category: "Semester", Date: "Jan 26"},
			{Subject: "Englisch", Value: 4.0, Category: "Semester", Date: "Jan 26"},
			{Subject: "Allgemeinbildung", Value: 4.5, Category: "Semester", Date: "Jan 26"},
			{Subject: "Informatik / Medien", Value: 5.0, Category: "Semester", Date: "Jan 26"},
			{Subject: "Projektarbeit", Value: 5.5, Category: "Semester", Date: "Jan 26"},
			{Subject: "Arbeitstechniken", Value: 5.0, Category: "Semester", Date: "Jan 26"},
			{Subject: "Sport", Value: 5.5, Category: "Semester", Date: "Jan 26"},
		},
		Education: []EducationEntry{
			{Period: "08/2025 – heute", Title: "Zentrum für Brückenangebote", Place: "Basel, BS"},
			{Period: "04/2022 – 06/2024", Title: "Expeditions-Erfahrung", Place: "Mordor (Teamwork)"},
			{Period: "09/2012 – 02/2024", Title: "Hobbitschule", Place: "Hobbiton"},
		},
		References: []string{
			"Dürket Inag, Lehrerin am ZBA",
			"Samuel Brassel, Lehrer am ZBA",
		},
		FooterContact: "frodo.beutlin@stud.edubs.ch | 076 222 13 44",
		SchoolName:    "Zentrum für Brückenangebote Basel",
		SchoolPlace:   "Basel",
		SemesterLabel: "Schuljahr 2025/2026 · 1. Semester",
		FallbackBio:   "Hoch motiviert und bestrebt, mich weiterzuentwickeln. Fördere meine Fähigkeiten durch Schach, Sprachen lernen und Fitness-Training.",
		FallbackRole:  "Mediamatiker:in EFZ",
		LeftCompetencies: []CompetencyNote{
			{Name: "Selbstkompetenzen", Description: "Eigenverantwortung, Zeitmanagement, Reflexion"},
			{Name: "Sprachkompetenzen", Description: "Ausdruck, Leseverständnis, Textproduktion"},
			{Name: "MINT-Kompetenzen", Description: "Naturwissenschaften, Technik, Experimentieren"},
		},
		RightCompetencies: []CompetencyNote{
			{Name: "Sozialkompetenzen", Description: "Teamarbeit, Kommunikation, Konfliktlösung"},
			{Name: "Mathematische Kompetenzen", Description: "Logik, Rechnen, Problemlösung"},
			{Name: "Digitalkompetenzen", Description: "IT-Anwendungen, Medienkompetenz"},
		},
		RadarSizeMM: 78,
	}
}

// Generator produces dossier pages with a fixed visual layout
type Generator struct {
	layout Layout
}

// NewGenerator creates a Generator for the given layout.
func NewGenerator(layout Layout) *Generator {
	if layout.RadarSizeMM <= 0 {
		layout.RadarSizeMM = 78
	}
	return &Generator{layout: layout}
}

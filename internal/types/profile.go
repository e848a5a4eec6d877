// Package types provides type definitions for structured data used throughout the dossier-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents a student's profile as entered in the portfolio app.
// All list fields are optional; page generators substitute placeholders for
// anything that is missing.
type Profile struct {
	Name         string   `json:"name" validate:"required"`
	Class        string   `json:"class,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Values       []string `json:"values,omitempty"`
	JobTargets   []string `json:"job_targets,omitempty"`
	CurrentPhase string   `json:"current_phase,omitempty"`
}

// Skill represents a single skill rendered as a bar on the cover sheet
type Skill struct {
	Subject  string  `json:"subject"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"full_mark"`
}

// Ratio returns the skill value as a fraction of its full mark, clamped to [0, 1].
func (s Skill) Ratio() float64 {
	if s.FullMark <= 0 {
		return 0
	}
	r := s.Value / s.FullMark
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

//nolint:revive // types is a standard Go package name pattern
package types

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

// Valid project statuses
const (
	StatusPlanning  ProjectStatus = "planning"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Milestone represents one checklist entry of a project
type Milestone struct {
	Week      int    `json:"week"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Project represents a student project rendered as one dossier page
type Project struct {
	ID              string        `json:"id" validate:"required"`
	Title           string        `json:"title" validate:"required"`
	Status          ProjectStatus `json:"status" validate:"oneof=planning active completed"`
	GuidingQuestion string        `json:"guiding_question,omitempty"`
	Milestones      []Milestone   `json:"milestones,omitempty"`
}

//nolint:revive // types is a standard Go package name pattern
package types

// MaxCompetencyLevel is the highest reachable mastery level
const MaxCompetencyLevel = 4

// Competency represents a single competency with a mastery level from 0 to 4
type Competency struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Level int    `json:"level" validate:"gte=0,lte=4"`
}

// CompetencyCategory groups competencies under a named, colored wedge of the radar
type CompetencyCategory struct {
	Name         string       `json:"name"`
	Icon         string       `json:"icon,omitempty"`
	Color        string       `json:"color"` // #RRGGBB
	Competencies []Competency `json:"competencies"`
}

// AverageLevel returns the mean mastery level of the category's competencies.
// A category without competencies averages to zero.
func (c CompetencyCategory) AverageLevel() float64 {
	if len(c.Competencies) == 0 {
		return 0
	}
	total := 0
	for _, comp := range c.Competencies {
		total += comp.Level
	}
	return float64(total) / float64(len(c.Competencies))
}

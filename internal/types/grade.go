//nolint:revive // types is a standard Go package name pattern
package types

// Grade represents one graded subject. Values follow the Swiss 1-6 scale
// where 6 is best and 4 is the passing mark.
type Grade struct {
	Subject  string  `json:"subject" validate:"required"`
	Value    float64 `json:"value" validate:"gte=1,lte=6"`
	Date     string  `json:"date,omitempty"`
	Category string  `json:"category,omitempty"`
}

// AverageGrade returns the arithmetic mean of the grade values.
// An empty list averages to zero.
func AverageGrade(grades []Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range grades {
		sum += g.Value
	}
	return sum / float64(len(grades))
}

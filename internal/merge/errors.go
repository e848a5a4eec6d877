package merge

import "fmt"

// BuildError represents a total export failure: nothing produced pages, or
// the final assembly itself failed. Per-section problems never surface as
// a BuildError; they are reported as Result issues instead.
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not build document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("could not build document: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

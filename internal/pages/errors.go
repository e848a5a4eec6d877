package pages

import "fmt"

// GenerateError represents a failure producing a page's PDF bytes
type GenerateError struct {
	Page    string
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate %s page: %s: %v", e.Page, e.Message, e.Cause)
	}
	return fmt.Sprintf("generate %s page: %s", e.Page, e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

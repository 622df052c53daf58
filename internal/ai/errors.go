package ai

import "fmt"

// GenerationError means the generative backend was unreachable, returned an
// error status, or produced empty output. Callers surface it; no automatic
// retry happens at this level.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ParseError means the model's SEO response could not be decoded into the
// required structure. It aborts the SEO step: the schema's SEO columns are
// written all-or-nothing.
type ParseError struct {
	Message string
	Raw     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed: %s", e.Message)
}

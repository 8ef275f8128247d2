package services

import "fmt"

// ValidationError means the request was malformed or incomplete.
// Maps to 400 at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means a referenced resource does not exist (no syllabus
// uploaded yet, chapter absent from syllabus). Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ExtractionError means neither native extraction nor OCR produced any
// text, or a paper yielded no questions. Maps to 500.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string { return e.Message }

// UpstreamError means an external collaborator failed: the generation
// model, the payment gateway, or the PDF engine. Maps to 502.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

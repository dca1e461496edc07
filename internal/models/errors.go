package models

import "fmt"

// ExtractionError reports input the URL parser could not tolerate. No vector
// is produced and no model is called.
type ExtractionError struct {
	Input string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("feature extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError reports request input that could not be coerced into a
// prediction call: malformed JSON, wrong field types, an unknown use case.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// PredictionError wraps any failure inside a model call. The submission is
// abandoned; the process stays up and ready for the next one.
type PredictionError struct {
	UseCase UseCase
	Err     error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction error (%s): %v", e.UseCase, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

package faq

import "fmt"

// ValidationError reports caller input that violates a request bound. It never
// reaches the completion service.
type ValidationError struct {
	Field      string
	Constraint string
	Value      interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Constraint, e.Value)
}

// UpstreamError reports a failed completion call or a response with no usable
// text block.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedOutputError reports model output that is not valid JSON. Raw keeps
// the original text verbatim so operators can diagnose prompt drift.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("model output was not valid JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// SchemaViolationError reports parsed model output that breaks the result
// bounds. Only the first failing field is reported.
type SchemaViolationError struct {
	Field      string
	Constraint string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("model output field %q %s", e.Field, e.Constraint)
}

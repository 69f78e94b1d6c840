package validation

import "strings"

// FieldError is one rejected input field. Field is a dotted path into the
// request, or "body" when the failure is about the request as a whole.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full list of problems found in one input. It is returned as
// an error so handlers can pass it straight to the error responder.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BodyField is the field name used for errors that concern the whole payload.
const BodyField = "body"

func bodyError(msg string) Errors {
	return Errors{{Field: BodyField, Message: msg}}
}

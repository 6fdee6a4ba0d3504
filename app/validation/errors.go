package validation

import (
	"errors"
	"strings"
)

// Violation is one failing field.
type Violation struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// Errors is the ordered list of violations of one request. It serializes to
// the body returned with 400 responses.
type Errors struct {
	Messages []Violation `json:"errorsMessages"`
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, v := range e.Messages {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in order.
func (e *Errors) Fields() []string {
	fields := make([]string, 0, len(e.Messages))
	for _, v := range e.Messages {
		fields = append(fields, v.Field)
	}
	return fields
}

// AsErrors unwraps err into *Errors.
func AsErrors(err error) (*Errors, bool) {
	var verr *Errors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

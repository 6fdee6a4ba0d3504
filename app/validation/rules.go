// Package validation turns raw request bodies into validated inputs.
//
// Every field is checked by a Chain: an ordered list of rules that stops at
// the first rule the value breaks. Validate runs one chain per field, in
// declaration order, and reports every failing field together.
package validation

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Form is a decoded request body. Bodies that are not valid JSON objects are
// treated as empty.
type Form struct {
	body gjson.Result
}

// NewForm wraps a raw JSON request body.
func NewForm(body []byte) Form {
	if !gjson.ValidBytes(body) {
		return Form{}
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return Form{}
	}
	return Form{body: res}
}

// Field returns the raw value stored under name.
func (f Form) Field(name string) Field {
	if !f.body.Exists() {
		return Field{}
	}
	return Field{f.body.Get(gjson.Escape(name))}
}

// Field is a single value of a form. It tells an absent key apart from an
// explicit null.
type Field struct {
	gjson.Result
}

// Present reports whether the key was in the body, null included.
func (f Field) Present() bool { return f.Exists() }

// IsNull reports whether the key was set to null.
func (f Field) IsNull() bool { return f.Exists() && f.Type == gjson.Null }

// IsString reports whether the value is a JSON string.
func (f Field) IsString() bool { return f.Type == gjson.String }

// Trimmed returns the string value without surrounding whitespace.
func (f Field) Trimmed() string { return strings.TrimSpace(f.Str) }

// Check is a single predicate over a field.
type Check func(Field) bool

// Rule pairs a check with the message reported when it fails.
type Rule struct {
	Check   Check
	Message string
}

// Chain holds the rules for one field.
type Chain struct {
	field    string
	optional bool
	nullable bool
	rules    []Rule
}

// For starts a chain for the named field.
func For(field string) *Chain {
	return &Chain{field: field}
}

// Optional skips the chain when the key is absent.
func (c *Chain) Optional() *Chain {
	c.optional = true
	return c
}

// Nullable skips the chain when the key is absent or null.
func (c *Chain) Nullable() *Chain {
	c.optional = true
	c.nullable = true
	return c
}

// Must appends a rule to the chain.
func (c *Chain) Must(check Check, message string) *Chain {
	c.rules = append(c.rules, Rule{Check: check, Message: message})
	return c
}

// Name returns the field the chain checks.
func (c *Chain) Name() string { return c.field }

// Run evaluates the chain against form and returns the first violation.
func (c *Chain) Run(form Form) (Violation, bool) {
	f := form.Field(c.field)
	if c.optional && !f.Present() {
		return Violation{}, true
	}
	if c.nullable && f.IsNull() {
		return Violation{}, true
	}

	for _, rule := range c.rules {
		if !rule.Check(f) {
			return Violation{Message: rule.Message, Field: c.field}, false
		}
	}
	return Violation{}, true
}

// Validate runs every chain against form. It returns nil when all chains
// pass, and *Errors otherwise.
func Validate(form Form, chains ...*Chain) error {
	var errs Errors
	for _, c := range chains {
		if v, ok := c.Run(form); !ok {
			errs.Messages = append(errs.Messages, v)
		}
	}
	if len(errs.Messages) == 0 {
		return nil
	}
	return &errs
}

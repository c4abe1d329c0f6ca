// Package contact implements the contact form: per-field validation rules
// and a simulated submission.
package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind is the input type of a field.
type Kind int

const (
	Text Kind = iota
	Email
	TextArea
)

// Validation messages, in rule priority order.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgNameTooShort = "Name must be at least 2 characters long"
	MsgMessageShort = "Message must be at least 10 characters long"
)

// Minimum lengths for the name and message fields.
const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field is one form input and its validation state.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool

	Value string
	Valid bool
	Err   string
}

// Validate checks value against the field's rules and returns the first
// failing rule's message, or "" when the value passes.
//
//  1. required and blank
//  2. email-typed, non-empty and not local@domain.tld
//  3. name field, non-empty and shorter than MinNameLength
//  4. message field, non-empty and shorter than MinMessageLength
func Validate(f Field) string {
	switch {
	case f.Required && strings.TrimSpace(f.Value) == "":
		return MsgRequired
	case f.Kind == Email && f.Value != "" && !emailPattern.MatchString(f.Value):
		return MsgInvalidEmail
	case f.Name == "name" && f.Value != "" && utf8.RuneCountInString(f.Value) < MinNameLength:
		return MsgNameTooShort
	case f.Name == "message" && f.Value != "" && utf8.RuneCountInString(f.Value) < MinMessageLength:
		return MsgMessageShort
	}
	return ""
}

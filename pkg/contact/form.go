package contact

import (
	"fmt"
	"time"
)

// Message is the payload of a submitted form.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
	SentAt  time.Time
}

// Form holds the fields and the submission state.
type Form struct {
	fields  []Field
	index   map[string]int
	sending bool
}

// DefaultFields returns the standard contact fields.
func DefaultFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Kind: Text, Required: true},
		{Name: "email", Label: "Email", Kind: Email, Required: true},
		{Name: "subject", Label: "Subject", Kind: Text},
		{Name: "message", Label: "Message", Kind: TextArea, Required: true},
	}
}

// NewForm creates a form over fields. Fields start valid with no error
// shown; they are checked on blur and submit.
func NewForm(fields []Field) *Form {
	f := &Form{index: make(map[string]int, len(fields))}
	for _, fld := range fields {
		fld.Valid = true
		fld.Err = ""
		f.index[fld.Name] = len(f.fields)
		f.fields = append(f.fields, fld)
	}
	return f
}

// Fields returns a copy of the fields in order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Field returns the named field.
func (f *Form) Field(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.fields[i], true
}

// Set updates a field's value. Editing clears any error shown for it.
func (f *Form) Set(name, value string) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("contact: no field %q", name)
	}
	f.fields[i].Value = value
	f.fields[i].Valid = true
	f.fields[i].Err = ""
	return nil
}

// Blur validates a single field, as when focus leaves it.
func (f *Form) Blur(name string) bool {
	i, ok := f.index[name]
	if !ok {
		return false
	}
	return f.check(i)
}

func (f *Form) check(i int) bool {
	msg := Validate(f.fields[i])
	f.fields[i].Valid = msg == ""
	f.fields[i].Err = msg
	return f.fields[i].Valid
}

// ValidateAll checks every field, recording each field's first failure.
func (f *Form) ValidateAll() bool {
	ok := true
	for i := range f.fields {
		if !f.check(i) {
			ok = false
		}
	}
	return ok
}

// Errors returns the current error message per invalid field.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for _, fld := range f.fields {
		if fld.Err != "" {
			errs[fld.Name] = fld.Err
		}
	}
	return errs
}

// Sending reports whether a submission is in flight.
func (f *Form) Sending() bool {
	return f.sending
}

// BeginSubmit validates the form and, when every field passes, marks it as
// sending and returns the message to deliver. A submit while another is in
// flight is refused.
func (f *Form) BeginSubmit(now time.Time) (Message, error) {
	if f.sending {
		return Message{}, ErrInFlight
	}
	if !f.ValidateAll() {
		return Message{}, ErrInvalid
	}
	f.sending = true
	return Message{
		Name:    f.value("name"),
		Email:   f.value("email"),
		Subject: f.value("subject"),
		Body:    f.value("message"),
		SentAt:  now,
	}, nil
}

// FinishSubmit ends the in-flight submission. On success the form is
// reset; on failure the values are kept so the user can retry.
func (f *Form) FinishSubmit(err error) {
	f.sending = false
	if err == nil {
		f.Reset()
	}
}

// Reset clears every value and error.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].Value = ""
		f.fields[i].Valid = true
		f.fields[i].Err = ""
	}
}

func (f *Form) value(name string) string {
	if i, ok := f.index[name]; ok {
		return f.fields[i].Value
	}
	return ""
}

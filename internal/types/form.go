package types

import "unicode/utf8"

// RequestForm holds the buffers for a request being composed
type RequestForm struct {
	Name   string
	URL    string
	Method string
	Field  FormField
}

// NewRequestForm returns an empty form positioned on the name field
func NewRequestForm() RequestForm {
	return RequestForm{Field: FieldName}
}

// buffer returns the buffer belonging to the current field
func (f *RequestForm) buffer() *string {
	switch f.Field {
	case FieldName:
		return &f.Name
	case FieldURL:
		return &f.URL
	case FieldMethod:
		return &f.Method
	}
	return nil
}

// Value returns the contents of the given field's buffer
func (f RequestForm) Value(field FormField) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldURL:
		return f.URL
	case FieldMethod:
		return f.Method
	}
	return ""
}

// Append adds a character to the end of the current field's buffer
func (f *RequestForm) Append(r rune) {
	buf := f.buffer()
	if buf == nil {
		return
	}
	*buf += string(r)
}

// Erase removes the last character of the current field's buffer
func (f *RequestForm) Erase() {
	buf := f.buffer()
	if buf == nil || *buf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(*buf)
	*buf = (*buf)[:len(*buf)-size]
}

// Advance moves to the next field.
// It returns true when the method field was confirmed and the form is complete;
// the field is left unchanged in that case.
func (f *RequestForm) Advance() bool {
	switch f.Field {
	case FieldName:
		f.Field = FieldURL
	case FieldURL:
		f.Field = FieldMethod
	case FieldMethod:
		return true
	}
	return false
}

// Request builds a request from the buffers, verbatim
func (f RequestForm) Request() Request {
	return Request{
		Name:   f.Name,
		URL:    f.URL,
		Method: f.Method,
	}
}

package types

// Request represents a stored request and the last response received for it
type Request struct {
	Name     string  `json:"name" yaml:"name"`
	URL      string  `json:"url" yaml:"url"`
	Method   string  `json:"method" yaml:"method"`
	Response *string `json:"response,omitempty" yaml:"response,omitempty"` // nil until a send completes
}

// HasResponse reports whether a send has completed for the request
func (r Request) HasResponse() bool {
	return r.Response != nil
}

// ResponseText returns the stored response, or "" when there is none
func (r Request) ResponseText() string {
	if r.Response == nil {
		return ""
	}
	return *r.Response
}

// Screen represents the active top-level screen
type Screen int

const (
	ScreenMain Screen = iota
	ScreenNewRequest
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenNewRequest:
		return "new_request"
	}
	return "unknown"
}

// FormField identifies the form buffer receiving input
type FormField int

const (
	FieldName FormField = iota
	FieldURL
	FieldMethod
)

func (f FormField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldURL:
		return "url"
	case FieldMethod:
		return "method"
	}
	return "unknown"
}

// Label returns the label shown next to the field on the form screen
func (f FormField) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldURL:
		return "URL"
	case FieldMethod:
		return "Method"
	}
	return ""
}

// Fields lists the form fields in confirmation order
var Fields = []FormField{FieldName, FieldURL, FieldMethod}

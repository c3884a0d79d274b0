package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
)

const contentTypeJSON = "application/json"

// Request describes one backend call.
type Request struct {
	Method string
	Path   string // relative to the base URL, e.g. /admin/tours
	Query  url.Values
	// Body is nil, a *Form for multipart uploads, or any JSON-marshalable value.
	Body   any
	Header http.Header
}

// encode renders the body once so it can be replayed after a refresh.
// Multipart bodies carry their own boundary content type; everything else is JSON.
func (r *Request) encode() ([]byte, string, error) {
	switch b := r.Body.(type) {
	case nil:
		return nil, contentTypeJSON, nil
	case *Form:
		return b.Encode()
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("marshal request: %w", err)
		}
		return data, contentTypeJSON, nil
	}
}

// Form is a multipart/form-data body.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	data     []byte
}

func NewForm() *Form {
	return &Form{}
}

// Add appends a text field. Repeated names are sent as repeated parts.
func (f *Form) Add(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddJSON appends a field holding v encoded as JSON, for nested values such as arrays.
func (f *Form) AddJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal form field %s: %w", name, err)
	}
	f.Add(name, string(data))
	return nil
}

// AddFile appends a file part.
func (f *Form) AddFile(field, filename string, data []byte) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, data: data})
	return f
}

// Encode renders the form and returns the body with its multipart content type.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("write form file %s: %w", file.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

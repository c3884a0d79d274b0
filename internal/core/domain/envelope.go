package domain

import "encoding/json"

// Envelope is the uniform response shape returned by every backend endpoint.
// Message stays raw because validation failures send it as an array.
type Envelope struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Pagination describes the page returned alongside list payloads.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page exists after this one.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// Upload is an in-memory file attached to a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}

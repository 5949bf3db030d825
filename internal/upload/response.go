package upload

import (
	"bytes"
	"encoding/json"
	"math"
)

// Response is the JSON envelope returned by the upload endpoint.
// Message and Data stay raw until the status says which one is meaningful.
type Response struct {
	Status  Flag            `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// MessageText returns message as a string, or its raw JSON when it is not one
func (r *Response) MessageText() string {
	raw := bytes.TrimSpace(r.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

// Markdown decodes data.links.markdown
func (r *Response) Markdown() (string, error) {
	raw := bytes.TrimSpace(r.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", ErrMissingMarkdown
	}
	var data ResponseData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", err
	}
	if data.Links.Markdown == "" {
		return "", ErrMissingMarkdown
	}
	return data.Links.Markdown, nil
}

// ResponseData carries the uploaded image details
type ResponseData struct {
	Links Links `json:"links"`
}

// Links holds the ready-made link formats for the uploaded image
type Links struct {
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// Flag decodes any JSON value by truthiness: false, 0, "", null and NaN are false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Flag(truthy(v))
	return nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

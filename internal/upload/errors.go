package upload

import (
	"errors"
	"fmt"
)

// ErrMissingMarkdown is reported when a successful response carries no Markdown link.
var ErrMissingMarkdown = errors.New("response has no data.links.markdown")

// HTTPError is returned for a non-2xx response status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ParseError is returned when the response body cannot be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid upload response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RemoteError is returned when the server answers with a falsy status.
// Message is the server's message field, verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "upload rejected by server"
	}
	return e.Message
}

// NetworkError is returned when the request could not be sent or completed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

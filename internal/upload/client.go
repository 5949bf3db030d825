package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/ytget/lsky-paste/internal/platform"
)

// Request constants for the Lsky Pro upload API
const (
	DefaultEndpoint   = "https://picgo.top/api/v1/upload"
	FormFieldName     = "file"
	DefaultFileName   = "image"
	DefaultPartType   = "application/octet-stream"
	AcceptJSON        = "application/json"
	BearerPrefix      = "Bearer "
	HeaderAccept      = "Accept"
	HeaderAuth        = "Authorization"
	HeaderContentType = "Content-Type"
)

// Client posts images to the upload endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithEndpoint overrides the upload URL
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a client for the default endpoint.
// The default HTTP client has no timeout; cancel ctx to abandon a request.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the upload URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Upload sends one image and returns data.links.markdown from the response.
// A single attempt is made.
func (c *Client) Upload(ctx context.Context, image []byte, token string) (string, error) {
	request, err := c.buildRequest(ctx, image, token)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer func() { _ = response.Body.Close() }()

	return processResponse(response)
}

// buildRequest creates the multipart POST request with a single file part
func (c *Client) buildRequest(ctx context.Context, image []byte, token string) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreatePart(filePartHeader(image))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	request.Header.Set(HeaderContentType, writer.FormDataContentType())
	request.Header.Set(HeaderAccept, AcceptJSON)
	if token != "" {
		request.Header.Set(HeaderAuth, BearerPrefix+token)
	}
	return request, nil
}

// filePartHeader names the part after the sniffed image type, e.g. image.png
func filePartHeader(image []byte) textproto.MIMEHeader {
	fileName := DefaultFileName
	partType := DefaultPartType
	if ft := platform.DetectType(image); ft.MIME != "" {
		partType = ft.MIME
		if ft.Extension != "" {
			fileName += "." + ft.Extension
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FormFieldName, fileName))
	header.Set(HeaderContentType, partType)
	return header
}

// processResponse maps the HTTP response onto the Markdown link or a typed error
func processResponse(response *http.Response) (string, error) {
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, response.Body)
		return "", &HTTPError{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &ParseError{Err: err}
	}

	if !result.Status {
		return "", &RemoteError{Message: result.MessageText()}
	}

	markdown, err := result.Markdown()
	if err != nil {
		return "", &ParseError{Err: err}
	}
	return markdown, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Response is the uniform envelope every platform endpoint answers with.
// Data is decoded lazily so callers can unmarshal into their own types.
type Response struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// Error carries a failed envelope back to the caller. Transport failures
// are normalized into the same shape with an empty Code, so callers only
// ever deal with one error type.
type Error struct {
	Code    string
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// IsNotFound reports whether err is a platform NOT_FOUND error.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == "NOT_FOUND"
}

// Client is a thin wrapper over the platform HTTP API. Bearer tokens are
// attached when set; a cookie jar keeps session-cookie auth working as a
// fallback for guest flows.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
}

// SetToken sets the bearer token for subsequent requests.
// Pass "" to clear it (logout).
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// PostMultipart uploads a file plus form fields, used by the back-office
// image and menu-file upload endpoints.
func (c *Client) PostMultipart(
	ctx context.Context,
	path string,
	fields map[string]string,
	fileField string,
	filename string,
	file io.Reader,
	out any,
) error {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return &Error{Message: err.Error()}
		}
	}
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &Error{Message: err.Error()}
	}
	if err := w.Close(); err != nil {
		return &Error{Message: err.Error()}
	}

	return c.do(ctx, http.MethodPost, path, buf, w.FormDataContentType(), out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body io.Reader,
	contentType string,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Message: err.Error()}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).
			Msg("request transport failure")
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: err.Error()}
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &Error{Message: "invalid response from server"}
	}

	if !envelope.OK {
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{
			Code:    envelope.Code,
			Message: msg,
			Details: envelope.Details,
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &Error{Message: "invalid response from server"}
		}
	}
	return nil
}

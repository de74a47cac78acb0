package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/common"
)

// TokenSource supplies the current access token; an empty string means no
// Authorization header is attached. The session holder satisfies this.
type TokenSource interface {
	AccessToken() string
}

// Client is the backend surface consumed by the services. Implemented by
// HTTPClient; tests substitute fakes.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	Profile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*models.Profile, error)
	ProfilePhoto(ctx context.Context, userID string) ([]byte, error)
	UploadProfilePhoto(ctx context.Context, userID, filename string, data []byte) (string, error)

	Wardrobe(ctx context.Context, userID string) (*models.Wardrobe, error)
	PhotoMap(ctx context.Context, userID string) (models.PhotoMap, error)
	AddClothing(ctx context.Context, userID string, req AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error)
	DeleteClothing(ctx context.Context, itemID int64) error

	Suggestions(ctx context.Context, userID string) ([]models.Look, error)
	GenerateSuggestion(ctx context.Context, userID string) (string, error)
	SaveLook(ctx context.Context, lookID int64) error
	SavedLooks(ctx context.Context, userID string) ([]models.Look, error)
}

// HTTPClient is the concrete gateway. One instance is built at startup from
// the resolved configuration and shared by every service.
type HTTPClient struct {
	baseURL string
	extra   map[string]string
	tokens  TokenSource
	hc      *http.Client
}

// NewHTTPClient builds a gateway for the given origin. extraHeaders are
// attached to every request; tokens may be nil for an unauthenticated-only
// client.
func NewHTTPClient(baseURL string, extraHeaders map[string]string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		extra:   extraHeaders,
		tokens:  tokens,
		hc:      &http.Client{},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.extra {
		req.Header.Set(k, v)
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	return req, nil
}

// maxErrorBody caps how much of an error response lands in an APIError
// message.
const maxErrorBody = 512

// do sends the request and returns the response body, mapping transport
// failures to ErrUnavailable and non-2xx statuses to *APIError.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return body, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	respBody, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// multipartPart describes one part of a multipart request: either a JSON
// payload or a file.
type multipartPart struct {
	field    string
	filename string
	isJSON   bool
	payload  []byte
}

func (c *HTTPClient) sendMultipart(ctx context.Context, path string, parts []multipartPart) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		var (
			fw  io.Writer
			err error
		)
		if p.isJSON {
			fw, err = w.CreateFormField(p.field)
		} else {
			fw, err = w.CreateFormFile(p.field, p.filename)
		}
		if err != nil {
			return nil, fmt.Errorf("build multipart: %w", err)
		}
		if _, err := fw.Write(p.payload); err != nil {
			return nil, fmt.Errorf("write multipart part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

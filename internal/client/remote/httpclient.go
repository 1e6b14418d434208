package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/common"
)

// HTTPClient implements Client over the backend's JSON API.
// The zero value is not usable; construct with NewHTTPClient.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	token   string
}

// NewHTTPClient builds an HTTPClient for the given base URL
// (scheme://host:port, no trailing slash). The timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// HealthURL returns the URL the connectivity prober should target: the same
// transport and host the entry calls use.
func (c *HTTPClient) HealthURL() string {
	return c.baseURL + common.HealthPath
}

// SetToken installs a previously obtained auth token (e.g. from a saved
// session) without going through Login.
func (c *HTTPClient) SetToken(token string) { c.token = token }

// Token returns the current auth token, empty if not authenticated.
func (c *HTTPClient) Token() string { return c.token }

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, common.RegisterPath, email, password)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, common.LoginPath, email, password)
}

func (c *HTTPClient) authenticate(ctx context.Context, path, email, password string) error {
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, path, authRequest{Email: email, Password: password}, nil, &resp)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return common.ErrInvalidCredentials
	}
	if status == http.StatusConflict {
		return common.ErrEmailAlreadyTaken
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("%w: status %d", common.ErrRemoteFailure, status)
	}
	c.token = resp.Token
	return nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, fields models.EntryFields, idempotencyKey string) (*models.CachedEntry, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[common.IdempotencyKeyHeaderName] = idempotencyKey
	}

	var entry models.CachedEntry
	status, err := c.do(ctx, http.MethodPost, common.EntriesPath, fields, headers, &entry)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusCreated, http.StatusOK:
		return &entry, nil
	case http.StatusUnauthorized:
		return nil, common.ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: create entry returned status %d", common.ErrRemoteFailure, status)
	}
}

type listResponse struct {
	Entries []models.CachedEntry `json:"entries"`
}

func (c *HTTPClient) ListEntries(ctx context.Context, page, pageSize int) ([]models.CachedEntry, error) {
	path := common.EntriesPath + "?page=" + strconv.Itoa(page) + "&page_size=" + strconv.Itoa(pageSize)

	var resp listResponse
	status, err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		return resp.Entries, nil
	case http.StatusUnauthorized:
		return nil, common.ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: list entries returned status %d", common.ErrRemoteFailure, status)
	}
}

// do sends one JSON request and decodes the response body into out (when out
// is non-nil and the body is non-empty). It returns the HTTP status code;
// transport-level failures map to ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("%w: reading response: %v", common.ErrRemoteFailure, err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return resp.StatusCode, fmt.Errorf("%w: decoding response: %v", common.ErrRemoteFailure, err)
			}
		}
	}
	return resp.StatusCode, nil
}

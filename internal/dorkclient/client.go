// Package dorkclient talks to a running dork API. Client wraps the REST
// endpoints; Session layers the interactive generate, save and load flow on
// top of it.
package dorkclient

import (
	"bytes"
	"context"
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Client talks to the dork REST API and fulfills the API interface. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root without a trailing slash
}

// Categories fetches the token catalog.
func (c *Client) Categories(ctx context.Context) (domain.CategoryCatalog, error) {
	var out domain.CategoryCatalog
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Generate asks the API to build a query for req. A request without a domain
// is rejected locally and never sent.
func (c *Client) Generate(ctx context.Context, req domain.DorkRequest) (*domain.GeneratedDork, error) {
	if strings.TrimSpace(req.Domain) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "please enter a domain")
	}

	var out domain.GeneratedDork
	if err := c.do(ctx, http.MethodPost, "/api/generate", req, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Dorks lists the saved dorks, oldest first.
func (c *Client) Dorks(ctx context.Context) ([]domain.SavedDork, error) {
	out := []domain.SavedDork{}
	if err := c.do(ctx, http.MethodGet, "/api/dorks", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// SaveDork stores a named query. Empty names and queries are rejected locally.
func (c *Client) SaveDork(ctx context.Context, name, query, description string) (*domain.SavedDork, error) {
	if strings.TrimSpace(name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "please enter a name for the dork")
	}
	if strings.TrimSpace(query) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "query is required")
	}

	body := struct {
		Name        string `json:"name"`
		Query       string `json:"query"`
		Description string `json:"description"`
	}{Name: name, Query: query, Description: description}

	var out domain.SavedDork
	if err := c.do(ctx, http.MethodPost, "/api/dorks", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteDork removes a saved dork. A missing id surfaces as serrors.ErrNotFound.
func (c *Client) DeleteDork(ctx context.Context, ID domain.SavedDorkID) error {
	path := "/api/dorks/" + strconv.FormatInt(int64(ID), 10)

	return c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

// Health checks that the API and its storage are up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil)
}

// do sends one request and decodes a successful response into out. Error
// bodies carrying a code are turned back into the matching serrors kind.
func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != want {
		return decodeError(method, path, resp.StatusCode, b)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// decodeError maps an API error body to a semantic error. Bodies without a
// code, e.g. from a proxy in front of the API, become plain errors.
func decodeError(method, path string, status int, body []byte) error {
	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return fmt.Errorf("%s %s failed with status %d: %s", method, path, status, strings.TrimSpace(string(body)))
	}

	return serrors.With(serrors.KindFromCode(apiErr.Code), "%s", apiErr.Message)
}

// Ensure Client conforms to the API interface at compile time.
var _ API = (*Client)(nil)

// New constructs a Client for the API served at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

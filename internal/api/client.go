// Package api implements the HTTP client for the Stash read-later
// service. All remote calls go through Client.do, which attaches the
// bearer token, serialises request bodies as JSON, and classifies every
// non-2xx response into a typed *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production Stash API root.
const DefaultBaseURL = "https://api.stashreader.com/v1"

// Search modes accepted by Search. Semantic search uses a separate
// endpoint backed by an embedding index that may be independently down.
const (
	ModeKeyword  = "keyword"
	ModeSemantic = "semantic"
)

// Client calls the Stash API. The token is injected once at construction
// and immutable afterwards; validation happens at startup, not per call.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New returns a client for the given API root and bearer token.
// An empty baseURL falls back to DefaultBaseURL.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{},
	}
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one HTTP call. On 2xx the body is decoded into out (when
// out is non-nil); on any other status it returns an *Error with the raw
// status, the body text, and the parsed {error, message} fields when the
// body is the conventional JSON error shape. A body that fails to parse
// as JSON is tolerated - the text alone is kept.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		apiErr := &Error{
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(text),
		}
		var parsed apiError
		if json.Unmarshal(text, &parsed) == nil {
			apiErr.Code = parsed.Code
			apiErr.Message = parsed.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindTransport, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// List returns the most recent saved articles, newest first.
func (c *Client) List(ctx context.Context, limit int) ([]Article, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/articles", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Search queries saved articles. Mode selects the endpoint: keyword
// search hits /articles/search, semantic search hits /articles/semantic.
func (c *Client) Search(ctx context.Context, query, mode string, limit int) ([]Article, error) {
	path := "/articles/search"
	if mode == ModeSemantic {
		path = "/articles/semantic"
	}
	q := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Get fetches a single article by id, including content.
func (c *Client) Get(ctx context.Context, id string) (*Article, error) {
	var a Article
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkRead marks an article as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/articles/"+url.PathEscape(id)+"/read", nil, nil, nil)
}

// Delete removes an article from the account.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(id), nil, nil, nil)
}

// Save creates a new saved article from a URL. A 400 response carries a
// domain error code (unread-limit, limit-reached, already-read,
// invalid-content) which callers classify via IsCode.
func (c *Client) Save(ctx context.Context, req SaveRequest) (*SaveResponse, error) {
	var resp SaveResponse
	if err := c.do(ctx, http.MethodPost, "/articles", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DiscoveryQueue returns the current suggested-article queue.
func (c *Client) DiscoveryQueue(ctx context.Context) ([]DiscoveryItem, error) {
	var resp discoveryResponse
	if err := c.do(ctx, http.MethodGet, "/discovery/queue", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// DiscoveryGenerate asks the service to generate fresh suggestions.
// Returns 429 when generation is rate-limited, 404 when the account has
// nothing to generate from yet.
func (c *Client) DiscoveryGenerate(ctx context.Context) ([]DiscoveryItem, error) {
	var resp discoveryResponse
	if err := c.do(ctx, http.MethodPost, "/discovery/generate", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// DiscoveryDismiss removes a suggestion from the queue.
func (c *Client) DiscoveryDismiss(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/discovery/queue/"+url.PathEscape(id)+"/dismiss", nil, nil, nil)
}

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalog-sync/internal/httpx"
	"catalog-sync/internal/sanitize"
)

const (
	contentTypeJSON = "application/json"
	acceptJSON      = contentTypeJSON

	universitiesPath     = "/v1/marketplace/study-abroad/universities"
	universityByNamePath = "/v1/marketplace/study-abroad/universities/by-name/"
	coursesPath          = "/v1/marketplace/study-abroad/courses"
	courseCheckPath      = "/v1/marketplace/study-abroad/courses/check"
	commissionPath       = "/v1.0/marketplace/commission"
)

// Only these statuses count as success; a 204 from a write is still a failure.
var successStatuses = []int{http.StatusOK, http.StatusCreated}

// Client talks to the study-abroad marketplace API.
type Client struct {
	BaseURL     string
	HTTP        *http.Client
	BearerToken string
}

// New builds a client without a request timeout; a slow endpoint stalls the caller.
func New(baseURL string) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Transport: tr},
	}
}

// request returns the builder for one call. A non-nil payload is sanitized and
// encoded as JSON before the builder is returned.
func (c *Client) request(method, rawURL string, payload map[string]any) (func(context.Context) (*http.Request, error), error) {
	var b []byte
	if payload != nil {
		var err error
		b, err = json.Marshal(sanitize.Map(payload))
		if err != nil {
			return nil, fmt.Errorf("catalog: encode payload: %w", err)
		}
	}

	return func(ctx context.Context) (*http.Request, error) {
		var rd io.Reader
		if b != nil {
			rd = bytes.NewReader(b)
		}
		r, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", contentTypeJSON)
		r.Header.Set("Accept", acceptJSON)
		r.Header.Set("Accept-Encoding", httpx.AcceptEncoding)
		if c.BearerToken != "" {
			r.Header.Set("Authorization", "Bearer "+c.BearerToken)
		}
		return r, nil
	}, nil
}

func (c *Client) send(ctx context.Context, method, rawURL string, payload map[string]any) error {
	build, err := c.request(method, rawURL, payload)
	if err != nil {
		return err
	}
	_, _, err = httpx.Do(ctx, c.HTTP, build, successStatuses...)
	return err
}

func (c *Client) sendJSON(ctx context.Context, method, rawURL string, payload map[string]any, out any) error {
	build, err := c.request(method, rawURL, payload)
	if err != nil {
		return err
	}
	return httpx.DoJSON(ctx, c.HTTP, build, out, successStatuses...)
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("catalog: invalid base url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

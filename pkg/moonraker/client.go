package moonraker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// DefaultPort is the port Moonraker listens on out of the box.
const DefaultPort = 7125

// maxErrorBody bounds how much of a non-2xx response is kept in HTTPError.
const maxErrorBody = 64 << 10

// Params are encoded into the query string of GET and DELETE requests.
type Params map[string]any

// Body is encoded as the JSON body of POST requests.
type Body map[string]any

// Requester performs single round trips against the Moonraker API.
// It is implemented by *Client and can be replaced in tests.
type Requester interface {
	Get(ctx context.Context, path string, params Params) (any, error)
	Post(ctx context.Context, path string, body Body) (any, error)
	Delete(ctx context.Context, path string, params Params) (any, error)
}

// Ensure Client implements Requester at compile time.
var _ Requester = (*Client)(nil)

// Client talks to one Moonraker instance.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	apiKey  string
}

// NewClient builds a Client for http://host:port. The API key is sent as
// X-Api-Key when it is not empty.
func NewClient(host string, port int, apiKey string) *Client {
	base := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport:     http.DefaultTransport.(*http.Transport).Clone(),
			CheckRedirect: noRedirect,
		},
		apiKey: apiKey,
	}
}

// BaseURL returns the scheme and authority requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get sends a GET request and returns the decoded JSON response.
func (c *Client) Get(ctx context.Context, path string, params Params) (any, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post sends a POST request. A nil body sends no request body at all.
func (c *Client) Post(ctx context.Context, path string, body Body) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Delete sends a DELETE request and returns the decoded JSON response.
func (c *Client) Delete(ctx context.Context, path string, params Params) (any, error) {
	return c.do(ctx, http.MethodDelete, path, params, nil)
}

// Close releases pooled connections. It is safe to call at any time.
func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body Body) (any, error) {
	rel := &url.URL{Path: path, RawQuery: encodeParams(params)}
	reqURL := c.baseURL.ResolveReference(rel)

	var rdr io.Reader
	if body != nil {
		payload, err := sonic.ConfigStd.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.WithFields(log.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("moonraker request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out any
	if err := sonic.ConfigStd.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// noRedirect makes a 3xx response surface as an HTTPError instead of being
// followed.
func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case []any:
			for _, item := range v {
				values.Add(key, formatScalar(item))
			}
		default:
			values.Add(key, formatScalar(v))
		}
	}
	return values.Encode()
}

func formatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

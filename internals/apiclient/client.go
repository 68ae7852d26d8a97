// file: internals/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

/* =======================================================
   TOKEN SOURCE
   ======================================================= */

// TokenSource is read on every outgoing request; an empty value means "send no Authorization".
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// StaticToken always returns the same credential.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

/* =======================================================
   CLIENT
   ======================================================= */

type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	quiet  bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithoutLogging silences the per-request log line (tests, health probe).
func WithoutLogging() Option {
	return func(c *Client) { c.quiet = true }
}

// New builds a client for baseURL. An unparsable base URL still yields a client whose
// every call fails with a transport Result, so callers never handle construction errors.
func New(baseURL string, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		log.Printf("[ERROR] invalid API base URL %q: %v", baseURL, err)
		base = nil
	}
	c := &Client{base: base, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a shallow copy that reads credentials from ts.
func (c *Client) WithToken(ts TokenSource) *Client {
	cp := *c
	cp.tokens = ts
	return &cp
}

func (c *Client) BaseURL() string {
	if c.base == nil {
		return ""
	}
	return c.base.String()
}

/* =======================================================
   OPERATIONS
   ======================================================= */

// Fetch reads a collection or a single object.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) Result {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) Result {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any) Result {
	return c.do(ctx, http.MethodPut, endpoint, nil, body)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body any) Result {
	return c.do(ctx, http.MethodPatch, endpoint, nil, body)
}

func (c *Client) Delete(ctx context.Context, endpoint string) Result {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) resolve(endpoint string, params url.Values) (string, error) {
	if c.base == nil {
		return "", errors.New("API base URL is not configured")
	}
	ref, err := url.Parse(strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return "", err
	}
	u := c.base.ResolveReference(ref)
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body any) (res Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	target, err := c.resolve(endpoint, params)
	if err != nil {
		return failure(newTransportError(err))
	}
	defer func() {
		if c.quiet {
			return
		}
		if res.Success {
			log.Printf("[API] %s %s -> %d (%s)", method, target, res.Status, time.Since(start))
		} else {
			log.Printf("[API] %s %s -> %s", method, target, res.Err.Error())
		}
	}()

	var reader io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		if err != nil {
			return failure(newTransportError(err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return failure(newTransportError(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(newTransportError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(newTransportError(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var decoded any
		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			if err := sonic.Unmarshal(trimmed, &decoded); err != nil {
				decoded = nil
			}
		}
		res = failure(newBackendError(resp.StatusCode, decoded, stripMarkup(raw)))
		res.Status = resp.StatusCode
		res.Raw = raw
		return res
	}

	res, err = normalize(resp.StatusCode, raw)
	if err != nil {
		return failure(&AppError{Kind: KindShape, Status: resp.StatusCode, Message: "invalid JSON in response: " + err.Error(), Cause: err})
	}
	return res
}

// stripMarkup keeps a short plain-text hint from non-JSON error pages.
func stripMarkup(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "<") {
		return ""
	}
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

/* =======================================================
   RESULT
   ======================================================= */

// Result is what every operation returns. Callers only branch on Success.
type Result struct {
	Success bool
	Status  int
	// Body is the decoded object body on success; nil when the body was an array or empty.
	Body map[string]any
	// Results is never nil on success.
	Results []json.RawMessage
	Count   int
	Raw     []byte
	Err     *AppError

	shapeMismatch bool
}

func failure(e *AppError) Result {
	return Result{Success: false, Err: e, Status: e.Status}
}

// Failure builds a failed Result; fakes in tests use it.
func Failure(e *AppError) Result { return failure(e) }

// ResultsShapeOK is false when the backend sent a "results" key that is not an array.
func (r Result) ResultsShapeOK() bool { return !r.shapeMismatch }

// Message is the human readable failure text, or "" on success.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

// Decode unmarshals the raw body into v (detail endpoints).
func (r Result) Decode(v any) error {
	if len(bytes.TrimSpace(r.Raw)) == 0 {
		return errors.New("empty body")
	}
	return sonic.Unmarshal(r.Raw, v)
}

// DecodeResults converts the normalized results into typed rows.
func DecodeResults[T any](r Result) ([]T, error) {
	out := make([]T, 0, len(r.Results))
	for i, item := range r.Results {
		var v T
		if err := sonic.Unmarshal(item, &v); err != nil {
			return nil, NewShapeError("row %d: %v", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Normalize builds a success Result from a raw 2xx body. Exported for fakes.
func Normalize(status int, raw []byte) (Result, error) {
	return normalize(status, raw)
}

func normalize(status int, raw []byte) (Result, error) {
	res := Result{Success: true, Status: status, Raw: raw, Results: []json.RawMessage{}}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return res, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return Result{}, err
		}
		if items != nil {
			res.Results = items
		}
		res.Count = len(res.Results)
		return res, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := sonic.Unmarshal(trimmed, &fields); err != nil {
			return Result{}, err
		}
		var body map[string]any
		if err := sonic.Unmarshal(trimmed, &body); err != nil {
			return Result{}, err
		}
		res.Body = body

		if rawResults, ok := fields["results"]; ok {
			rr := bytes.TrimSpace(rawResults)
			switch {
			case len(rr) == 0 || string(rr) == "null":
				// null and absent are the same thing: an empty collection
			case rr[0] == '[':
				var items []json.RawMessage
				if err := sonic.Unmarshal(rr, &items); err != nil {
					return Result{}, err
				}
				if items != nil {
					res.Results = items
				}
			default:
				res.shapeMismatch = true
			}
		}

		res.Count = len(res.Results)
		if n, ok := body["count"].(float64); ok && n >= 0 {
			res.Count = int(n)
		}
		return res, nil
	default:
		// plain text or scalar success body
		return res, nil
	}
}

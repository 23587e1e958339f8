package caselaw

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client executes one case-law search per invocation.
type Client interface {
	Search(ctx context.Context, req Request) (*Response, error)
}

// DefaultTimeout bounds a single search request. The upstream contract
// specifies no timeout; a stuck request would otherwise pin the Loading
// state forever.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// HTTPClient is the production Client: one GET per search, no retries,
// no caching. Stale-response handling belongs to the caller.
type HTTPClient struct {
	base       *url.URL
	queryParam string
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithQueryParam renames the free-text query parameter. The default is
// "query"; one deployed endpoint variant expects "scenario" instead.
func WithQueryParam(name string) Option {
	return func(c *HTTPClient) {
		c.queryParam = name
	}
}

// WithTimeout overrides DefaultTimeout on the underlying http.Client.
// The override holds regardless of option order, including when a
// custom client is supplied via WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = d
	}
}

// NewHTTPClient creates a client for the search service rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid search endpoint %q", baseURL)
	}

	c := &HTTPClient{
		base:       base,
		queryParam: "query",
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tracer:     otel.Tracer("caselook/caselaw"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	return c, nil
}

// Search implements Client.
func (c *HTTPClient) Search(ctx context.Context, req Request) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "caselaw.search", trace.WithAttributes(
		attribute.String("search.query", req.Trimmed()),
		attribute.String("search.court", req.Court.Param()),
		attribute.String("search.sort", req.Sort.Param()),
	))
	defer span.End()

	resp, err := c.search(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("search.result_count", len(resp.Records)))
	return resp, nil
}

func (c *HTTPClient) search(ctx context.Context, req Request) (*Response, error) {
	searchURL := c.base.JoinPath("/search")

	query := searchURL.Query()
	query.Set(c.queryParam, req.Trimmed())
	query.Set("court", req.Court.Param())
	query.Set("sort", req.Sort.Param())
	searchURL.RawQuery = query.Encode()

	slog.DebugContext(ctx, "executing search", slog.String("url", searchURL.String()))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: errors.WithStack(err)}
	}

	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Err: errors.WithStack(err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &ServerError{
			Status:  httpResp.StatusCode,
			Message: serverMessage(body),
		}
	}

	return decodeResponse(body, httpResp.StatusCode)
}

// serverMessage extracts the error text from a failure body, if there is
// one worth surfacing in logs. Never shown raw to the user.
func serverMessage(body []byte) string {
	resp, err := decodeResponse(body, 0)
	if err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) {
			return serverErr.Message
		}
		return ""
	}
	return resp.Message
}

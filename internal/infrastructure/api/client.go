// Package api implements the document repositories against the remote inventory API.
//
// The Client speaks HTTPS/JSON, forwards the caller's identity, and turns every
// non-2xx response into an *apperror.AppError carrying the server's code and
// message. Adapters unwrap the optional {_tag,_value} envelope and map the
// loose wire shapes into strict domain entities.
package api

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

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"backoffice/internal/core/apperror"
	appctx "backoffice/internal/core/context"
	"backoffice/pkg/logger"
)

var tracer = otel.Tracer("backoffice/api")

const (
	// maxBodySize caps the response body read from the inventory API.
	maxBodySize = 8 << 20

	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "backoffice/1.0"
)

// Config configures the inventory API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Transport overrides the HTTP transport (tests, proxies).
	Transport http.RoundTripper
}

// Client is a thin JSON client for the inventory API.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid inventory api base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:   u.String(),
		http:      &http.Client{Timeout: timeout, Transport: cfg.Transport},
		userAgent: userAgent,
	}, nil
}

// Request describes one call to the inventory API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// IdempotencyKey is sent on create calls so retried requests are not duplicated.
	IdempotencyKey string
}

// Do sends req and returns the payload of a 2xx response with one envelope layer removed.
// An empty body yields JSON null.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "api "+req.Method)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.Path),
	)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		logger.Warn(ctx, "inventory api unreachable", "method", req.Method, "path", req.Path, "error", err)
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	logger.Debug(ctx, "inventory api call",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(started).Milliseconds(),
	)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, apperror.NewUpstreamMalformed(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		appErr := problemFrom(resp.StatusCode, body)
		span.SetStatus(codes.Error, appErr.Code)
		return nil, appErr
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, apperror.NewUpstreamMalformed(fmt.Errorf("%s %s: invalid json", req.Method, req.Path))
	}
	return Unwrap(body), nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.Path, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip, zstd")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if user := appctx.GetUser(ctx); user != nil {
		if user.Token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+user.Token)
		}
		if user.TenantID != "" {
			httpReq.Header.Set("X-Tenant-ID", user.TenantID)
		}
	}
	if requestID := appctx.GetRequestID(ctx); requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	return httpReq, nil
}

// readBody decodes the response according to Content-Encoding.
// Setting Accept-Encoding explicitly disables net/http's transparent gzip.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}

	body, err := io.ReadAll(io.LimitReader(r, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}
	return body, nil
}

// problem is the error body shape of the inventory API. Some endpoints
// nest code and message under "error", others send "error" as a string.
type problem struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details map[string]any  `json:"details"`
	Error   json.RawMessage `json:"error"`
}

func problemFrom(status int, body []byte) *apperror.AppError {
	var p problem
	if err := json.Unmarshal(Unwrap(bytes.TrimSpace(body)), &p); err == nil && len(p.Error) > 0 {
		var nested problem
		var text string
		switch {
		case json.Unmarshal(p.Error, &nested) == nil:
			if p.Code == "" {
				p.Code = nested.Code
			}
			if p.Message == "" {
				p.Message = nested.Message
			}
			if p.Details == nil {
				p.Details = nested.Details
			}
		case json.Unmarshal(p.Error, &text) == nil && p.Message == "":
			p.Message = text
		}
	}
	return apperror.FromStatus(status, p.Code, p.Message, p.Details)
}

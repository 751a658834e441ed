// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apiclient is the typed HTTP client of the Phoenix blogging backend.

Every call goes through one pipeline:

 1. The bearer token of the current session (if any) is attached.
 2. A correlation ID is forwarded as X-Request-ID.
 3. Non-2xx answers become an [apperr.AppError] carrying the status and the
    backend's own message; transport failures become a NETWORK_ERROR.
 4. The `{"data": ...}` envelope is unwrapped, except for the few endpoints the
    backend answers bare.

There is no retry and no client-side timeout beyond the configured transport
default: the caller decides whether to try again.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/ctxutil"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/pkg/uuidv7"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// TokenSource yields the bearer token of the current session, or "" when
// logged out. It is consulted on every call, so logging in or out takes
// effect immediately.
type TokenSource interface {
	Token() string
}

// Options configures a [Client].
type Options struct {
	BaseURL string
	Tokens  TokenSource
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Timeout applies to the whole exchange; zero keeps the transport default.
	Timeout time.Duration

	// HTTPClient overrides the underlying client (tests).
	HTTPClient *http.Client
}

// Client calls the blogging backend. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New validates opts and returns a client.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base URL %q", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		tokens:  opts.Tokens,
		logger:  logger,
		metrics: opts.Metrics,
	}, nil
}

// # Request Pipeline

// call describes one backend exchange.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any

	// bare marks endpoints that answer without the data envelope.
	bare bool
}

// envelope is the backend's success wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorBody is the backend's failure body.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// send runs the pipeline and returns the (unwrapped) payload bytes.
func (c *Client) send(ctx context.Context, desc call) (json.RawMessage, error) {
	startTime := time.Now()

	request, err := c.newRequest(ctx, desc)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		c.observe(ctx, desc, 0, startTime)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperr.Network(err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	c.observe(ctx, desc, response.StatusCode, startTime)
	if err != nil {
		return nil, apperr.Network(err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, remoteError(response.StatusCode, payload)
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || desc.bare {
		return payload, nil
	}

	var wrapped envelope
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return nil, apperr.Internal(fmt.Errorf("apiclient: %s: malformed envelope: %w", desc.op, err))
	}
	return wrapped.Data, nil
}

// newRequest builds the outgoing request with auth and tracing headers.
func (c *Client) newRequest(ctx context.Context, desc call) (*http.Request, error) {
	if err := checkPath(desc.path); err != nil {
		return nil, err
	}

	target := c.baseURL.JoinPath(desc.path)
	if len(desc.query) > 0 {
		target.RawQuery = desc.query.Encode()
	}

	var body io.Reader
	if desc.body != nil {
		encoded, err := json.Marshal(desc.body)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("apiclient: %s: encode body: %w", desc.op, err))
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, desc.method, target.String(), body)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("apiclient: %s: %w", desc.op, err))
	}

	request.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	request.Header.Set(constants.HeaderUserAgent, constants.AppName+"/"+constants.AppVersion)
	if body != nil {
		request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	requestID := ctxutil.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuidv7.New()
	}
	request.Header.Set(constants.HeaderXRequestID, requestID)

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
		}
	}

	return request, nil
}

// observe logs and measures one exchange. Status 0 means no response.
func (c *Client) observe(ctx context.Context, desc call, status int, startTime time.Time) {
	elapsed := time.Since(startTime)

	c.logger.DebugContext(ctx, "api_call",
		slog.String("op", desc.op),
		slog.String("method", desc.method),
		slog.String("path", desc.path),
		slog.Int("status", status),
		slog.Int64("latency_ms", elapsed.Milliseconds()),
	)

	if c.metrics == nil {
		return
	}
	c.metrics.APIRequestsTotal.WithLabelValues(desc.op, desc.method, strconv.Itoa(status)).Inc()
	c.metrics.APIRequestDuration.WithLabelValues(desc.op, desc.method).Observe(elapsed.Seconds())
}

// remoteError maps a non-2xx answer onto an AppError, keeping the backend's
// message when it sent one.
func remoteError(status int, payload []byte) error {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		message := body.Message
		if message == "" {
			message = body.Error
		}
		return apperr.Remote(status, message)
	}
	return apperr.Remote(status, "")
}

// # Typed Helpers

// do runs desc and decodes its payload into a T.
func do[T any](ctx context.Context, c *Client, desc call) (T, error) {
	var out T

	payload, err := c.send(ctx, desc)
	if err != nil {
		return out, err
	}

	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return out, nil
	}

	if err := json.Unmarshal(payload, &out); err != nil {
		return out, apperr.Internal(fmt.Errorf("apiclient: %s: decode: %w", desc.op, err))
	}
	return out, nil
}

// exec runs desc and discards its payload.
func (c *Client) exec(ctx context.Context, desc call) error {
	_, err := c.send(ctx, desc)
	return err
}

// segment escapes one path segment (IDs, usernames).
func segment(value string) string {
	return url.PathEscape(value)
}

// checkPath rejects a path with an empty, "." or ".." segment. JoinPath would
// clean those away and the call would land on a different endpoint.
func checkPath(path string) error {
	for _, part := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if part == "" || part == "." || part == ".." {
			return apperr.ValidationError("Invalid identifier")
		}
	}
	return nil
}

// IsUnauthorized reports whether err means the backend rejected the session.
func IsUnauthorized(err error) bool {
	return apperr.HasStatus(err, http.StatusUnauthorized)
}

// IsCanceled reports whether err comes from the caller's context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

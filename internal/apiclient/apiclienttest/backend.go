// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package apiclienttest provides a fake blogging backend for tests.
//
// The fake is a chi router behind an httptest server. Tests register only the
// routes they exercise; every request is recorded so assertions can check
// exactly what left the client (or that nothing did).
package apiclienttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/phoenix/internal/apiclient"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
)

// Recorded is one request received by the fake backend.
type Recorded struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	RequestID     string
	Body          []byte
}

// Backend is a fake blogging backend.
type Backend struct {
	Router chi.Router
	Server *httptest.Server

	mu       sync.Mutex
	requests []Recorded
}

// New starts a fake backend; it is closed when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()

	backend := &Backend{Router: chi.NewRouter()}
	backend.Router.Use(backend.record)
	backend.Server = httptest.NewServer(backend.Router)
	t.Cleanup(backend.Server.Close)

	return backend
}

// record stores the request before routing it.
func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, Recorded{
			Method:        request.Method,
			Path:          request.URL.Path,
			RawQuery:      request.URL.RawQuery,
			Authorization: request.Header.Get("Authorization"),
			RequestID:     request.Header.Get("X-Request-ID"),
			Body:          body,
		})
		b.mu.Unlock()

		next.ServeHTTP(writer, request)
	})
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Recorded, len(b.requests))
	copy(out, b.requests)
	return out
}

// Count returns how many requests matched method and path.
func (b *Backend) Count(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Client returns an apiclient pointed at the fake.
func (b *Backend) Client(t testing.TB, tokens apiclient.TokenSource) *apiclient.Client {
	t.Helper()

	client, err := apiclient.New(apiclient.Options{
		BaseURL: b.Server.URL,
		Tokens:  tokens,
		Metrics: metrics.Discard(),
	})
	if err != nil {
		t.Fatalf("apiclienttest: %v", err)
	}
	return client
}

// # Response Writers

// Data answers with the standard `{"data": v}` envelope.
func Data(writer http.ResponseWriter, status int, v any) {
	Bare(writer, status, map[string]any{"success": true, "data": v})
}

// Bare answers with v as the whole body.
func Bare(writer http.ResponseWriter, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(v)
}

// Fail answers with the backend's error body.
func Fail(writer http.ResponseWriter, status int, message string) {
	Bare(writer, status, map[string]any{"success": false, "message": message})
}

// StaticToken is a fixed [apiclient.TokenSource].
type StaticToken string

// Token implements [apiclient.TokenSource].
func (s StaticToken) Token() string { return string(s) }

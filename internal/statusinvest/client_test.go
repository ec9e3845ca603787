package statusinvest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/fii-screener/internal/statusinvest"
)

// scriptedTransport replays a fixed sequence of responses, recording the
// requests it saw.
type scriptedTransport struct {
	responses []scriptedResponse
	requests  []*http.Request
}

type scriptedResponse struct {
	status int
	body   string
	err    error
}

func (s *scriptedTransport) Do(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return nil, errors.New("no scripted response left")
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	if next.err != nil {
		return nil, next.err
	}
	return &http.Response{
		StatusCode: next.status,
		Body:       io.NopCloser(strings.NewReader(next.body)),
	}, nil
}

func newTestClient(transport *scriptedTransport, sleeps *[]time.Duration) *statusinvest.Client {
	return statusinvest.NewClient("https://example.test/fundos-imobiliarios/%s", time.Second, zerolog.Nop()).
		WithTransport(transport).
		WithSleep(func(d time.Duration) { *sleeps = append(*sleeps, d) })
}

func TestClientFetch(t *testing.T) {
	okPage := `<html><body><div title="Vacância"><strong>3,00%</strong></div></body></html>`

	t.Run("success on first attempt makes one request and no sleeps", func(t *testing.T) {
		transport := &scriptedTransport{responses: []scriptedResponse{
			{status: http.StatusOK, body: okPage},
		}}
		var sleeps []time.Duration

		patch := newTestClient(transport, &sleeps).Fetch(context.Background(), "GGRC11")

		if len(transport.requests) != 1 {
			t.Errorf("Expected 1 request, got %d", len(transport.requests))
		}
		if len(sleeps) != 0 {
			t.Errorf("Expected no sleeps, got %v", sleeps)
		}
		if patch.VacancyPct == nil || *patch.VacancyPct != 3.0 {
			t.Errorf("Expected vacancy 3.0, got %v", patch.VacancyPct)
		}
	})

	t.Run("retries twice with 1s and 2s backoff before succeeding", func(t *testing.T) {
		transport := &scriptedTransport{responses: []scriptedResponse{
			{err: errors.New("connection refused")},
			{status: http.StatusServiceUnavailable},
			{status: http.StatusOK, body: okPage},
		}}
		var sleeps []time.Duration

		patch := newTestClient(transport, &sleeps).Fetch(context.Background(), "GGRC11")

		if len(transport.requests) != 3 {
			t.Errorf("Expected 3 requests, got %d", len(transport.requests))
		}
		if len(sleeps) != 2 || sleeps[0] != time.Second || sleeps[1] != 2*time.Second {
			t.Errorf("Expected backoff [1s 2s], got %v", sleeps)
		}
		if patch.IsEmpty() {
			t.Error("Expected patch from third attempt, got empty patch")
		}
	})

	t.Run("all attempts failing returns an empty patch", func(t *testing.T) {
		transport := &scriptedTransport{responses: []scriptedResponse{
			{err: errors.New("connection refused")},
			{err: errors.New("connection refused")},
			{err: errors.New("connection refused")},
		}}
		var sleeps []time.Duration

		patch := newTestClient(transport, &sleeps).Fetch(context.Background(), "GGRC11")

		if len(transport.requests) != 3 {
			t.Errorf("Expected 3 requests, got %d", len(transport.requests))
		}
		if len(sleeps) != 2 {
			t.Errorf("Expected 2 sleeps, got %v", sleeps)
		}
		if !patch.IsEmpty() {
			t.Errorf("Expected empty patch, got fields %v", patch.Fields())
		}
	})

	t.Run("a page with no indicators still ends the retry loop", func(t *testing.T) {
		transport := &scriptedTransport{responses: []scriptedResponse{
			{status: http.StatusOK, body: "<html><body><p>maintenance</p></body></html>"},
		}}
		var sleeps []time.Duration

		patch := newTestClient(transport, &sleeps).Fetch(context.Background(), "GGRC11")

		if len(transport.requests) != 1 {
			t.Errorf("Expected 1 request, got %d", len(transport.requests))
		}
		if !patch.IsEmpty() {
			t.Errorf("Expected empty patch, got fields %v", patch.Fields())
		}
	})

	t.Run("request targets the lower-cased ticker with browser headers", func(t *testing.T) {
		transport := &scriptedTransport{responses: []scriptedResponse{
			{status: http.StatusOK, body: okPage},
		}}
		var sleeps []time.Duration

		newTestClient(transport, &sleeps).Fetch(context.Background(), "GGRC11")

		req := transport.requests[0]
		if got := req.URL.String(); got != "https://example.test/fundos-imobiliarios/ggrc11" {
			t.Errorf("Unexpected URL %s", got)
		}
		if ua := req.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla/5.0") {
			t.Errorf("Expected browser User-Agent, got %q", ua)
		}
		if lang := req.Header.Get("Accept-Language"); !strings.HasPrefix(lang, "pt-BR") {
			t.Errorf("Expected pt-BR Accept-Language, got %q", lang)
		}
	})
}

package entropy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/logger"
	"github.com/osse101/RPSLS_Go/internal/metrics"
)

// Config describes the remote random provider
type Config struct {
	// URL of the provider. Empty disables the remote call.
	URL string
	// Timeout bounds a single provider request
	Timeout time.Duration
	// Field is the JSON field holding the drawn integer
	Field string
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(c.Field) == "" {
		c.Field = DefaultField
	}
	return c
}

// Source produces gestures from a remote provider with a local fallback.
// It never returns an error and is safe for concurrent use.
type Source struct {
	cfg    Config
	client *http.Client
	gen    Generator
}

// NewSource creates a Source. A nil client or generator gets a default.
func NewSource(cfg Config, client *http.Client, gen Generator) *Source {
	if client == nil {
		client = &http.Client{}
	}
	if gen == nil {
		gen = MathRandGenerator{}
	}
	return &Source{
		cfg:    cfg.withDefaults(),
		client: client,
		gen:    gen,
	}
}

// GestureFromDraw maps an integer draw onto a gesture as AllGestures()[(n-1) mod 5]
func GestureFromDraw(n int) domain.Gesture {
	idx := (n - 1) % domain.GestureCount
	if idx < 0 {
		idx += domain.GestureCount
	}
	return domain.AllGestures()[idx]
}

// NextGesture draws one gesture, preferring the remote provider.
// Any provider failure falls back to a local draw in [1,100].
func (s *Source) NextGesture(ctx context.Context) domain.Gesture {
	if s.cfg.URL == "" {
		return s.LocalGesture()
	}

	res := s.fetch(ctx)
	if res.kind != failureNone {
		logger.FromContext(ctx).Debug(LogMsgProviderFallback, "reason", res.kind.String(), "error", res.err)
		return s.LocalGesture()
	}

	logger.FromContext(ctx).Debug(LogMsgProviderDraw, "value", res.value)
	return GestureFromDraw(res.value)
}

// LocalGesture draws from the local generator only
func (s *Source) LocalGesture() domain.Gesture {
	return GestureFromDraw(s.gen.IntBetween(MinDraw, MaxDraw))
}

// Pick returns one of candidates uniformly using the local generator.
// An empty candidate list picks from all gestures.
func (s *Source) Pick(candidates []domain.Gesture) domain.Gesture {
	if len(candidates) == 0 {
		candidates = domain.AllGestures()
	}
	idx := s.gen.IntBetween(0, len(candidates)-1)
	if idx < 0 || idx >= len(candidates) {
		idx = 0
	}
	return candidates[idx]
}

// failureKind tags why a provider call did not yield a usable value
type failureKind int

const (
	failureNone failureKind = iota
	failureRequest
	failureTransport
	failureTimeout
	failureStatus
	failureDecode
	failureMissingField
	failureOutOfRange
)

func (k failureKind) String() string {
	switch k {
	case failureNone:
		return "ok"
	case failureRequest:
		return "request"
	case failureTransport:
		return "transport"
	case failureTimeout:
		return "timeout"
	case failureStatus:
		return "status"
	case failureDecode:
		return "decode"
	case failureMissingField:
		return "missing_field"
	case failureOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

type fetchResult struct {
	value int
	kind  failureKind
	err   error
}

func failed(kind failureKind, err error) fetchResult {
	return fetchResult{kind: kind, err: err}
}

// fetch performs exactly one provider request and records its outcome
func (s *Source) fetch(ctx context.Context) fetchResult {
	start := time.Now()
	res := s.doFetch(ctx)

	outcome := res.kind.String()
	metrics.EntropyRequests.WithLabelValues(outcome).Inc()
	metrics.EntropyRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return res
}

func (s *Source) doFetch(ctx context.Context) fetchResult {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return failed(failureRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return failed(failureTimeout, err)
		}
		return failed(failureTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failed(failureStatus, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return failed(failureTimeout, err)
		}
		return failed(failureTransport, err)
	}

	return s.parse(body)
}

// parse extracts the configured field as an integer in [MinDraw, MaxDraw]
func (s *Source) parse(body []byte) fetchResult {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return failed(failureDecode, err)
	}

	raw, ok := payload[s.cfg.Field]
	if !ok || string(raw) == "null" {
		return failed(failureMissingField, fmt.Errorf("field %q not present", s.cfg.Field))
	}

	// Strings and fractions are rejected, only a JSON integer is a draw
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return failed(failureDecode, err)
	}

	if v < MinDraw || v > MaxDraw {
		return failed(failureOutOfRange, fmt.Errorf("value %d outside [%d,%d]", v, MinDraw, MaxDraw))
	}

	return fetchResult{value: int(v)}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

package entropy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// fixedGenerator always returns n, clamped into the requested range
type fixedGenerator struct {
	n int
}

func (g fixedGenerator) IntBetween(min, max int) int {
	if g.n < min {
		return min
	}
	if g.n > max {
		return max
	}
	return g.n
}

func newProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func jsonProvider(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestGestureFromDraw(t *testing.T) {
	tests := []struct {
		n    int
		want domain.Gesture
	}{
		{1, domain.Rock},
		{2, domain.Paper},
		{3, domain.Scissors},
		{4, domain.Lizard},
		{5, domain.Spock},
		{6, domain.Rock},
		{42, domain.Paper},
		{99, domain.Lizard},
		{100, domain.Spock},
		{0, domain.Spock},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("draw_%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, GestureFromDraw(tt.n))
		})
	}
}

func TestNextGesture_ProviderValue(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Gesture
	}{
		{"lowest maps to rock", `{"random_number": 1}`, domain.Rock},
		{"highest maps to spock", `{"random_number": 100}`, domain.Spock},
		{"middle value", `{"random_number": 58}`, domain.Scissors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hits := newProvider(t, jsonProvider(tt.body))
			// generator would yield Paper if the fallback were used
			src := NewSource(Config{URL: srv.URL}, srv.Client(), fixedGenerator{n: 2})

			assert.Equal(t, tt.want, src.NextGesture(context.Background()))
			assert.Equal(t, int32(1), atomic.LoadInt32(hits))
		})
	}
}

func TestNextGesture_CustomField(t *testing.T) {
	srv, _ := newProvider(t, jsonProvider(`{"value": 5}`))
	src := NewSource(Config{URL: srv.URL, Field: "value"}, srv.Client(), fixedGenerator{n: 1})

	assert.Equal(t, domain.Spock, src.NextGesture(context.Background()))
}

func TestNextGesture_FallbackUsesGenerator(t *testing.T) {
	srv, _ := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for k := MinDraw; k <= MaxDraw; k++ {
		src := NewSource(Config{URL: srv.URL}, srv.Client(), fixedGenerator{n: k})
		want := domain.AllGestures()[(k-1)%domain.GestureCount]
		require.Equal(t, want, src.NextGesture(context.Background()), "draw %d", k)
	}
}

func TestNextGesture_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"bad status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed json", jsonProvider(`{"random_number":`)},
		{"missing field", jsonProvider(`{"other": 3}`)},
		{"null field", jsonProvider(`{"random_number": null}`)},
		{"non integer", jsonProvider(`{"random_number": 3.5}`)},
		{"string value", jsonProvider(`{"random_number": "3"}`)},
		{"boolean value", jsonProvider(`{"random_number": true}`)},
		{"below range", jsonProvider(`{"random_number": 0}`)},
		{"above range", jsonProvider(`{"random_number": 101}`)},
		{"not an object", jsonProvider(`[1, 2, 3]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hits := newProvider(t, tt.handler)
			src := NewSource(Config{URL: srv.URL}, srv.Client(), fixedGenerator{n: 4})

			assert.Equal(t, domain.Lizard, src.NextGesture(context.Background()))
			assert.Equal(t, int32(1), atomic.LoadInt32(hits), "no retries")
		})
	}
}

func TestNextGesture_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv, _ := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	src := NewSource(Config{URL: srv.URL, Timeout: 20 * time.Millisecond}, srv.Client(), fixedGenerator{n: 3})

	start := time.Now()
	assert.Equal(t, domain.Scissors, src.NextGesture(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestNextGesture_CancelledContext(t *testing.T) {
	srv, _ := newProvider(t, jsonProvider(`{"random_number": 1}`))
	src := NewSource(Config{URL: srv.URL}, srv.Client(), fixedGenerator{n: 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, domain.Spock, src.NextGesture(ctx))
}

func TestNextGesture_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := NewSource(Config{URL: url}, nil, fixedGenerator{n: 1})
	assert.Equal(t, domain.Rock, src.NextGesture(context.Background()))
}

func TestNextGesture_EmptyURLIsLocalOnly(t *testing.T) {
	src := NewSource(Config{}, nil, fixedGenerator{n: 100})
	assert.Equal(t, domain.Spock, src.NextGesture(context.Background()))
}

func TestFetch_FailureKinds(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    failureKind
		value   int
	}{
		{"ok", jsonProvider(`{"random_number": 7}`), failureNone, 7},
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) }, failureStatus, 0},
		{"decode", jsonProvider(`not json`), failureDecode, 0},
		{"missing", jsonProvider(`{}`), failureMissingField, 0},
		{"range", jsonProvider(`{"random_number": -3}`), failureOutOfRange, 0},
		{"string-typed value", jsonProvider(`{"random_number": "3"}`), failureDecode, 0},
		{"fractional value", jsonProvider(`{"random_number": 3.0}`), failureDecode, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newProvider(t, tt.handler)
			src := NewSource(Config{URL: srv.URL}, srv.Client(), nil)

			res := src.fetch(context.Background())
			assert.Equal(t, tt.want, res.kind)
			assert.Equal(t, tt.value, res.value)
			if tt.want == failureNone {
				assert.NoError(t, res.err)
			} else {
				assert.Error(t, res.err)
			}
		})
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	src := NewSource(Config{URL: "://bad"}, nil, nil)
	assert.Equal(t, failureRequest, src.fetch(context.Background()).kind)
}

func TestPick(t *testing.T) {
	candidates := []domain.Gesture{domain.Paper, domain.Spock}

	assert.Equal(t, domain.Paper, NewSource(Config{}, nil, fixedGenerator{n: 0}).Pick(candidates))
	assert.Equal(t, domain.Spock, NewSource(Config{}, nil, fixedGenerator{n: 1}).Pick(candidates))
	assert.Equal(t, domain.Lizard, NewSource(Config{}, nil, fixedGenerator{n: 3}).Pick(nil))
}

func TestPick_AlwaysFromCandidates(t *testing.T) {
	src := NewSource(Config{}, nil, nil)
	candidates := []domain.Gesture{domain.Rock, domain.Scissors}

	for i := 0; i < 200; i++ {
		assert.Contains(t, candidates, src.Pick(candidates))
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{URL: "http://example"}.withDefaults()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultField, cfg.Field)
}

func TestMathRandGenerator_Range(t *testing.T) {
	gen := MathRandGenerator{}
	for i := 0; i < 500; i++ {
		n := gen.IntBetween(MinDraw, MaxDraw)
		require.GreaterOrEqual(t, n, MinDraw)
		require.LessOrEqual(t, n, MaxDraw)
	}
	assert.Equal(t, 3, gen.IntBetween(3, 1))
}

package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector(0))

	tests := []struct {
		name           string
		method         string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", http.MethodGet, apiKey, "/api/v1/choices", http.StatusOK},
		{"Invalid API Key", http.MethodGet, "wrong-key", "/api/v1/choices", http.StatusUnauthorized},
		{"Missing API Key", http.MethodGet, "", "/api/v1/play", http.StatusUnauthorized},
		{"Public Path - Healthz", http.MethodGet, "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", http.MethodGet, "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", http.MethodGet, "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", http.MethodGet, "", "/swagger/index.html", http.StatusOK},
		{"Preflight bypasses auth", http.MethodOptions, "", "/api/v1/play", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailedAttempts(t *testing.T) {
	detector := NewSuspiciousActivityDetector(0)
	handler := AuthMiddleware("secret", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/choices", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(5)
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/choices", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/choices", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Another client keeps its own budget
	other := httptest.NewRequest(http.MethodGet, "/api/v1/choices", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()
	assert.Equal(t, 6, count)
}

func TestRateLimitMiddleware_PublicPathsUncounted(t *testing.T) {
	detector := NewSuspiciousActivityDetector(1)
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestNewSuspiciousActivityDetector_DefaultLimit(t *testing.T) {
	assert.Equal(t, RateLimitMaxRequests, NewSuspiciousActivityDetector(0).maxRequests)
	assert.Equal(t, 10, NewSuspiciousActivityDetector(10).maxRequests)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{"Direct connection", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"Untrusted proxy header ignored", "203.0.113.5:4000", "1.2.3.4", nil, "203.0.113.5"},
		{"Trusted proxy uses rightmost hop", "10.0.0.1:4000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"Trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"Remote address without port", "203.0.113.5", "", nil, "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/play", strings.NewReader("this body is far too large"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

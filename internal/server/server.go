package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RPSLS_Go/internal/database"
	"github.com/osse101/RPSLS_Go/internal/game"
	"github.com/osse101/RPSLS_Go/internal/handler"
	"github.com/osse101/RPSLS_Go/internal/history"
	"github.com/osse101/RPSLS_Go/internal/logger"
	"github.com/osse101/RPSLS_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string // Empty disables authentication
	AllowedOrigins []string
	TrustedProxies []string
	Version        string
	// MaxRequestsPerWindow caps requests per client IP; zero uses RateLimitMaxRequests
	MaxRequestsPerWindow int
}

// Dependencies are the services the routes dispatch to
type Dependencies struct {
	DBPool         database.Pool
	GameService    game.Service
	HistoryService history.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	handler.InitValidator()
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.MaxRequestsPerWindow)

	r.Use(chimiddleware.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	} else {
		slog.Info(LogMsgAuthDisabled)
	}
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(deps.GameService)
	historyHandler := handler.NewHistoryHandler(deps.HistoryService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Stateless rules evaluation
		r.Route("/logic", func(r chi.Router) {
			r.Get("/choices", handler.HandleLogicChoices())
			r.Post("/evaluate", handler.HandleEvaluate())
		})

		// Play orchestrator
		r.Get("/choices", gameHandler.HandleChoices)
		r.Get("/choice", gameHandler.HandleRandomChoice)
		r.Post("/play", gameHandler.HandlePlay)
		r.Get("/history", gameHandler.HandleListHistory)
		r.Delete("/history", gameHandler.HandleClearHistory)

		// Players and statistics
		r.Route("/players", func(r chi.Router) {
			r.Post("/", historyHandler.HandleCreatePlayer)
			r.Get("/{id}", historyHandler.HandleGetPlayer)
			r.Get("/{id}/stats", historyHandler.HandleGetPlayerStats)
		})

		// Game history
		r.Route("/games", func(r chi.Router) {
			r.Post("/", historyHandler.HandleRecordGame)
			r.Get("/", historyHandler.HandleListGames)
			r.Delete("/cleanup", historyHandler.HandleCleanup)
			r.Get("/{id}", historyHandler.HandleGetGame)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestIDFrom honours a sane incoming X-Request-ID, otherwise generates one
func requestIDFrom(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderRequestID)); id != "" && len(id) <= MaxRequestIDLength {
		return id
	}
	return logger.GenerateRequestID()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestIDFrom(r)
		w.Header().Set(HeaderRequestID, requestID)
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Skip logging for health checks and metrics scraping
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

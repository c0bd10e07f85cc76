package server

import (
	"net/http"

	"github.com/osse101/RPSLS_Go/internal/logger"
)

// CORSMiddleware allows browser access from the configured origins.
// A "*" entry allows any origin. Preflight requests are answered directly.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == CORSWildcard {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add(HeaderVary, HeaderOrigin)
			ok := allowAll || allowed[origin]
			if ok {
				if allowAll {
					w.Header().Set(HeaderAllowOrigin, CORSWildcard)
				} else {
					w.Header().Set(HeaderAllowOrigin, origin)
				}
			}

			isPreflight := r.Method == http.MethodOptions && r.Header.Get(HeaderRequestMethod) != ""
			if !isPreflight {
				next.ServeHTTP(w, r)
				return
			}

			if !ok {
				logger.FromContext(r.Context()).Debug(LogMsgCORSRejected, "origin", origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.Header().Set(HeaderAllowMethods, CORSAllowedMethods)
			w.Header().Set(HeaderAllowHeaders, CORSAllowedHeaders)
			w.Header().Set(HeaderMaxAge, CORSMaxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

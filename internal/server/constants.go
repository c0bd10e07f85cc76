package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not configured, authentication disabled"
	LogMsgCORSRejected     = "CORS preflight from disallowed origin"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderOrigin         = "Origin"
	HeaderVary           = "Vary"
	HeaderAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAllowMethods   = "Access-Control-Allow-Methods"
	HeaderAllowHeaders   = "Access-Control-Allow-Headers"
	HeaderRequestMethod  = "Access-Control-Request-Method"
	HeaderMaxAge         = "Access-Control-Max-Age"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS values
const (
	CORSAllowedMethods = "GET, POST, DELETE, OPTIONS"
	CORSAllowedHeaders = "Content-Type, X-API-Key, X-Request-ID"
	CORSMaxAge         = "600"
	CORSWildcard       = "*"
)

// Limits and timeouts
const (
	MaxRequestBytes       = 1 << 20 // 1MB
	MaxRequestIDLength    = 128
	ReadHeaderTimeout     = 5 * time.Second
	RateLimitWindow       = 5 * time.Minute
	RateLimitMaxRequests  = 1000
	FailedAuthAlertAmount = 5
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

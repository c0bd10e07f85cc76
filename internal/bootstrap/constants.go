package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting RPSLS service"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgHistoryRecorderRegistered  = "History recorder registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Random Provider
// =============================================================================

const (
	LogMsgRandomProviderConfigured = "Random provider configured"
	LogMsgRandomProviderDisabled   = "Random provider URL empty, using local draws only"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgShuttingDownWorkers     = "Stopping background workers..."
	LogMsgClosingDatabase         = "Closing database pool..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgCleanupWorkerStopFailed = "Cleanup worker shutdown failed"
)

// ShutdownTimeout bounds the whole graceful shutdown sequence
const ShutdownTimeout = 30 * time.Second

package worker

import "time"

// ============================================================================
// Log Messages - Cleanup Worker
// ============================================================================

// Log messages for history cleanup worker operations
const (
	LogMsgCleanupScheduled = "History cleanup scheduled"
	LogMsgCleanupStarting  = "History cleanup starting"
	LogMsgCleanupCompleted = "History cleanup completed"
	LogMsgCleanupFailed    = "History cleanup failed"
	LogMsgCleanupDisabled  = "History cleanup disabled"
	LogMsgCleanupShutdown  = "Shutting down history cleanup worker"
	LogMsgCleanupStopped   = "History cleanup worker shutdown complete"
	LogMsgCleanupTimeout   = "History cleanup worker shutdown timeout, a cleanup may still be running"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultCleanupInterval is used when no interval is configured
	DefaultCleanupInterval = 24 * time.Hour

	// CleanupRunTimeout bounds a single cleanup pass
	CleanupRunTimeout = 5 * time.Minute
)

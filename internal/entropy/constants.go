package entropy

import "time"

// Defaults
const (
	DefaultTimeout = 2 * time.Second
	DefaultField   = "random_number"

	// Provider values are drawn from this inclusive range
	MinDraw = 1
	MaxDraw = 100

	maxResponseBytes = 1 << 16
)

// Log messages
const (
	LogMsgProviderFallback = "Random provider unavailable, using local draw"
	LogMsgProviderDraw     = "Random provider draw"
)

package history

import "time"

// Listing and validation bounds
const (
	DefaultListLimit     = 10
	DefaultRetentionDays = 30
	MaxPlayerNameLength  = 100
)

// Stats cache defaults
const (
	DefaultStatsCacheSize = 1000
	DefaultStatsCacheTTL  = time.Minute

	// StatsCacheSchemaVersion invalidates cached entries when PlayerStats changes shape
	StatsCacheSchemaVersion = "1.0"
)

// Log messages
const (
	LogMsgPlayerCreated       = "Player created"
	LogMsgGameRecorded        = "Game recorded in history"
	LogMsgUnknownResultFilter = "Unknown result filter, returning no entries"
	LogMsgHistoryCleanup      = "Old history records deleted"
	LogMsgRoundRecordFailed   = "Failed to record played round in history"
	LogMsgRoundRecordSkipped  = "Round has no player id, not recorded in history"
)

// Error context messages
const (
	ErrContextFailedToCreatePlayer = "failed to create player"
	ErrContextFailedToGetPlayer    = "failed to get player"
	ErrContextFailedToRecordGame   = "failed to record game"
	ErrContextFailedToGetGame      = "failed to get game"
	ErrContextFailedToListGames    = "failed to list games"
	ErrContextFailedToGetStats     = "failed to get player stats"
	ErrContextFailedToCleanup      = "failed to clean up history"
	ErrContextFailedToDecodeRound  = "failed to decode round played payload"
)

package game

// Scoreboard listing bounds
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100

	// DefaultHistoryLimit bounds the rounds loaded for the adaptive strategy
	DefaultHistoryLimit = 50
)

// Log messages
const (
	LogMsgRoundPlayed         = "round_played"
	LogMsgHistoryCleared      = "Scoreboard cleared"
	LogMsgEventPublishFailed  = "Failed to publish event"
	LogMsgHistoryLoadForStrat = "Loaded recent rounds for adaptive strategy"
)

// Error context messages
const (
	ErrContextFailedToLoadHistory = "failed to load recent games"
	ErrContextFailedToSaveGame    = "failed to save game"
	ErrContextFailedToListGames   = "failed to list recent games"
	ErrContextFailedToClear       = "failed to clear scoreboard"
)

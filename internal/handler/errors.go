package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgInvalidLimit    = "Invalid limit parameter"
	ErrMsgInvalidOffset   = "Invalid offset parameter"
	ErrMsgInvalidPlayerID = "Invalid player_id parameter"
	ErrMsgInvalidDays     = "Invalid days parameter"
	ErrMsgInvalidID       = "Invalid id"

	// Game logic error messages
	ErrMsgInvalidChoice = "Invalid choice provided. Must be one of: rock, paper, scissors, lizard, spock"
)

// Success messages for API responses
const (
	MsgGameRecorded     = "Game history created"
	MsgCleanupCompleted = "Deleted %d games older than %d days"
)

// Log messages for handlers
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Request failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgScoreboardCleared = "Scoreboard cleared"
)

package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Game Operations
const (
	ErrMsgFailedToSaveGame     = "failed to save game"
	ErrMsgFailedToListGames    = "failed to list games"
	ErrMsgFailedToScanGame     = "failed to scan game"
	ErrMsgFailedToDeleteGames  = "failed to delete games"
	ErrMsgInvalidStoredGesture = "invalid stored gesture"
	ErrMsgInvalidStoredOutcome = "invalid stored outcome"
)

// Error Messages - History Operations
const (
	ErrMsgFailedToCreatePlayer  = "failed to create player"
	ErrMsgFailedToGetPlayer     = "failed to get player"
	ErrMsgFailedToRecordGame    = "failed to record game"
	ErrMsgFailedToGetGame       = "failed to get game"
	ErrMsgFailedToCountGames    = "failed to count games"
	ErrMsgFailedToCountResults  = "failed to count results"
	ErrMsgFailedToDeleteHistory = "failed to delete history"
)

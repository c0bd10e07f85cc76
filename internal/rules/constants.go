package rules

// Log messages
const (
	LogMsgMissingWinningMove = "Winning move description missing for ordered pair"
)

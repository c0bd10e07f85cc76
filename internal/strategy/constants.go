package strategy

// Log messages
const (
	LogMsgCounterSelected = "Adaptive counter selected"
)

package event

// PayloadVersion is stamped on every event this package builds
const PayloadVersion = "1.0"

// Error messages
const (
	ErrMsgHandlersFailed = "event handlers failed"
	ErrMsgNotRoundPlayed = "event is not a played round"
	ErrMsgUnknownPayload = "unsupported payload version"
	ErrMsgMalformedRound = "malformed round payload"
)

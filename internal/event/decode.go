package event

import (
	"encoding/json"
	"fmt"
)

// RoundFromEvent returns the round carried by a RoundPlayed event.
// Payloads that went through JSON arrive as generic maps and are re-decoded.
func RoundFromEvent(evt Event) (RoundPlayedPayloadV1, error) {
	var round RoundPlayedPayloadV1
	if evt.Type != RoundPlayed {
		return round, fmt.Errorf("%s: %s", ErrMsgNotRoundPlayed, evt.Type)
	}
	if evt.Version != PayloadVersion {
		return round, fmt.Errorf("%s: %q", ErrMsgUnknownPayload, evt.Version)
	}

	switch p := evt.Payload.(type) {
	case RoundPlayedPayloadV1:
		return p, nil
	case *RoundPlayedPayloadV1:
		if p != nil {
			return *p, nil
		}
		return round, fmt.Errorf("%s: nil", ErrMsgMalformedRound)
	case json.RawMessage:
		if err := json.Unmarshal(p, &round); err != nil {
			return round, fmt.Errorf("%s: %w", ErrMsgMalformedRound, err)
		}
		return round, nil
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return round, fmt.Errorf("%s: %w", ErrMsgMalformedRound, err)
	}
	if err := json.Unmarshal(data, &round); err != nil {
		return round, fmt.Errorf("%s: %w", ErrMsgMalformedRound, err)
	}
	return round, nil
}

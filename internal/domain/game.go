package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode selects how the computer picks its gesture
type Mode string

const (
	ModeRandom Mode = "random"
	ModeSmart  Mode = "smart"
)

// ParseMode validates a mode string. An empty string selects ModeRandom.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeRandom, nil
	case ModeRandom, ModeSmart:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Game is a persisted round played against the computer
type Game struct {
	ID             uuid.UUID `json:"id"`
	PlayerChoice   Gesture   `json:"player_choice"`
	ComputerChoice Gesture   `json:"computer_choice"`
	Winner         Winner    `json:"winner"`
	Mode           Mode      `json:"mode"`
	CreatedAt      time.Time `json:"created_at"`
}

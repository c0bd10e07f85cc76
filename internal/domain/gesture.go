package domain

import (
	"fmt"
	"strings"
)

// Gesture is one of the five playable hand signs.
// The underlying value is the wire identifier (1-5).
type Gesture int

const (
	Rock     Gesture = 1
	Paper    Gesture = 2
	Scissors Gesture = 3
	Lizard   Gesture = 4
	Spock    Gesture = 5
)

// GestureCount is the number of playable gestures
const GestureCount = 5

var gestureNames = [...]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
	Lizard:   "lizard",
	Spock:    "spock",
}

var gestureTitles = [...]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Lizard:   "Lizard",
	Spock:    "Spock",
}

// AllGestures returns every gesture in declared order (Rock..Spock).
// The returned slice is a fresh copy.
func AllGestures() []Gesture {
	return []Gesture{Rock, Paper, Scissors, Lizard, Spock}
}

// IsValid reports whether g is one of the five declared gestures
func (g Gesture) IsValid() bool {
	return g >= Rock && g <= Spock
}

// ID returns the wire identifier (1-5)
func (g Gesture) ID() int {
	return int(g)
}

// String returns the lowercase wire name, e.g. "rock"
func (g Gesture) String() string {
	if !g.IsValid() {
		return fmt.Sprintf("gesture(%d)", int(g))
	}
	return gestureNames[g]
}

// Title returns the display name used in winning move descriptions
func (g Gesture) Title() string {
	if !g.IsValid() {
		return g.String()
	}
	return gestureTitles[g]
}

// GestureFromID converts a wire identifier into a Gesture
func GestureFromID(id int) (Gesture, error) {
	g := Gesture(id)
	if !g.IsValid() {
		return 0, fmt.Errorf("%w: id %d", ErrInvalidGesture, id)
	}
	return g, nil
}

// ParseGesture converts a gesture name (case-insensitive) into a Gesture
func ParseGesture(name string) (Gesture, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, g := range AllGestures() {
		if gestureNames[g] == normalized {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGesture, name)
}

// MarshalText implements encoding.TextMarshaler using the lowercase name
func (g Gesture) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidGesture, int(g))
	}
	return []byte(gestureNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *Gesture) UnmarshalText(text []byte) error {
	parsed, err := ParseGesture(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

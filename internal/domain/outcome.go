package domain

import "fmt"

// Outcome is the position-relative result of comparing two gestures.
// Outcomes are only produced by the rules resolver.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first_wins"
	case SecondWins:
		return "second_wins"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Opposite returns the outcome seen from the other position
func (o Outcome) Opposite() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return o
	}
}

// Perspective is the win/lose/tie rendering from the first position's point of view
type Perspective string

const (
	PerspectiveWin  Perspective = "win"
	PerspectiveLose Perspective = "lose"
	PerspectiveTie  Perspective = "tie"
)

// Perspective maps the outcome onto win/lose/tie for the first position
func (o Outcome) Perspective() Perspective {
	switch o {
	case FirstWins:
		return PerspectiveWin
	case SecondWins:
		return PerspectiveLose
	default:
		return PerspectiveTie
	}
}

// ParsePerspective validates a win/lose/tie string
func ParsePerspective(s string) (Perspective, error) {
	switch p := Perspective(s); p {
	case PerspectiveWin, PerspectiveLose, PerspectiveTie:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidResult, s)
	}
}

// AllPerspectives returns win, lose and tie in that order
func AllPerspectives() []Perspective {
	return []Perspective{PerspectiveWin, PerspectiveLose, PerspectiveTie}
}

// Winner is the role-relative rendering used by the play orchestrator,
// where the player always occupies the first position.
type Winner string

const (
	WinnerPlayer   Winner = "player"
	WinnerComputer Winner = "computer"
	WinnerTie      Winner = "tie"
)

// Winner maps the outcome onto player/computer/tie
func (o Outcome) Winner() Winner {
	switch o {
	case FirstWins:
		return WinnerPlayer
	case SecondWins:
		return WinnerComputer
	default:
		return WinnerTie
	}
}

// Perspective renders the winner from the player's point of view
func (w Winner) Perspective() Perspective {
	switch w {
	case WinnerPlayer:
		return PerspectiveWin
	case WinnerComputer:
		return PerspectiveLose
	default:
		return PerspectiveTie
	}
}

// ParseWinner validates a stored player/computer/tie value
func ParseWinner(s string) (Winner, error) {
	switch w := Winner(s); w {
	case WinnerPlayer, WinnerComputer, WinnerTie:
		return w, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidResult, s)
	}
}

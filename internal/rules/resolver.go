// Package rules resolves a round between two gestures.
package rules

import (
	"log/slog"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// Resolution is the result of comparing two gestures.
// WinningMove is empty for ties.
type Resolution struct {
	Outcome     domain.Outcome `json:"outcome"`
	WinningMove string         `json:"winning_move,omitempty"`
}

// Resolve compares first against second.
// It never fails for valid gestures and is safe for concurrent use.
func Resolve(first, second domain.Gesture) Resolution {
	if first == second {
		return Resolution{Outcome: domain.Tie}
	}

	if domain.Beats(first, second) {
		return Resolution{Outcome: domain.FirstWins, WinningMove: describe(first, second)}
	}

	return Resolution{Outcome: domain.SecondWins, WinningMove: describe(second, first)}
}

// describe looks up the winning move text. Both tables derive from the same
// relation, so a miss means the relation itself is broken; the outcome is
// kept and the description dropped.
func describe(winner, loser domain.Gesture) string {
	desc, ok := domain.WinningMove(winner, loser)
	if !ok {
		slog.Error(LogMsgMissingWinningMove, "winner", winner.String(), "loser", loser.String())
		return ""
	}
	return desc
}

// Evaluation is the first-position rendering served by the evaluate endpoint
type Evaluation struct {
	Result      domain.Perspective `json:"result"`
	WinningMove *string            `json:"winning_move"`
}

// Evaluate resolves the pair and renders it from the first position
func Evaluate(first, second domain.Gesture) Evaluation {
	res := Resolve(first, second)
	eval := Evaluation{Result: res.Outcome.Perspective()}
	if res.WinningMove != "" {
		move := res.WinningMove
		eval.WinningMove = &move
	}
	return eval
}

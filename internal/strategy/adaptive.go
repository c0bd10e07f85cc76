package strategy

import (
	"context"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/logger"
)

// DefaultWindow is the number of recent player gestures considered
const DefaultWindow = 5

// Picker selects one gesture uniformly from a candidate set
type Picker interface {
	Pick(candidates []domain.Gesture) domain.Gesture
}

// Adaptive counters the player's most frequent recent gesture.
// It holds no per-call state and is safe for concurrent use.
type Adaptive struct {
	picker Picker
	window int
}

// NewAdaptive creates an adaptive strategy. window < 1 uses DefaultWindow.
func NewAdaptive(picker Picker, window int) *Adaptive {
	if window < 1 {
		window = DefaultWindow
	}
	return &Adaptive{picker: picker, window: window}
}

// Window returns the configured look-back size
func (a *Adaptive) Window() int {
	return a.window
}

// ChooseCounter returns a gesture that beats the player's most frequent
// gesture in the recent window. Empty history yields a uniform pick.
func (a *Adaptive) ChooseCounter(ctx context.Context, history domain.RecentFirst) domain.Gesture {
	recent := history.Window(a.window)
	if len(recent) == 0 {
		return a.picker.Pick(domain.AllGestures())
	}

	most := MostFrequent(recent)
	if !most.IsValid() {
		return a.picker.Pick(domain.AllGestures())
	}
	counters := domain.DefeatedBy(most)

	logger.FromContext(ctx).Debug(LogMsgCounterSelected,
		"window", len(recent),
		"most_frequent", most.String(),
		"candidates", len(counters))

	return a.picker.Pick(counters)
}

// MostFrequent returns the most frequent gesture in a non-empty window.
// Ties go to the gesture encountered first, i.e. the most recently played.
func MostFrequent(window domain.RecentFirst) domain.Gesture {
	var counts [domain.GestureCount + 1]int
	var firstSeen [domain.GestureCount + 1]int
	var best domain.Gesture

	for i, g := range window {
		if !g.IsValid() {
			continue
		}
		if counts[g] == 0 {
			firstSeen[g] = i
		}
		counts[g]++

		if best == 0 || counts[g] > counts[best] ||
			(counts[g] == counts[best] && firstSeen[g] < firstSeen[best]) {
			best = g
		}
	}

	return best
}

package domain

// RecentFirst is a read-only snapshot of past gestures ordered newest first.
// Index 0 is the most recently played gesture.
type RecentFirst []Gesture

// NewRecentFirst builds a RecentFirst from a sequence ordered oldest first
func NewRecentFirst(oldestFirst []Gesture) RecentFirst {
	out := make(RecentFirst, len(oldestFirst))
	for i, g := range oldestFirst {
		out[len(oldestFirst)-1-i] = g
	}
	return out
}

// Window returns the n most recent gestures (fewer if the history is shorter)
func (h RecentFirst) Window(n int) RecentFirst {
	if n < 0 {
		n = 0
	}
	if n > len(h) {
		n = len(h)
	}
	return h[:n:n]
}

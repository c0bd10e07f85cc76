package domain

// winningMove is one ordered entry of the win relation
type winningMove struct {
	winner Gesture
	loser  Gesture
	verb   string
}

// winningMoves is the single source of truth for who beats whom.
// Every other view (defeats, defeated-by, descriptions) is derived from it.
var winningMoves = [...]winningMove{
	{Scissors, Paper, "cuts"},
	{Paper, Rock, "covers"},
	{Rock, Lizard, "crushes"},
	{Lizard, Spock, "poisons"},
	{Spock, Scissors, "smashes"},
	{Scissors, Lizard, "decapitates"},
	{Lizard, Paper, "eats"},
	{Paper, Spock, "disproves"},
	{Spock, Rock, "vaporizes"},
	{Rock, Scissors, "crushes"},
}

// relation holds the derived views, indexed by gesture id
type relation struct {
	beats       [GestureCount + 1][GestureCount + 1]bool
	description [GestureCount + 1][GestureCount + 1]string
	defeats     [GestureCount + 1][]Gesture
	defeatedBy  [GestureCount + 1][]Gesture
}

var rel = buildRelation()

func buildRelation() *relation {
	r := &relation{}
	for _, m := range winningMoves {
		r.beats[m.winner][m.loser] = true
		r.description[m.winner][m.loser] = m.winner.Title() + " " + m.verb + " " + m.loser.Title()
	}
	// Iterate in id order so both views are deterministic
	for _, a := range AllGestures() {
		for _, b := range AllGestures() {
			if r.beats[a][b] {
				r.defeats[a] = append(r.defeats[a], b)
				r.defeatedBy[b] = append(r.defeatedBy[b], a)
			}
		}
	}
	return r
}

// Beats reports whether a defeats b
func Beats(a, b Gesture) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return rel.beats[a][b]
}

// Defeats returns the two gestures that g beats, in id order
func Defeats(g Gesture) []Gesture {
	if !g.IsValid() {
		return nil
	}
	return append([]Gesture(nil), rel.defeats[g]...)
}

// DefeatedBy returns the two gestures that beat g, in id order
func DefeatedBy(g Gesture) []Gesture {
	if !g.IsValid() {
		return nil
	}
	return append([]Gesture(nil), rel.defeatedBy[g]...)
}

// WinningMove returns the description for an ordered (winner, loser) pair,
// e.g. "Paper covers Rock". ok is false when winner does not beat loser.
func WinningMove(winner, loser Gesture) (string, bool) {
	if !Beats(winner, loser) {
		return "", false
	}
	return rel.description[winner][loser], true
}

package domain

import "time"

// Player is a registered participant tracked by the history service
type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Ties      int       `json:"ties"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryRecord is one round in a player's game history.
// Result is expressed from the player's perspective.
type HistoryRecord struct {
	ID             int         `json:"id"`
	PlayerID       int         `json:"player_id"`
	PlayerChoice   Gesture     `json:"player_choice"`
	ComputerChoice Gesture     `json:"computer_choice"`
	Result         Perspective `json:"result"`
	WinningMove    string      `json:"winning_move,omitempty"`
	PlayedAt       time.Time   `json:"played_at"`
}

// HistoryFilter narrows a history listing. Zero values mean "no filter".
type HistoryFilter struct {
	PlayerID *int
	Result   *Perspective
	Limit    int
	Offset   int
}

// PlayerStats aggregates a player's results.
// Counts always carries the win, lose and tie keys.
type PlayerStats struct {
	PlayerID int                 `json:"player_id"`
	Counts   map[Perspective]int `json:"stats"`
	Total    int                 `json:"total"`
	WinRate  float64             `json:"win_rate"`
}

// NewPlayerStats fills in missing keys and derives the total and win rate
func NewPlayerStats(playerID int, counts map[Perspective]int) PlayerStats {
	stats := PlayerStats{PlayerID: playerID, Counts: make(map[Perspective]int, 3)}
	for _, p := range AllPerspectives() {
		stats.Counts[p] = counts[p]
		stats.Total += counts[p]
	}
	if stats.Total > 0 {
		stats.WinRate = float64(stats.Counts[PerspectiveWin]) / float64(stats.Total)
	}
	return stats
}

package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/game"
	"github.com/osse101/RPSLS_Go/internal/logger"
)

// PlayRequest is one round against the computer
type PlayRequest struct {
	Player   int    `json:"player" validate:"required,min=1,max=5"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=random smart"`
	PlayerID *int   `json:"player_id,omitempty" validate:"omitempty,min=1,max=2147483647"`
}

// PlayResponse is the outcome of a round from the player's perspective
type PlayResponse struct {
	Results  domain.Perspective `json:"results"`
	Player   int                `json:"player"`
	Computer int                `json:"computer"`
}

// GameResponse is one scoreboard entry
type GameResponse struct {
	PlayResponse
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func newPlayResponse(g *domain.Game) PlayResponse {
	return PlayResponse{
		Results:  g.Winner.Perspective(),
		Player:   g.PlayerChoice.ID(),
		Computer: g.ComputerChoice.ID(),
	}
}

// GameHandler serves the play orchestrator endpoints
type GameHandler struct {
	service game.Service
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// HandleChoices lists every gesture
// @Summary List choices
// @Tags game
// @Produce json
// @Success 200 {array} ChoiceResponse
// @Router /api/v1/choices [get]
func (h *GameHandler) HandleChoices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newChoiceList(h.service.Choices()))
}

// HandleRandomChoice returns a server generated gesture
// @Summary Random choice
// @Tags game
// @Produce json
// @Success 200 {object} ChoiceResponse
// @Router /api/v1/choice [get]
func (h *GameHandler) HandleRandomChoice(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newChoiceResponse(h.service.RandomChoice(r.Context())))
}

// HandlePlay plays one round and persists it
// @Summary Play a round
// @Description Plays against the computer in random or smart mode
// @Tags game
// @Accept json
// @Produce json
// @Param request body PlayRequest true "Round"
// @Success 201 {object} PlayResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/play [post]
func (h *GameHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play"); err != nil {
		return
	}

	player, err := domain.GestureFromID(req.Player)
	if err != nil {
		respondServiceError(w, r, "Play", err)
		return
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		respondServiceError(w, r, "Play", err)
		return
	}

	g, err := h.service.Play(r.Context(), game.PlayInput{
		Player:   player,
		Mode:     mode,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		respondServiceError(w, r, "Play", err)
		return
	}

	respondJSON(w, http.StatusCreated, newPlayResponse(g))
}

// HandleListHistory returns the most recent games
// @Summary Scoreboard
// @Tags game
// @Produce json
// @Param limit query int false "Number of records (1-100)" default(10)
// @Success 200 {array} GameResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/history [get]
func (h *GameHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetIntQueryParam(w, r, "limit", game.DefaultRecentLimit, 1, game.MaxRecentLimit, ErrMsgInvalidLimit)
	if !ok {
		return
	}

	games, err := h.service.RecentGames(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "List history", err)
		return
	}

	out := make([]GameResponse, 0, len(games))
	for i := range games {
		out = append(out, GameResponse{
			PlayResponse: newPlayResponse(&games[i]),
			ID:           games[i].ID,
			Timestamp:    games[i].CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleClearHistory deletes every game
// @Summary Clear scoreboard
// @Tags game
// @Success 204
// @Router /api/v1/history [delete]
func (h *GameHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		respondServiceError(w, r, "Clear history", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgScoreboardCleared)
	w.WriteHeader(http.StatusNoContent)
}

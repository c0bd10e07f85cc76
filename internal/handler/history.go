package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/history"
)

// CreatePlayerRequest registers a player
type CreatePlayerRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// RecordGameRequest adds a round to a player's history.
// Result is optional and must match the gestures when given.
type RecordGameRequest struct {
	PlayerID       int    `json:"player_id" validate:"required,min=1,max=2147483647"`
	PlayerChoice   string `json:"player_choice" validate:"required,gesture"`
	ComputerChoice string `json:"computer_choice" validate:"required,gesture"`
	Result         string `json:"result,omitempty" validate:"omitempty,result"`
}

// RecordGameResponse carries the id of the stored record
type RecordGameResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// CleanupResponse reports how many records were pruned
type CleanupResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// HistoryHandler serves player, game history and statistics endpoints
type HistoryHandler struct {
	service history.Service
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(service history.Service) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// HandleCreatePlayer registers a player
// @Summary Create player
// @Tags history
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Player"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players [post]
func (h *HistoryHandler) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
		return
	}

	player, err := h.service.CreatePlayer(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "Create player", err)
		return
	}

	respondJSON(w, http.StatusCreated, player)
}

// HandleGetPlayer returns a player with win, loss and tie counts
// @Summary Get player
// @Tags history
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [get]
func (h *HistoryHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(w, r, "id")
	if !ok {
		return
	}

	player, err := h.service.GetPlayer(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// HandleGetPlayerStats returns result counts for a player
// @Summary Player statistics
// @Tags history
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.PlayerStats
// @Router /api/v1/players/{id}/stats [get]
func (h *HistoryHandler) HandleGetPlayerStats(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.service.PlayerStats(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get player stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HandleRecordGame stores a round in a player's history
// @Summary Record game
// @Tags history
// @Accept json
// @Produce json
// @Param request body RecordGameRequest true "Round"
// @Success 201 {object} RecordGameResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games [post]
func (h *HistoryHandler) HandleRecordGame(w http.ResponseWriter, r *http.Request) {
	var req RecordGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record game"); err != nil {
		return
	}

	input := history.RecordInput{PlayerID: req.PlayerID}
	var err error
	if input.PlayerChoice, err = domain.ParseGesture(req.PlayerChoice); err != nil {
		respondServiceError(w, r, "Record game", err)
		return
	}
	if input.ComputerChoice, err = domain.ParseGesture(req.ComputerChoice); err != nil {
		respondServiceError(w, r, "Record game", err)
		return
	}
	if req.Result != "" {
		result, err := domain.ParsePerspective(strings.ToLower(req.Result))
		if err != nil {
			respondServiceError(w, r, "Record game", err)
			return
		}
		input.Result = &result
	}

	rec, err := h.service.RecordGame(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, "Record game", err)
		return
	}

	respondJSON(w, http.StatusCreated, RecordGameResponse{Message: MsgGameRecorded, ID: rec.ID})
}

// HandleGetGame returns one history record
// @Summary Get game
// @Tags history
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} domain.HistoryRecord
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{id} [get]
func (h *HistoryHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.service.GetGame(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get game", err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// HandleListGames returns a filtered page of history
// @Summary List games
// @Tags history
// @Produce json
// @Param player_id query int false "Filter by player"
// @Param result query string false "Filter by result (win, lose, tie)"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Entries to skip" default(0)
// @Success 200 {object} history.GameList
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games [get]
func (h *HistoryHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetOptionalIDQueryParam(w, r, "player_id", ErrMsgInvalidPlayerID)
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(w, r, "limit", history.DefaultListLimit, 1, 0, ErrMsgInvalidLimit)
	if !ok {
		return
	}
	offset, ok := GetIntQueryParam(w, r, "offset", 0, 0, 0, ErrMsgInvalidOffset)
	if !ok {
		return
	}

	list, err := h.service.ListGames(r.Context(), history.ListQuery{
		PlayerID: playerID,
		Result:   GetOptionalQueryParam(r, "result", ""),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondServiceError(w, r, "List games", err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// HandleCleanup deletes records older than the given number of days
// @Summary Clean up old games
// @Tags history
// @Produce json
// @Param days query int false "Age in days" default(30)
// @Success 200 {object} CleanupResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/cleanup [delete]
func (h *HistoryHandler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	days, ok := GetIntQueryParam(w, r, "days", history.DefaultRetentionDays, 1, 0, ErrMsgInvalidDays)
	if !ok {
		return
	}

	deleted, err := h.service.Cleanup(r.Context(), days)
	if err != nil {
		respondServiceError(w, r, "Cleanup", err)
		return
	}

	respondJSON(w, http.StatusOK, CleanupResponse{
		Message:      fmt.Sprintf(MsgCleanupCompleted, deleted, days),
		DeletedCount: deleted,
	})
}

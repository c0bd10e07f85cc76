package handler

import (
	"net/http"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/rules"
)

// ChoiceResponse is the public representation of a gesture
type ChoiceResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChoicesResponse wraps the full gesture list
type ChoicesResponse struct {
	Choices []ChoiceResponse `json:"choices"`
}

// EvaluateRequest is a round between two named gestures
type EvaluateRequest struct {
	PlayerOneChoice string `json:"player_one_choice" validate:"required,gesture"`
	PlayerTwoChoice string `json:"player_two_choice" validate:"required,gesture"`
}

func newChoiceResponse(g domain.Gesture) ChoiceResponse {
	return ChoiceResponse{ID: g.ID(), Name: g.String()}
}

func newChoiceList(gestures []domain.Gesture) []ChoiceResponse {
	out := make([]ChoiceResponse, 0, len(gestures))
	for _, g := range gestures {
		out = append(out, newChoiceResponse(g))
	}
	return out
}

// HandleLogicChoices lists every gesture with its wire id
// @Summary List choices
// @Description Returns all playable gestures
// @Tags logic
// @Produce json
// @Success 200 {object} ChoicesResponse
// @Router /api/v1/logic/choices [get]
func HandleLogicChoices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ChoicesResponse{Choices: newChoiceList(domain.AllGestures())})
	}
}

// HandleEvaluate resolves a round from player one's point of view
// @Summary Evaluate a round
// @Description Resolves player one against player two
// @Tags logic
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Gestures by name"
// @Success 200 {object} rules.Evaluation
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/logic/evaluate [post]
func HandleEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Evaluate"); err != nil {
			return
		}

		first, err := domain.ParseGesture(req.PlayerOneChoice)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidChoice)
			return
		}
		second, err := domain.ParseGesture(req.PlayerTwoChoice)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidChoice)
			return
		}

		respondJSON(w, http.StatusOK, rules.Evaluate(first, second))
	}
}

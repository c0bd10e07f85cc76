package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLogicChoices(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/logic/choices", nil)
	w := httptest.NewRecorder()

	HandleLogicChoices().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ChoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Choices, 5)
	assert.Equal(t, ChoiceResponse{ID: 1, Name: "rock"}, resp.Choices[0])
	assert.Equal(t, ChoiceResponse{ID: 5, Name: "spock"}, resp.Choices[4])
}

func TestHandleEvaluate(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Lose",
			body:           `{"player_one_choice":"rock","player_two_choice":"paper"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":"lose","winning_move":"Paper covers Rock"}`,
		},
		{
			name:           "Win",
			body:           `{"player_one_choice":"spock","player_two_choice":"scissors"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":"win","winning_move":"Spock smashes Scissors"}`,
		},
		{
			name:           "Tie has null winning move",
			body:           `{"player_one_choice":"lizard","player_two_choice":"lizard"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":"tie","winning_move":null}`,
		},
		{
			name:           "Case insensitive",
			body:           `{"player_one_choice":"Rock","player_two_choice":"SCISSORS"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":"win","winning_move":"Rock crushes Scissors"}`,
		},
		{
			name:           "Invalid name",
			body:           `{"player_one_choice":"fire","player_two_choice":"paper"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing field",
			body:           `{"player_one_choice":"rock"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/logic/evaluate", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			HandleEvaluate().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandleEvaluate_ValidationFieldsReported(t *testing.T) {
	InitValidator()

	req := httptest.NewRequest("POST", "/api/v1/logic/evaluate",
		bytes.NewBufferString(`{"player_one_choice":"fire","player_two_choice":""}`))
	w := httptest.NewRecorder()

	HandleEvaluate().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields, "player_one_choice")
	assert.Contains(t, resp.Fields, "player_two_choice")
}

package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RPSLS_Go/internal/logger"
)

// MaxID is the largest identifier the INTEGER/SERIAL columns can hold
const MaxID = math.MaxInt32

// parseInt32 parses a base-10 integer that fits the database INTEGER type
func parseInt32(raw string) (int, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req PlayRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Play"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgInvalidRequest)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Returns defaultValue when the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntQueryParam parses an optional integer query parameter bounded to [min, max].
// max <= 0 means no upper bound. On failure it writes a 400 with errMsg and returns false.
func GetIntQueryParam(w http.ResponseWriter, r *http.Request, paramName string, defaultValue, min, max int, errMsg string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}

	value, err := parseInt32(raw)
	if err != nil || value < min || (max > 0 && value > max) {
		logger.FromContext(r.Context()).Warn(errMsg, "value", raw)
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return value, true
}

// GetOptionalIDQueryParam parses a positive identifier query parameter that may be absent
func GetOptionalIDQueryParam(w http.ResponseWriter, r *http.Request, paramName string, errMsg string) (*int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, true
	}

	value, err := parseInt32(raw)
	if err != nil || value < 1 {
		logger.FromContext(r.Context()).Warn(errMsg, "value", raw)
		respondError(w, http.StatusBadRequest, errMsg)
		return nil, false
	}
	return &value, true
}

// GetIDParam parses a positive chi URL parameter no larger than MaxID
func GetIDParam(w http.ResponseWriter, r *http.Request, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := parseInt32(raw)
	if err != nil || id < 1 {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidID, "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

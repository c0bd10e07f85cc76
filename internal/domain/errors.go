package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Gesture errors
	ErrMsgInvalidGesture = "invalid gesture"

	// Round errors
	ErrMsgInvalidMode   = "invalid mode"
	ErrMsgInvalidResult = "invalid result"

	// History errors
	ErrMsgGameNotFound   = "game not found"
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgInvalidPlayer  = "invalid player"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidGesture = errors.New(ErrMsgInvalidGesture)

	ErrInvalidMode   = errors.New(ErrMsgInvalidMode)
	ErrInvalidResult = errors.New(ErrMsgInvalidResult)

	ErrGameNotFound   = errors.New(ErrMsgGameNotFound)
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidPlayer  = errors.New(ErrMsgInvalidPlayer)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

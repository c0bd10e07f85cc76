package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// isPgError reports whether err is a PostgreSQL error with the given code
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// gestureFromColumn converts a stored smallint into a Gesture
func gestureFromColumn(v int16) (domain.Gesture, error) {
	g, err := domain.GestureFromID(int(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgInvalidStoredGesture, err)
	}
	return g, nil
}

// dbError wraps a driver failure so callers can match domain.ErrDatabaseError
func dbError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrDatabaseError, err)
}

package game

import "fmt"

// SessionNotFoundError is returned when a session id has no record in the
// store, either because it never existed or because its key expired.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("Game session %s not found", e.SessionID)
}

// CorruptSessionError is returned when a stored session record cannot be
// decoded back into a valid GameSession.
type CorruptSessionError struct {
	SessionID string
	Err       error
}

func (e *CorruptSessionError) Error() string {
	return fmt.Sprintf("corrupt session record for %s: %v", e.SessionID, e.Err)
}

func (e *CorruptSessionError) Unwrap() error {
	return e.Err
}

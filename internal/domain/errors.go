package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Buff errors
	ErrMsgUnknownBuff = "buff not recognized"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

var (
	// ErrUnknownBuff is matched by every UnknownBuffError via errors.Is.
	ErrUnknownBuff = errors.New(ErrMsgUnknownBuff)

	// ErrInvalidInput covers malformed arguments that never reach the calculator.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// UnknownBuffError is returned when a requested buff id is not in the catalog.
// Token is the first unrecognized id, exactly as the user typed it.
type UnknownBuffError struct {
	Token string
}

func (e *UnknownBuffError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgUnknownBuff, e.Token)
}

// Is lets callers match any UnknownBuffError against ErrUnknownBuff.
func (e *UnknownBuffError) Is(target error) bool {
	return target == ErrUnknownBuff
}

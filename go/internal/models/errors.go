package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateJerseyNumber is returned when a team already has a player wearing the number
	ErrDuplicateJerseyNumber = errors.New("duplicate jersey number")

	// ErrMissingField is returned when a required key is absent from a record
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a record key holds a value of the wrong type
	ErrInvalidField = errors.New("invalid field")

	// ErrUnknownResult is returned by Team.UpdateStats for anything other than win, draw or loss
	ErrUnknownResult = errors.New("unknown match result")

	// ErrResultAlreadyRecorded is returned when a completed match rejects a second result
	ErrResultAlreadyRecorded = errors.New("match result already recorded")

	// ErrMatchNotCompleted is returned when a result is needed from a match that has none
	ErrMatchNotCompleted = errors.New("match not completed")

	// ErrTeamNotInMatch is returned when a team is neither side of a match
	ErrTeamNotInMatch = errors.New("team did not play match")
)

// MissingFieldError names the required key that was not found.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// Is lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

package domain

import "errors"

var (
	// ErrValidation is the parent of every rule violation on a Flashcard.
	// The field-specific errors in flashcard.go wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when a card's JSON text cannot be decoded.
	ErrInvalidFormat = errors.New("invalid format")
)

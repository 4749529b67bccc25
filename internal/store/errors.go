package store

import (
	"errors"
	"fmt"
)

// Errors returned by FlashcardStore implementations. Callers match them with
// errors.Is, or with the Is* helpers below.
var (
	// ErrNotFound is the parent of every "missing entity" error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is the parent of every uniqueness violation.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a card handed to the store fails
	// domain validation. The domain error is wrapped alongside it.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrIO is returned when the underlying storage cannot be read or written,
	// for example because of permissions or a full disk.
	ErrIO = errors.New("storage I/O failure")

	// ErrCorruptData is returned when persisted data exists but cannot be
	// decoded as a valid collection.
	ErrCorruptData = errors.New("corrupt data")

	// ErrCardNotFound is returned by Update and Remove when no card has the id.
	ErrCardNotFound = fmt.Errorf("%w: flashcard", ErrNotFound)

	// ErrDuplicateID is returned by Add when the id is already stored.
	ErrDuplicateID = fmt.Errorf("%w: flashcard id", ErrDuplicate)
)

// IsNotFoundError reports whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err wraps ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsCorruptDataError checks if the error reports unreadable persisted data.
func IsCorruptDataError(err error) bool {
	return errors.Is(err, ErrCorruptData)
}

// IsIOError checks if the error reports a failure of the underlying storage.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// StoreError adds the failing operation and entity to an underlying store error.
type StoreError struct {
	Entity    string // always "flashcard" today
	Operation string // list, get, add, update or remove
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

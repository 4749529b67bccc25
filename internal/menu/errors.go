package menu

import (
	"errors"

	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

var (
	// ErrInvalidOption is reported when the menu choice is not one of the listed options.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidIndex is reported when the entered card number is not a listed position.
	ErrInvalidIndex = errors.New("invalid index")

	// errInput marks failures reading from the input stream. These end the loop.
	errInput = errors.New("failed to read input")
)

// userMessage maps an error to the text shown in the menu.
// Internal details (paths, wrapped causes) stay in the logs.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOption):
		return "invalid option"
	case errors.Is(err, ErrInvalidIndex):
		return "invalid index"

	case errors.Is(err, domain.ErrEmptyQuestion):
		return "the question cannot be empty"
	case errors.Is(err, domain.ErrEmptyAnswer):
		return "the answer cannot be empty"

	case errors.Is(err, store.ErrCardNotFound):
		return "flashcard not found"
	case errors.Is(err, store.ErrDuplicateID):
		return "a flashcard with this id already exists"
	case errors.Is(err, store.ErrCorruptData):
		return "the flashcard file is corrupt; fix or remove it and try again"
	case errors.Is(err, store.ErrIO):
		return "the flashcard file could not be read or written"
	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid flashcard data"

	default:
		return "an unexpected error occurred"
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestFlashcardServiceError(t *testing.T) {
	err := NewFlashcardServiceError("delete_card", "failed to delete card", store.ErrCardNotFound)

	assert.Equal(t,
		"flashcard service delete_card failed: failed to delete card: entity not found: flashcard",
		err.Error())
	assert.True(t, errors.Is(err, store.ErrCardNotFound))
	assert.True(t, store.IsNotFoundError(err))
	assert.Equal(t, store.ErrCardNotFound, err.Unwrap())

	bare := NewFlashcardServiceError("edit_card", "nothing to change", nil)
	assert.Equal(t, "flashcard service edit_card failed: nothing to change", bare.Error())
	assert.Nil(t, bare.Unwrap())

	var target *FlashcardServiceError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "delete_card", target.Operation)
}

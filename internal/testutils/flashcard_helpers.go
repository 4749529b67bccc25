package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/jsonfile"
	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// DefaultCollectionPath is where NewMemStore keeps its collection file.
const DefaultCollectionPath = "/data/flashcards.json"

// CreateTestFlashcard creates a new valid flashcard with a unique question.
// It does not save the card anywhere.
func CreateTestFlashcard(t *testing.T) *domain.Flashcard {
	t.Helper()

	card, err := domain.NewFlashcard(
		fmt.Sprintf("Test question %s", uuid.New().String()[:8]),
		"Test answer",
	)
	require.NoError(t, err, "Failed to create test flashcard")
	return card
}

// NewMemStore returns a JSON file store backed by an in-memory filesystem,
// along with that filesystem for inspecting the file.
func NewMemStore(t *testing.T) (*jsonfile.Store, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	return jsonfile.NewStore(DefaultCollectionPath, fsys, nil), fsys
}

// MustAddCard builds a card from question and answer and adds it to s.
// The test fails if either step fails.
func MustAddCard(ctx context.Context, t *testing.T, s store.FlashcardStore, question, answer string) *domain.Flashcard {
	t.Helper()

	card, err := domain.NewFlashcard(question, answer)
	require.NoError(t, err, "Failed to build flashcard")
	require.NoError(t, s.Add(ctx, card), "Failed to add flashcard")
	return card
}

// ReadCollectionFile returns the raw bytes of the collection file.
func ReadCollectionFile(t *testing.T, fsys afero.Fs, path string) []byte {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err, "Failed to read collection file")
	return data
}

// WriteCollectionFile replaces the collection file with data, bypassing the store.
func WriteCollectionFile(t *testing.T, fsys afero.Fs, path string, data []byte) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fsys, path, data, 0o644), "Failed to write collection file")
}

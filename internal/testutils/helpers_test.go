package testutils

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreHelpers(t *testing.T) {
	ctx := context.Background()
	s, fsys := NewMemStore(t)
	assert.Equal(t, DefaultCollectionPath, s.Path())

	card := MustAddCard(ctx, t, s, "Q", "A")
	got, found, err := s.Get(ctx, card.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, card.Equal(got))

	data := ReadCollectionFile(t, fsys, DefaultCollectionPath)
	assert.Contains(t, string(data), card.ID.String())

	WriteCollectionFile(t, fsys, DefaultCollectionPath, []byte("[]\n"))
	cards, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCreateTestFlashcard(t *testing.T) {
	a := CreateTestFlashcard(t)
	b := CreateTestFlashcard(t)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Question, b.Question)
	assert.NoError(t, a.Validate())
}

func TestSetupEnv(t *testing.T) {
	SetupEnv(t, map[string]string{"SCRY_LOG_LEVEL": "debug"})
	assert.Equal(t, "debug", os.Getenv("SCRY_LOG_LEVEL"))
	assert.Empty(t, os.Getenv("SCRY_STORAGE_PATH"))
}

func TestCreateTempConfigFile(t *testing.T) {
	path := CreateTempConfigFile(t, "log:\n  level: info\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  level: info\n", string(data))
}

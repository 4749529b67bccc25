package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/data/flashcards.json"

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	l, _ := logger.GetTestLogger(t)
	return NewStore(testPath, fsys, l), fsys
}

func mustCard(t *testing.T, question, answer string) *domain.Flashcard {
	t.Helper()
	card, err := domain.NewFlashcard(question, answer)
	require.NoError(t, err)
	return card
}

func questions(cards []*domain.Flashcard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Question
	}
	return out
}

func TestNewStore(t *testing.T) {
	t.Run("empty_path_panics", func(t *testing.T) {
		assert.Panics(t, func() { NewStore("", afero.NewMemMapFs(), nil) })
	})

	t.Run("nil_fs_and_logger_use_defaults", func(t *testing.T) {
		s := NewStore("cards.json", nil, nil)
		require.NotNil(t, s)
		assert.NotNil(t, s.fs)
		assert.NotNil(t, s.logger)
		assert.Equal(t, "cards.json", s.Path())
	})
}

func TestListMissingFileIsEmpty(t *testing.T) {
	s, fsys := newTestStore(t)
	ctx := context.Background()

	cards, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	card, found, err := s.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, card)

	exists, err := afero.Exists(fsys, testPath)
	require.NoError(t, err)
	assert.False(t, exists, "reads must not create the file")
}

func TestCRUDEndToEnd(t *testing.T) {
	s, fsys := newTestStore(t)
	ctx := context.Background()

	a := mustCard(t, "What is Go?", "A language")
	require.NoError(t, s.Add(ctx, a))

	cards, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Equal(a), "listed card should equal the added one")

	got, found, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Equal(a))

	updated := a.Clone()
	require.NoError(t, updated.SetQuestion("What is Golang?"))
	require.NoError(t, s.Update(ctx, updated))

	cards, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "What is Golang?", cards[0].Question)
	assert.False(t, cards[0].UpdatedAt.Before(a.UpdatedAt), "UpdatedAt should not move backwards")
	assert.True(t, cards[0].CreatedAt.Equal(a.CreatedAt))

	require.NoError(t, s.Remove(ctx, a.ID))

	cards, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)

	raw, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)), "empty collection should be written as []")

	err = s.Remove(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestAddDuplicateLeavesFileUntouched(t *testing.T) {
	s, fsys := newTestStore(t)
	ctx := context.Background()

	a := mustCard(t, "Q1", "A1")
	require.NoError(t, s.Add(ctx, a))
	require.NoError(t, s.Add(ctx, mustCard(t, "Q2", "A2")))

	before, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)

	dup := a.Clone()
	require.NoError(t, dup.SetAnswer("something else"))

	err = s.Add(ctx, dup)
	assert.ErrorIs(t, err, store.ErrDuplicateID)
	assert.True(t, store.IsDuplicateError(err))

	after, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed add must leave the file byte-identical")
}

func TestOrderPreservation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a := mustCard(t, "A", "a")
	b := mustCard(t, "B", "b")
	c := mustCard(t, "C", "c")
	for _, card := range []*domain.Flashcard{a, b, c} {
		require.NoError(t, s.Add(ctx, card))
	}

	b2 := b.Clone()
	require.NoError(t, b2.SetQuestion("B'"))
	require.NoError(t, s.Update(ctx, b2))

	cards, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B'", "C"}, questions(cards))

	require.NoError(t, s.Remove(ctx, b.ID))

	cards, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, questions(cards))
	assert.Equal(t, a.ID, cards[0].ID)
	assert.Equal(t, c.ID, cards[1].ID)
}

func TestUpdateAndRemoveMissing(t *testing.T) {
	s, fsys := newTestStore(t)
	ctx := context.Background()

	// Missing file behaves as an empty collection
	err := s.Update(ctx, mustCard(t, "Q", "A"))
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	err = s.Remove(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	exists, err := afero.Exists(fsys, testPath)
	require.NoError(t, err)
	assert.False(t, exists, "failed mutations must not create the file")

	// Existing file, unknown id
	require.NoError(t, s.Add(ctx, mustCard(t, "Q", "A")))
	before, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Update(ctx, mustCard(t, "Other", "Card")), store.ErrCardNotFound)
	assert.ErrorIs(t, s.Remove(ctx, uuid.New()), store.ErrCardNotFound)

	after, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInvalidEntityRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.Add(ctx, nil)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	bad := mustCard(t, "Q", "A")
	bad.Question = "   "
	err = s.Add(ctx, bad)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)

	err = s.Update(ctx, &domain.Flashcard{Question: "Q", Answer: "A"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrFlashcardIDEmpty)
}

func TestCorruptData(t *testing.T) {
	validID := uuid.New().String()
	entry := func(id, question string) string {
		return `{"id": "` + id + `", "question": "` + question + `", "answer": "A",
			"created_at": "2024-01-01T10:00:00Z", "updated_at": "2024-01-01T10:00:00Z"}`
	}

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "not json", content: "{{{"},
		{name: "truncated", content: `[` + entry(validID, "Q")},
		{name: "object instead of array", content: entry(validID, "Q")},
		{name: "null", content: "null"},
		{name: "missing field", content: `[{"id": "` + validID + `", "question": "Q"}]`},
		{name: "bad uuid", content: `[` + entry("not-a-uuid", "Q") + `]`},
		{name: "blank question", content: `[` + entry(validID, "  ") + `]`},
		{name: "bad timestamp", content: `[{"id": "` + validID + `", "question": "Q", "answer": "A",
			"created_at": "last tuesday", "updated_at": "2024-01-01T10:00:00Z"}]`},
		{name: "duplicate ids", content: `[` + entry(validID, "Q1") + `,` + entry(validID, "Q2") + `]`},
		{name: "null entry", content: `[null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fsys := newTestStore(t)
			ctx := context.Background()
			require.NoError(t, afero.WriteFile(fsys, testPath, []byte(tt.content), 0o644))

			_, err := s.List(ctx)
			assert.ErrorIs(t, err, store.ErrCorruptData)
			assert.True(t, store.IsCorruptDataError(err))

			_, _, err = s.Get(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrCorruptData)

			err = s.Add(ctx, mustCard(t, "Q", "A"))
			assert.ErrorIs(t, err, store.ErrCorruptData, "add must not overwrite a corrupt file")

			after, err := afero.ReadFile(fsys, testPath)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(after))
		})
	}
}

func TestReadsFileWrittenByHand(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID uuid.UUID
	}{
		{"lower case id", "4f8a6a55-3c1e-4d47-9d1f-1d2b0b1a7a11", uuid.MustParse("4f8a6a55-3c1e-4d47-9d1f-1d2b0b1a7a11")},
		{"upper case id", "0B7C5A3E-1111-4222-8333-444455556666", uuid.MustParse("0b7c5a3e-1111-4222-8333-444455556666")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fsys := newTestStore(t)
			content := `[
  {
    "id": "` + tt.id + `",
    "question": "Capital of Portugal?",
    "answer": "Lisbon",
    "created_at": "2025-03-01T18:04:05.123456789-03:00",
    "updated_at": "2025-03-02T09:00:00Z",
    "deck": "geography"
  }
]`
			require.NoError(t, afero.WriteFile(fsys, testPath, []byte(content), 0o644))
			ctx := context.Background()

			cards, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, cards, 1)
			assert.Equal(t, tt.wantID, cards[0].ID)
			assert.Equal(t, "Lisbon", cards[0].Answer)
			assert.Equal(t, 123456789, cards[0].CreatedAt.Nanosecond())

			got, found, err := s.Get(ctx, tt.wantID)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "Capital of Portugal?", got.Question)
		})
	}
}

func TestInvalidUTF8TextRoundTrips(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	card := mustCard(t, "q\xff", "a")
	require.NoError(t, s.Add(ctx, card))

	got, found, err := s.Get(ctx, card.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "q\uFFFD", got.Question)
	assert.True(t, got.Equal(card))
}

func TestPersistedFormat(t *testing.T) {
	s, fsys := newTestStore(t)
	card := mustCard(t, "Q", "A")
	require.NoError(t, s.Add(context.Background(), card))

	raw, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[\n  {"), "collection should be pretty-printed")

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)

	keys := make([]string, 0, len(entries[0]))
	for k := range entries[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "question", "answer", "created_at", "updated_at"}, keys)
	assert.Equal(t, card.ID.String(), entries[0]["id"])

	createdAt, err := time.Parse(time.RFC3339Nano, entries[0]["created_at"].(string))
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(card.CreatedAt))

	// No temp files are left behind
	infos, err := afero.ReadDir(fsys, filepath.Dir(testPath))
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "flashcards.json", infos[0].Name())
}

func TestFailedWriteKeepsPreviousContents(t *testing.T) {
	base := afero.NewMemMapFs()
	l, _ := logger.GetTestLogger(t)
	ctx := context.Background()

	writable := NewStore(testPath, base, l)
	require.NoError(t, writable.Add(ctx, mustCard(t, "Q1", "A1")))

	before, err := afero.ReadFile(base, testPath)
	require.NoError(t, err)

	readOnly := NewStore(testPath, afero.NewReadOnlyFs(base), l)

	err = readOnly.Add(ctx, mustCard(t, "Q2", "A2"))
	assert.ErrorIs(t, err, store.ErrIO)
	assert.True(t, store.IsIOError(err))

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "add", storeErr.Operation)

	after, err := afero.ReadFile(base, testPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Reads still work through the read-only view
	cards, err := readOnly.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

// renameFailFs accepts every write but refuses to move files into place.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(string, string) error {
	return errors.New("rename refused")
}

func TestFailedRenameRemovesTempFile(t *testing.T) {
	base := afero.NewMemMapFs()
	l, _ := logger.GetTestLogger(t)
	ctx := context.Background()

	require.NoError(t, NewStore(testPath, base, l).Add(ctx, mustCard(t, "Q1", "A1")))
	before, err := afero.ReadFile(base, testPath)
	require.NoError(t, err)

	s := NewStore(testPath, renameFailFs{base}, l)
	err = s.Add(ctx, mustCard(t, "Q2", "A2"))
	assert.ErrorIs(t, err, store.ErrIO)

	after, err := afero.ReadFile(base, testPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	infos, err := afero.ReadDir(base, filepath.Dir(testPath))
	require.NoError(t, err)
	for _, info := range infos {
		assert.NotContains(t, info.Name(), ".tmp-")
	}
	assert.Len(t, infos, 1)
}

func TestRewriteKeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))

	l, _ := logger.GetTestLogger(t)
	s := NewStore(path, afero.NewOsFs(), l)
	require.NoError(t, s.Add(context.Background(), mustCard(t, "Q", "A")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cards, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestReadFailureIsIOError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as a collection
	path := filepath.Join(dir, "flashcards.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	l, _ := logger.GetTestLogger(t)
	s := NewStore(path, afero.NewOsFs(), l)

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, store.ErrIO)
	assert.False(t, store.IsCorruptDataError(err))
}

func TestOsFilesystemRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flashcards.json")
	l, _ := logger.GetTestLogger(t)
	s := NewStore(path, afero.NewOsFs(), l)
	ctx := context.Background()

	card := mustCard(t, "Q", "A")
	require.NoError(t, s.Add(ctx, card))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, filePerm, info.Mode().Perm())

	// A second store instance on the same path sees the same collection
	other := NewStore(path, afero.NewOsFs(), l)
	cards, err := other.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Equal(card))
}

func TestStoreLogsThroughContextLogger(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, buf := logger.NewTestContext(t)

	card := mustCard(t, "Q", "A")
	require.NoError(t, s.Add(ctx, card))

	logger.AssertLogContains(t, buf, "flashcard added")
	logger.AssertLogField(t, buf, "card_id", card.ID.String())
}

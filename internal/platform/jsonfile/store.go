package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/spf13/afero"
)

const (
	entityName = "flashcard"

	// filePerm is used for a new collection file. Rewrites keep the
	// permissions of the file they replace.
	filePerm fs.FileMode = 0o644
	dirPerm  fs.FileMode = 0o755
)

// Store implements the store.FlashcardStore interface
// using a single JSON file as the storage backend.
type Store struct {
	path   string
	fs     afero.Fs
	logger *slog.Logger
}

// NewStore creates a file-backed FlashcardStore for the collection at path.
// If fsys is nil the operating system filesystem is used.
// If logger is nil, a default logger will be used.
func NewStore(path string, fsys afero.Fs, logger *slog.Logger) *Store {
	if path == "" {
		panic("path cannot be empty")
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		path:   path,
		fs:     fsys,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure Store implements store.FlashcardStore interface
var _ store.FlashcardStore = (*Store)(nil)

// Path returns the location of the collection file.
func (s *Store) Path() string {
	return s.path
}

// List implements store.FlashcardStore.List
func (s *Store) List(ctx context.Context) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.load(log, "list")
	if err != nil {
		return nil, err
	}

	log.Debug("listed flashcards", slog.Int("count", len(cards)))
	return cards, nil
}

// Get implements store.FlashcardStore.Get
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Flashcard, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.load(log, "get")
	if err != nil {
		return nil, false, err
	}

	if i := indexOf(cards, id); i >= 0 {
		return cards[i], true, nil
	}

	log.Debug("flashcard not found", slog.String("card_id", id.String()))
	return nil, false, nil
}

// Add implements store.FlashcardStore.Add
func (s *Store) Add(ctx context.Context, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateEntity(card, "add"); err != nil {
		log.Warn("flashcard validation failed during add", slog.String("error", err.Error()))
		return err
	}

	cards, err := s.load(log, "add")
	if err != nil {
		return err
	}

	if indexOf(cards, card.ID) >= 0 {
		log.Debug("flashcard already exists", slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %s", store.ErrDuplicateID, card.ID)
	}

	cards = append(cards, card.Clone())

	if err := s.save(log, "add", cards); err != nil {
		return err
	}

	log.Info("flashcard added",
		slog.String("card_id", card.ID.String()),
		slog.Int("count", len(cards)))
	return nil
}

// Update implements store.FlashcardStore.Update
func (s *Store) Update(ctx context.Context, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateEntity(card, "update"); err != nil {
		log.Warn("flashcard validation failed during update", slog.String("error", err.Error()))
		return err
	}

	cards, err := s.load(log, "update")
	if err != nil {
		return err
	}

	i := indexOf(cards, card.ID)
	if i < 0 {
		log.Debug("flashcard not found for update", slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %s", store.ErrCardNotFound, card.ID)
	}

	cards[i] = card.Clone()

	if err := s.save(log, "update", cards); err != nil {
		return err
	}

	log.Info("flashcard updated", slog.String("card_id", card.ID.String()))
	return nil
}

// Remove implements store.FlashcardStore.Remove
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.load(log, "remove")
	if err != nil {
		return err
	}

	i := indexOf(cards, id)
	if i < 0 {
		log.Debug("flashcard not found for removal", slog.String("card_id", id.String()))
		return fmt.Errorf("%w: %s", store.ErrCardNotFound, id)
	}

	cards = append(cards[:i], cards[i+1:]...)

	if err := s.save(log, "remove", cards); err != nil {
		return err
	}

	log.Info("flashcard removed",
		slog.String("card_id", id.String()),
		slog.Int("count", len(cards)))
	return nil
}

// load reads and decodes the whole collection. A missing file is an empty collection.
func (s *Store) load(log *slog.Logger, op string) ([]*domain.Flashcard, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("collection file does not exist, starting empty", slog.String("path", s.path))
			return []*domain.Flashcard{}, nil
		}
		log.Error("failed to read collection file",
			slog.String("error", err.Error()),
			slog.String("path", s.path))
		return nil, store.NewStoreError(entityName, op, "failed to read collection",
			fmt.Errorf("%w: %w", store.ErrIO, err))
	}

	cards, err := decodeCollection(data)
	if err != nil {
		log.Error("collection file is corrupt",
			slog.String("error", err.Error()),
			slog.String("path", s.path))
		return nil, store.NewStoreError(entityName, op, "failed to decode collection",
			fmt.Errorf("%w: %v", store.ErrCorruptData, err))
	}

	return cards, nil
}

// save writes the whole collection to a temp file next to the target and
// renames it into place.
func (s *Store) save(log *slog.Logger, op string, cards []*domain.Flashcard) error {
	data, err := encodeCollection(cards)
	if err != nil {
		return store.NewStoreError(entityName, op, "failed to encode collection", err)
	}

	if err := s.writeAtomic(data); err != nil {
		log.Error("failed to write collection file",
			slog.String("error", err.Error()),
			slog.String("path", s.path))
		return store.NewStoreError(entityName, op, "failed to write collection",
			fmt.Errorf("%w: %w", store.ErrIO, err))
	}

	return nil
}

func (s *Store) writeAtomic(data []byte) (err error) {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	perm := filePerm
	if info, statErr := s.fs.Stat(s.path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = s.fs.Chmod(tmpName, perm); err != nil {
		return err
	}

	return s.fs.Rename(tmpName, s.path)
}

// decodeCollection parses file contents into cards, rejecting anything that is
// not a well-formed collection with unique IDs.
func decodeCollection(data []byte) ([]*domain.Flashcard, error) {
	if err := validateCollection(data); err != nil {
		return nil, err
	}

	var cards []*domain.Flashcard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(cards))
	for i, card := range cards {
		if card == nil {
			return nil, fmt.Errorf("entry %d is null", i)
		}
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[card.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate id %s", i, card.ID)
		}
		seen[card.ID] = struct{}{}
	}

	if cards == nil {
		cards = []*domain.Flashcard{}
	}
	return cards, nil
}

// encodeCollection renders the collection as an indented JSON array.
// An empty collection is written as [] rather than null.
func encodeCollection(cards []*domain.Flashcard) ([]byte, error) {
	if cards == nil {
		cards = []*domain.Flashcard{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func validateEntity(card *domain.Flashcard, op string) error {
	if card == nil {
		return store.NewStoreError(entityName, op, "flashcard is nil", store.ErrInvalidEntity)
	}
	if err := card.Validate(); err != nil {
		return store.NewStoreError(entityName, op, "flashcard is invalid",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}
	return nil
}

func indexOf(cards []*domain.Flashcard, id uuid.UUID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

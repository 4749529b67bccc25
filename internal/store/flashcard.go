package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
)

// FlashcardStore defines the interface for flashcard collection persistence.
//
// Every method works on a fresh read of the persisted collection; implementations
// hold no state between calls. Mutating methods rewrite the whole collection.
// The context carries the request-scoped logger; operations are not cancellable.
type FlashcardStore interface {
	// List returns the whole collection in insertion order.
	// A collection that was never written is empty, not an error.
	// Returns ErrCorruptData if the persisted data cannot be decoded.
	List(ctx context.Context) ([]*domain.Flashcard, error)

	// Get returns the card with the given ID.
	// The boolean is false, with a nil error, when no card matches.
	Get(ctx context.Context, id uuid.UUID) (*domain.Flashcard, bool, error)

	// Add appends a new card to the collection.
	// Returns ErrDuplicateID if a card with the same ID already exists; the
	// persisted collection is left untouched in that case.
	Add(ctx context.Context, card *domain.Flashcard) error

	// Update replaces the stored card that has the same ID, keeping its position.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Flashcard) error

	// Remove deletes the card with the given ID, keeping the order of the rest.
	// Returns ErrCardNotFound if the card does not exist.
	Remove(ctx context.Context, id uuid.UUID) error
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

// CardEdit describes a partial change to a flashcard.
// A nil field keeps the current value.
type CardEdit struct {
	Question *string
	Answer   *string
}

// FlashcardService provides flashcard-related operations
type FlashcardService interface {
	// ListCards returns the whole collection in display order.
	ListCards(ctx context.Context) ([]*domain.Flashcard, error)

	// GetCard retrieves a card by its ID.
	// Returns an error wrapping store.ErrCardNotFound if there is no such card.
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)

	// CreateCard validates the inputs, builds a new card and stores it.
	CreateCard(ctx context.Context, question, answer string) (*domain.Flashcard, error)

	// EditCard applies the requested changes to a stored card and saves it.
	// Either all requested fields change or none do.
	EditCard(ctx context.Context, id uuid.UUID, edit CardEdit) (*domain.Flashcard, error)

	// DeleteCard removes a card from the collection.
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	store  store.FlashcardStore
	logger *slog.Logger
}

// NewFlashcardService creates a new FlashcardService
// It returns an error if the store is nil.
func NewFlashcardService(cardStore store.FlashcardStore, logger *slog.Logger) (FlashcardService, error) {
	if cardStore == nil {
		return nil, fmt.Errorf("%w: card store cannot be nil", domain.ErrValidation)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardServiceImpl{
		store:  cardStore,
		logger: logger.With(slog.String("component", "flashcard_service")),
	}, nil
}

// ListCards implements FlashcardService.ListCards
func (s *flashcardServiceImpl) ListCards(ctx context.Context) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.store.List(ctx)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, NewFlashcardServiceError("list_cards", "failed to load collection", err)
	}

	return cards, nil
}

// GetCard implements FlashcardService.GetCard
func (s *flashcardServiceImpl) GetCard(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving card", slog.String("card_id", id.String()))

	card, found, err := s.store.Get(ctx, id)
	if err != nil {
		log.Error("failed to retrieve card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, NewFlashcardServiceError("get_card", "failed to retrieve card", err)
	}

	if !found {
		return nil, NewFlashcardServiceError("get_card", "card not found", store.ErrCardNotFound)
	}

	return card, nil
}

// CreateCard implements FlashcardService.CreateCard
func (s *flashcardServiceImpl) CreateCard(
	ctx context.Context,
	question, answer string,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := domain.NewFlashcard(question, answer)
	if err != nil {
		log.Debug("rejected new card", slog.String("error", err.Error()))
		return nil, NewFlashcardServiceError("create_card", "invalid card", err)
	}

	if err := s.store.Add(ctx, card); err != nil {
		log.Error("failed to save new card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return nil, NewFlashcardServiceError("create_card", "failed to save card", err)
	}

	log.Info("card created", slog.String("card_id", card.ID.String()))
	return card, nil
}

// EditCard implements FlashcardService.EditCard
func (s *flashcardServiceImpl) EditCard(
	ctx context.Context,
	id uuid.UUID,
	edit CardEdit,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if edit.Question == nil && edit.Answer == nil {
		return nil, NewFlashcardServiceError("edit_card", "nothing to change", ErrNothingToEdit)
	}

	current, found, err := s.store.Get(ctx, id)
	if err != nil {
		log.Error("failed to load card for edit",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, NewFlashcardServiceError("edit_card", "failed to retrieve card", err)
	}
	if !found {
		return nil, NewFlashcardServiceError("edit_card", "card not found", store.ErrCardNotFound)
	}

	// Edits apply to a copy; the stored card changes only through Update.
	card := current.Clone()

	if edit.Question != nil {
		if err := card.SetQuestion(*edit.Question); err != nil {
			return nil, NewFlashcardServiceError("edit_card", "invalid question", err)
		}
	}

	if edit.Answer != nil {
		if err := card.SetAnswer(*edit.Answer); err != nil {
			return nil, NewFlashcardServiceError("edit_card", "invalid answer", err)
		}
	}

	if err := s.store.Update(ctx, card); err != nil {
		log.Error("failed to save edited card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, NewFlashcardServiceError("edit_card", "failed to save card", err)
	}

	log.Info("card edited", slog.String("card_id", id.String()))
	return card, nil
}

// DeleteCard implements FlashcardService.DeleteCard
func (s *flashcardServiceImpl) DeleteCard(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.Remove(ctx, id); err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return NewFlashcardServiceError("delete_card", "failed to delete card", err)
	}

	log.Info("card deleted", slog.String("card_id", id.String()))
	return nil
}

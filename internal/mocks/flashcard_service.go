package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/service"
)

// MockFlashcardService implements service.FlashcardService for testing
type MockFlashcardService struct {
	// Custom behavior functions
	ListCardsFn  func(ctx context.Context) ([]*domain.Flashcard, error)
	GetCardFn    func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	CreateCardFn func(ctx context.Context, question, answer string) (*domain.Flashcard, error)
	EditCardFn   func(ctx context.Context, id uuid.UUID, edit service.CardEdit) (*domain.Flashcard, error)
	DeleteCardFn func(ctx context.Context, id uuid.UUID) error

	// Default return values
	Cards        []*domain.Flashcard
	Card         *domain.Flashcard
	DefaultError error

	// Call tracking for verification
	calls struct {
		mu      sync.Mutex
		create  int
		edits   []service.CardEdit
		deleted []uuid.UUID
	}
}

var _ service.FlashcardService = (*MockFlashcardService)(nil)

// ListCards implements the FlashcardService.ListCards method
func (m *MockFlashcardService) ListCards(ctx context.Context) ([]*domain.Flashcard, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx)
	}
	return m.Cards, m.DefaultError
}

// GetCard implements the FlashcardService.GetCard method
func (m *MockFlashcardService) GetCard(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, id)
	}
	return m.Card, m.DefaultError
}

// CreateCard implements the FlashcardService.CreateCard method
func (m *MockFlashcardService) CreateCard(ctx context.Context, question, answer string) (*domain.Flashcard, error) {
	m.calls.mu.Lock()
	m.calls.create++
	m.calls.mu.Unlock()

	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, question, answer)
	}
	return m.Card, m.DefaultError
}

// EditCard implements the FlashcardService.EditCard method
func (m *MockFlashcardService) EditCard(
	ctx context.Context,
	id uuid.UUID,
	edit service.CardEdit,
) (*domain.Flashcard, error) {
	m.calls.mu.Lock()
	m.calls.edits = append(m.calls.edits, edit)
	m.calls.mu.Unlock()

	if m.EditCardFn != nil {
		return m.EditCardFn(ctx, id, edit)
	}
	return m.Card, m.DefaultError
}

// DeleteCard implements the FlashcardService.DeleteCard method
func (m *MockFlashcardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	m.calls.mu.Lock()
	m.calls.deleted = append(m.calls.deleted, id)
	m.calls.mu.Unlock()

	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, id)
	}
	return m.DefaultError
}

// CreateCalls returns how many times CreateCard was called.
func (m *MockFlashcardService) CreateCalls() int {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()
	return m.calls.create
}

// EditCalls returns the edits passed to EditCard, in call order.
func (m *MockFlashcardService) EditCalls() []service.CardEdit {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()
	return append([]service.CardEdit(nil), m.calls.edits...)
}

// DeleteCalls returns the ids passed to DeleteCard, in call order.
func (m *MockFlashcardService) DeleteCalls() []uuid.UUID {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()
	return append([]uuid.UUID(nil), m.calls.deleted...)
}

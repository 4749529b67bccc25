package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockFlashcardStore mocks the store.FlashcardStore interface
type MockFlashcardStore struct {
	mock.Mock
}

var _ store.FlashcardStore = (*MockFlashcardStore)(nil)

func (m *MockFlashcardStore) List(ctx context.Context) ([]*domain.Flashcard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardStore) Get(ctx context.Context, id uuid.UUID) (*domain.Flashcard, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Flashcard), args.Bool(1), args.Error(2)
}

func (m *MockFlashcardStore) Add(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardStore) Update(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardStore) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

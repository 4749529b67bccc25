package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Flashcard-specific validation errors
var (
	// ErrEmptyQuestion is returned when a question is empty after trimming.
	ErrEmptyQuestion = fmt.Errorf("%w: question cannot be empty", ErrValidation)

	// ErrEmptyAnswer is returned when an answer is empty after trimming.
	ErrEmptyAnswer = fmt.Errorf("%w: answer cannot be empty", ErrValidation)

	// ErrFlashcardIDEmpty is returned when a flashcard ID is the nil UUID.
	ErrFlashcardIDEmpty = fmt.Errorf("%w: flashcard ID cannot be empty", ErrValidation)

	// ErrTimestampsOutOfOrder is returned when UpdatedAt precedes CreatedAt.
	ErrTimestampsOutOfOrder = fmt.Errorf("%w: updated_at precedes created_at", ErrValidation)
)

// Flashcard is a single question/answer study record.
// The JSON field names are the persisted file format and must not change.
type Flashcard struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// now is replaced in tests that need deterministic timestamps.
var now = func() time.Time { return time.Now().UTC() }

// NewFlashcard creates a new Flashcard from the given question and answer.
// Both are trimmed of surrounding whitespace and invalid UTF-8 is replaced. The question is checked before the
// answer, so a card with both fields empty fails with ErrEmptyQuestion.
func NewFlashcard(question, answer string) (*Flashcard, error) {
	question = cleanText(question)
	answer = cleanText(answer)

	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	ts := now()
	return &Flashcard{
		ID:        uuid.New(),
		Question:  question,
		Answer:    answer,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Validate checks a Flashcard that was not built through NewFlashcard,
// for example one decoded from storage.
func (f *Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if strings.TrimSpace(f.Question) == "" {
		return ErrEmptyQuestion
	}

	if strings.TrimSpace(f.Answer) == "" {
		return ErrEmptyAnswer
	}

	if f.UpdatedAt.Before(f.CreatedAt) {
		return ErrTimestampsOutOfOrder
	}

	return nil
}

// SetQuestion replaces the question and advances UpdatedAt.
// On error the card is left untouched.
func (f *Flashcard) SetQuestion(question string) error {
	question = cleanText(question)
	if question == "" {
		return ErrEmptyQuestion
	}

	f.Question = question
	f.touch()
	return nil
}

// SetAnswer replaces the answer and advances UpdatedAt.
// On error the card is left untouched.
func (f *Flashcard) SetAnswer(answer string) error {
	answer = cleanText(answer)
	if answer == "" {
		return ErrEmptyAnswer
	}

	f.Answer = answer
	f.touch()
	return nil
}

// cleanText trims surrounding whitespace and replaces invalid UTF-8 sequences
// with U+FFFD, so the stored text is exactly what JSON encoding writes.
func cleanText(s string) string {
	return strings.ToValidUTF8(strings.TrimSpace(s), "\uFFFD")
}

// touch advances UpdatedAt, never moving it backwards if the wall clock does.
func (f *Flashcard) touch() {
	ts := now()
	if ts.Before(f.UpdatedAt) {
		ts = f.UpdatedAt
	}
	f.UpdatedAt = ts
}

// Equal reports whether two flashcards hold the same data.
// Timestamps are compared as instants.
func (f *Flashcard) Equal(other *Flashcard) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.ID == other.ID &&
		f.Question == other.Question &&
		f.Answer == other.Answer &&
		f.CreatedAt.Equal(other.CreatedAt) &&
		f.UpdatedAt.Equal(other.UpdatedAt)
}

// Clone returns an independent copy of the card.
func (f *Flashcard) Clone() *Flashcard {
	c := *f
	return &c
}

// ToJSON encodes the card as an indented JSON object.
func (f *Flashcard) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode flashcard %s: %w", f.ID, err)
	}
	return data, nil
}

// FlashcardFromJSON decodes a card produced by ToJSON.
// Returns an error wrapping ErrInvalidFormat if the data cannot be decoded
// or the decoded card is not valid.
func FlashcardFromJSON(data []byte) (*Flashcard, error) {
	var f Flashcard
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return &f, nil
}

// Package service provides application-level operations on the flashcard
// collection. It builds and edits domain.Flashcard values and hands them to a
// store.FlashcardStore, logging each step and wrapping failures in
// FlashcardServiceError so callers can still match the underlying sentinel
// errors with errors.Is.
package service

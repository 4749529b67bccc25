// Package domain contains the core business entities of the flashcard
// collection: the Flashcard record, its validation rules and its JSON text form.
// It performs no I/O and is independent of how cards are stored or displayed.
package domain

// Package menu implements the interactive numbered menu used to list, create,
// update and delete flashcards. It reads one line per prompt, so it can be
// driven from a terminal or from any io.Reader in tests.
package menu

// Package store declares the persistence contract for flashcards and the
// errors every implementation reports. The JSON file implementation lives in
// internal/platform/jsonfile.
package store

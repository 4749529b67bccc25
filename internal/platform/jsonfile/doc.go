// Package jsonfile implements store.FlashcardStore on top of a single JSON file.
//
// The file holds the entire collection as one pretty-printed JSON array. Every
// operation reads the whole file; every mutation writes the whole collection to a
// temporary file in the same directory and renames it over the target, so the
// target always holds a complete snapshot. The store keeps no state between calls
// and does no locking: one process is expected to own the file.
package jsonfile

// Package testutils provides a set of standardized helper functions for testing
// across the codebase, mainly in-memory flashcard stores and configuration
// fixtures.
//
// Helper functions follow these naming conventions:
// - Create*: Create entities or fixtures in memory or in a temp dir
// - MustAdd*: Add entities through a store, failing the test on error
// - Read*/Write*: Access the raw collection file
// - SetupEnv: Configure environment variables for a single test
package testutils

// Package mocks provides shared test doubles for the application's service
// interfaces. Each mock exposes a function field per method (for example
// DeleteCardFn) plus default return values, and records its calls so tests
// can assert on what the code under test asked for.
//
// Usage:
//
//	svc := &mocks.MockFlashcardService{
//	    DeleteCardFn: func(ctx context.Context, id uuid.UUID) error {
//	        return store.ErrCardNotFound
//	    },
//	}
//	m := menu.New(svc, input, output, nil)
//
// Mocks for store interfaces live next to the tests that use them and are
// built on testify's mock.Mock.
package mocks

package services

import (
	"context"
	"fmt"
)

// Resetter wipes stored data.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Clearer empties one collection.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Collections resets by clearing each collection in turn.
type Collections []Clearer

// Reset clears every collection, stopping at the first failure.
func (c Collections) Reset(ctx context.Context) error {
	for _, collection := range c {
		if err := collection.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear collection: %w", err)
		}
	}
	return nil
}

// TestingService backs the data reset hook used by end-to-end tests
type TestingService struct {
	store Resetter
}

// NewTestingService creates a new TestingService
func NewTestingService(store Resetter) *TestingService {
	return &TestingService{store: store}
}

// ClearAll removes every blog, post and video. It needs no authorization.
func (s *TestingService) ClearAll(ctx context.Context) error {
	return s.store.Reset(ctx)
}

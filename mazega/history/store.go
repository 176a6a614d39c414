// Package history keeps per-generation fitness statistics of evolution runs.
package history

import (
	"context"

	"github.com/baldhumanity/robomaze/mazega"
	"github.com/google/uuid"
)

// Store persists generation statistics keyed by run.
type Store interface {
	Init(ctx context.Context) error
	SaveGeneration(ctx context.Context, runID string, stats mazega.GenerationStats) error
	Generations(ctx context.Context, runID string) ([]mazega.GenerationStats, bool, error)
	Runs(ctx context.Context) ([]string, error)
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

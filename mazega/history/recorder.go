package history

import (
	"context"

	"github.com/baldhumanity/robomaze/mazega"
)

// Recorder writes every evaluated generation of a run to a Store.
type Recorder struct {
	Ctx   context.Context
	Store Store
	RunID string
}

// NewRecorder returns a recorder for a fresh run ID.
func NewRecorder(ctx context.Context, store Store) *Recorder {
	return &Recorder{Ctx: ctx, Store: store, RunID: NewRunID()}
}

func (r *Recorder) GenerationEvaluated(stats mazega.GenerationStats) error {
	return r.Store.SaveGeneration(r.Ctx, r.RunID, stats)
}

func (r *Recorder) Finished(_ *mazega.Result) error {
	return nil
}

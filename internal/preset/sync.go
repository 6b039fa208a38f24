package preset

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mkyte/paddock/internal/setup"
)

// SetupSaver is the slice of the repo the syncer needs.
type SetupSaver interface {
	SaveSetup(ctx context.Context, id uuid.UUID, raw json.RawMessage) error
}

// Syncer writes the active setup back to its preset row, but only when the
// store's revision has advanced since the last successful sync. Same
// revision means no write.
type Syncer struct {
	store   *setup.Store
	saver   SetupSaver
	preset  uuid.UUID
	lastRev uint64
}

func NewSyncer(store *setup.Store, saver SetupSaver) *Syncer {
	return &Syncer{store: store, saver: saver}
}

// Track switches the syncer to a different preset. The current revision
// becomes the baseline so hydration itself is not written back.
func (s *Syncer) Track(id uuid.UUID) {
	s.preset = id
	s.lastRev = s.store.Revision()
}

// Sync persists the current setup when dirty. Returns ErrNoChange when the
// revision has not moved.
func (s *Syncer) Sync(ctx context.Context) error {
	if s.preset == uuid.Nil {
		return ErrNoChange
	}
	rev := s.store.Revision()
	if rev == s.lastRev {
		return ErrNoChange
	}
	raw, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		return errors.Wrap(err, "marshal setup")
	}
	if err := s.saver.SaveSetup(ctx, s.preset, raw); err != nil {
		return err
	}
	s.lastRev = rev
	return nil
}

// Run polls on the given interval until the context ends. Sync errors other
// than ErrNoChange are reported through onErr when provided; the loop keeps
// going either way so a transient DB hiccup does not stop persistence.
func (s *Syncer) Run(ctx context.Context, interval time.Duration, onErr func(error)) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sync(ctx); err != nil && err != ErrNoChange && onErr != nil {
				onErr(err)
			}
		}
	}
}

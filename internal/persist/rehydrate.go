package persist

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// Rehydrate reads the stored snapshot. It reports false when nothing usable is
// stored; unreadable or incompatible snapshots are logged and treated as
// absent.
func Rehydrate(ctx context.Context, storage Storage, log *logger.Logger) (Snapshot, bool) {
	data, err := storage.Read(ctx, RootKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error(err, "failed to read snapshot, starting from defaults")
		}
		return Snapshot{}, false
	}

	snapshot, err := Decode(data)
	if err != nil {
		log.With("key", RootKey).Error(err, "discarding stored snapshot")
		return Snapshot{}, false
	}

	return snapshot, true
}

// Restore loads the stored snapshot into store. The notification slice is
// never touched. It reports whether a snapshot was applied.
func Restore(ctx context.Context, store *state.Store, storage Storage, log *logger.Logger) bool {
	snapshot, ok := Rehydrate(ctx, storage, log)
	if !ok {
		return false
	}

	session, themeState := snapshot.Slices()
	store.Dispatch(state.Rehydrate{Session: session, Theme: themeState})
	log.WithFields(map[string]any{
		"authenticated": session.IsAuthenticated,
		"skipped":       session.IsSkipped,
		"dark_mode":     themeState.IsDarkMode,
	}).Debug("state rehydrated")
	return true
}

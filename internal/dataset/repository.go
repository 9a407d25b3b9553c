package dataset

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"opscalendar/internal/cache"
	"opscalendar/internal/sheets"
)

// DefaultKey is the single well-known cache key for the dataset snapshot.
const DefaultKey = "dataset:v1"

// DefaultTTL bounds how stale a served snapshot can be.
const DefaultTTL = time.Hour

// Repository serves the dataset bundle, reading through the cache and
// falling back to the backing store on a miss.
type Repository struct {
	source sheets.Source
	store  cache.Store
	key    string
	ttl    time.Duration
}

// NewRepository wires a repository over a sheet source and a cache store.
// Zero key/ttl select DefaultKey/DefaultTTL.
func NewRepository(source sheets.Source, store cache.Store, key string, ttl time.Duration) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Repository{source: source, store: store, key: key, ttl: ttl}
}

// Load returns the current bundle. A backing-store failure degrades to an
// empty bundle so the caller still gets a valid result; the error has
// already been logged here. This is the only place the fallback policy is
// applied — internal helpers keep their errors explicit.
func (r *Repository) Load(ctx context.Context) *Bundle {
	bundle, fromCache, err := r.load(ctx)
	if err != nil {
		slog.Error("dataset: backing store read failed, serving empty bundle", "error", err)
		return NewEmptyBundle()
	}
	slog.Debug("dataset: bundle loaded", "tasks", len(bundle.Tasks), "from_cache", fromCache)
	return bundle
}

// load reads through the cache. Cache read errors count as misses; cache
// write errors are logged and swallowed. Only a backing-store failure is
// returned.
func (r *Repository) load(ctx context.Context) (*Bundle, bool, error) {
	if snapshot, ok := r.cachedSnapshot(ctx); ok {
		var bundle Bundle
		if err := json.Unmarshal([]byte(snapshot), &bundle); err != nil {
			// A corrupt entry behaves like a miss; the rebuild below
			// overwrites it.
			slog.Warn("dataset: discarding undecodable cache snapshot", "error", err)
		} else {
			return &bundle, true, nil
		}
	}

	grids, err := r.source.ReadSheets(ctx, AllSheets)
	if err != nil {
		return nil, false, err
	}

	bundle := buildBundle(grids)
	snapshotID := uuid.NewString()
	slog.Info("dataset: rebuilt bundle from backing store",
		"snapshot_id", snapshotID,
		"tasks", len(bundle.Tasks),
		"projects", len(bundle.Projects),
	)

	if raw, err := json.Marshal(bundle); err != nil {
		slog.Warn("dataset: snapshot not cacheable", "snapshot_id", snapshotID, "error", err)
	} else if err := r.store.Put(ctx, r.key, string(raw), r.ttl); err != nil {
		// Oversized payloads or an unreachable cache must never fail the
		// request.
		slog.Warn("dataset: cache write failed", "snapshot_id", snapshotID, "error", err)
	}

	return bundle, false, nil
}

func (r *Repository) cachedSnapshot(ctx context.Context) (string, bool) {
	snapshot, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		slog.Warn("dataset: cache read failed, treating as miss", "error", err)
		return "", false
	}
	return snapshot, ok
}

package dataset

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	pkgerrors "github.com/andhikasp/salesdash-backend/pkg/errors"
	"github.com/andhikasp/salesdash-backend/pkg/logger"
	"github.com/andhikasp/salesdash-backend/pkg/metrics"
)

// Cache holds the parsed dataset snapshot keyed by a checksum of the source
// file. A snapshot is reused as long as the file bytes are unchanged; any
// change in checksum triggers a reparse. Invalidation is explicit, there is
// no TTL.
type Cache struct {
	path    string
	logg    *logger.Logger
	metrics *metrics.ReportMetrics

	mu       sync.Mutex
	snapshot *Snapshot
}

func NewCache(path string, logg *logger.Logger, m *metrics.ReportMetrics) *Cache {
	return &Cache{path: path, logg: logg, metrics: m}
}

// Snapshot returns the current dataset snapshot, reloading from disk when the
// source file has changed since the last load.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading dataset file")
	}
	checksum := xxhash.Sum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.snapshot.Checksum == checksum {
		return c.snapshot, nil
	}

	records, err := ParseCSV(data)
	if err != nil {
		return nil, err
	}

	c.snapshot = &Snapshot{
		Records:  records,
		Checksum: checksum,
		LoadedAt: time.Now().UTC(),
	}
	c.metrics.IncDatasetReload()
	if c.logg != nil {
		ctx = c.logg.WithFields(ctx, map[string]any{
			"dataset_checksum": checksum,
			"rows":             len(records),
		})
		c.logg.Info(ctx, "dataset.loaded")
	}
	return c.snapshot, nil
}

// Invalidate drops the cached snapshot so the next Snapshot call reparses the
// file even when the checksum is unchanged.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
}

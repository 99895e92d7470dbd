package jobs

import (
	"sync/atomic"
	"time"
)

type snapshot struct {
	records []JobRecord
	builtAt time.Time
}

// Corpus holds the precomputed job collection used when a match request
// does not carry its own jobs. Rebuilds swap the snapshot wholesale;
// readers that obtained the previous snapshot keep scoring against it.
type Corpus struct {
	current atomic.Pointer[snapshot]
}

// NewCorpus constructs an empty corpus.
func NewCorpus() *Corpus {
	c := &Corpus{}
	c.current.Store(&snapshot{records: []JobRecord{}})
	return c
}

// Snapshot returns the current record set. Callers must treat it as read-only.
func (c *Corpus) Snapshot() []JobRecord {
	return c.current.Load().records
}

// Size returns the number of records in the current snapshot.
func (c *Corpus) Size() int {
	return len(c.current.Load().records)
}

// BuiltAt returns when the current snapshot was installed.
func (c *Corpus) BuiltAt() time.Time {
	return c.current.Load().builtAt
}

// Swap installs a new snapshot. The input is copied so later mutation by
// the caller cannot leak into readers.
func (c *Corpus) Swap(records []JobRecord) {
	copied := make([]JobRecord, len(records))
	copy(copied, records)
	c.current.Store(&snapshot{records: copied, builtAt: time.Now().UTC()})
}

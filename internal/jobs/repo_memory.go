package jobs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []JobRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]int)}
}

// Upsert inserts or replaces a job record, preserving insertion order.
func (r *MemoryRepo) Upsert(ctx context.Context, job JobRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byID[job.ID]; ok {
		r.items[idx] = job
		return nil
	}
	r.byID[job.ID] = len(r.items)
	r.items = append(r.items, job)
	return nil
}

// GetByID returns a job by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return JobRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return JobRecord{}, ErrNotFound
	}
	return r.items[idx], nil
}

// List returns jobs in insertion order honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.items) {
		return []JobRecord{}, nil
	}
	end := len(r.items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]JobRecord, end-offset)
	copy(out, r.items[offset:end])
	return out, nil
}

// Count returns the number of stored jobs.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

var _ Repo = (*MemoryRepo)(nil)

package jobs

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested job does not exist.
var ErrNotFound = errors.New("job not found")

// Repo persists job records between corpus rebuilds.
type Repo interface {
	Upsert(ctx context.Context, job JobRecord) error
	GetByID(ctx context.Context, id string) (JobRecord, error)
	List(ctx context.Context, limit, offset int) ([]JobRecord, error)
	Count(ctx context.Context) (int, error)
}

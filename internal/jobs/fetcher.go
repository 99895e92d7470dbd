package jobs

import "context"

// Fetcher supplies job records from an external listing source. The corpus
// does not validate provenance; fetched records are treated like any other
// once normalized to JobRecord.
type Fetcher interface {
	// Fetch returns postings for one role/location query.
	Fetch(ctx context.Context, role, location string) ([]JobRecord, error)

	// FetchAll returns postings across the source's default categories.
	FetchAll(ctx context.Context) ([]JobRecord, error)
}

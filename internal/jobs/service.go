package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pathway-backend/internal/shared/metrics"
	"pathway-backend/internal/shared/telemetry"
)

// Corpus stays useful even when every upstream source fails; below this
// size the built-in seed postings are mixed in.
const minCorpusSize = 50

// Service assembles the job corpus from the live feed, the persistent
// store and the seed postings, and owns the rebuild cadence.
type Service struct {
	Corpus   *Corpus
	Repo     Repo    // optional
	Fetcher  Fetcher // optional
	SeedPath string
	Interval time.Duration
}

// Rebuild gathers records from every configured source and swaps the
// corpus snapshot. Individual source failures degrade the corpus, they
// never fail the rebuild.
func (s *Service) Rebuild(ctx context.Context) error {
	var records []JobRecord

	if s.Fetcher != nil {
		fetched, err := s.Fetcher.FetchAll(ctx)
		if err != nil {
			telemetry.Error("jobs.fetch_failed", map[string]any{"error": err.Error()})
		} else {
			records = append(records, fetched...)
			s.persist(ctx, fetched)
		}
	}

	if s.Repo != nil {
		stored, err := s.Repo.List(ctx, 5000, 0)
		if err != nil {
			telemetry.Error("jobs.store_list_failed", map[string]any{"error": err.Error()})
		} else {
			records = append(records, stored...)
		}
	}

	if s.SeedPath != "" {
		fromCSV, err := LoadCSV(s.SeedPath)
		if err != nil {
			telemetry.Error("jobs.csv_load_failed", map[string]any{"path": s.SeedPath, "error": err.Error()})
		} else {
			records = append(records, fromCSV...)
		}
	}

	if len(records) < minCorpusSize {
		records = append(records, SeedJobs()...)
	}

	records = dedupeByID(records)
	s.Corpus.Swap(records)

	metrics.IncCorpusRebuilds()
	metrics.SetCorpusSize(len(records))
	telemetry.Info("jobs.corpus_rebuilt", map[string]any{"size": len(records)})
	return nil
}

// Start launches the periodic rebuild loop if an interval is configured.
func (s *Service) Start(ctx context.Context) {
	if s.Interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Rebuild(ctx); err != nil {
					telemetry.Error("jobs.rebuild_failed", map[string]any{"error": err.Error()})
				}
			}
		}
	}()
}

// Search queries the live feed for role/location, falling back to a title
// filter over the corpus snapshot when the feed is unavailable.
func (s *Service) Search(ctx context.Context, role, location string) ([]JobRecord, error) {
	if s.Fetcher != nil {
		records, err := s.Fetcher.Fetch(ctx, role, location)
		if err == nil && len(records) > 0 {
			return records, nil
		}
		if err != nil {
			telemetry.Error("jobs.search_fetch_failed", map[string]any{"role": role, "error": err.Error()})
		}
	}
	return filterByTitle(s.Corpus.Snapshot(), role), nil
}

func (s *Service) persist(ctx context.Context, records []JobRecord) {
	if s.Repo == nil {
		return
	}
	for _, job := range records {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		if err := s.Repo.Upsert(ctx, job); err != nil {
			telemetry.Error("jobs.persist_failed", map[string]any{"job_id": job.ID, "error": err.Error()})
		}
	}
}

func dedupeByID(records []JobRecord) []JobRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]JobRecord, 0, len(records))
	for _, job := range records {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		out = append(out, job)
	}
	return out
}

func filterByTitle(records []JobRecord, role string) []JobRecord {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return records
	}
	tokens := strings.Fields(role)
	var out []JobRecord
	for _, job := range records {
		title := strings.ToLower(job.Title)
		if strings.Contains(title, role) {
			out = append(out, job)
			continue
		}
		for _, token := range tokens {
			if strings.Contains(title, token) {
				out = append(out, job)
				break
			}
		}
	}
	if out == nil {
		out = []JobRecord{}
	}
	return out
}

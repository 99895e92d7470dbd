package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. Skills are stored as JSONB so the
// record round-trips through database/sql without array adapters.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts a job or refreshes an existing row by ID.
func (r *PGRepo) Upsert(ctx context.Context, job JobRecord) error {
	const query = `
INSERT INTO jobs (
    id,
    title,
    company,
    location,
    description,
    required_skills,
    experience_level,
    salary,
    url,
    source,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    company = EXCLUDED.company,
    location = EXCLUDED.location,
    description = EXCLUDED.description,
    required_skills = EXCLUDED.required_skills,
    experience_level = EXCLUDED.experience_level,
    salary = EXCLUDED.salary,
    url = EXCLUDED.url,
    source = EXCLUDED.source,
    updated_at = EXCLUDED.updated_at`

	skills, err := json.Marshal(skillsOrEmpty(job.RequiredSkills))
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		skills,
		job.ExperienceLevel,
		job.Salary,
		job.URL,
		job.Source,
		time.Now().UTC(),
	)
	return err
}

// GetByID fetches a job by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (JobRecord, error) {
	const query = `
SELECT id, title, company, location, description, required_skills, experience_level, salary, url, source
FROM jobs
WHERE id = $1
LIMIT 1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobRecord{}, ErrNotFound
		}
		return JobRecord{}, err
	}
	return job, nil
}

// List returns jobs newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]JobRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 5000 {
		limit = 5000
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, title, company, location, description, required_skills, experience_level, salary, url, source
FROM jobs
ORDER BY updated_at DESC, id
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobRecord
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Count returns the number of stored jobs.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (JobRecord, error) {
	var job JobRecord
	var skills []byte
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Description,
		&skills,
		&job.ExperienceLevel,
		&job.Salary,
		&job.URL,
		&job.Source,
	); err != nil {
		return JobRecord{}, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &job.RequiredSkills); err != nil {
			return JobRecord{}, err
		}
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}
	return job, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

var _ Repo = (*PGRepo)(nil)

package match

import (
	"errors"
	"math"
	"sort"

	"pathway-backend/internal/jobs"
	"pathway-backend/internal/shared/metrics"
	"pathway-backend/internal/shared/telemetry"
)

const maxMissingSkills = 5

var errMissingTitle = errors.New("job has no title")

// Matcher scores candidate profiles against job records. Stateless after
// construction and safe for concurrent use.
type Matcher struct {
	norm       *Normalizer
	importance ImportanceTable
	blender    Blender
}

// New builds a Matcher with the default synonym table and importance
// weights.
func New() *Matcher {
	return &Matcher{
		norm:       NewNormalizer(),
		importance: DefaultImportance(),
	}
}

// Normalizer exposes the matcher's skill canonicalizer for callers that
// need consistent skill names outside of scoring.
func (m *Matcher) Normalizer() *Normalizer {
	return m.norm
}

// Bootstrap runs the blend self-check. See Blender.Bootstrap.
func (m *Matcher) Bootstrap(samples int) BootstrapReport {
	return m.blender.Bootstrap(samples)
}

// Match scores the profile against every record. Malformed records are
// skipped and logged rather than failing the request. Results come back
// sorted by readiness descending; ties keep the input order.
func (m *Matcher) Match(profile CandidateProfile, records []jobs.JobRecord) []MatchResult {
	candidate := m.norm.ConfidenceMap(profile.Skills)
	results := make([]MatchResult, 0, len(records))
	for _, rec := range records {
		result, err := m.scoreJob(profile, candidate, rec)
		if err != nil {
			id := rec.ID
			if id == "" {
				id = "unknown"
			}
			telemetry.Error("match.job_skipped", map[string]any{
				"job_id": id,
				"error":  err.Error(),
			})
			metrics.IncJobSkipped()
			continue
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Readiness > results[j].Readiness
	})
	metrics.AddJobsScored(len(results))
	return results
}

func (m *Matcher) scoreJob(profile CandidateProfile, candidate map[string]float64, rec jobs.JobRecord) (MatchResult, error) {
	if rec.Title == "" {
		return MatchResult{}, errMissingTitle
	}

	skill := m.ScoreSkills(candidate, rec.RequiredSkills)
	experience := ScoreExperience(profile.ExperienceLevel, rec.ExperienceLevel)
	role := ScoreRole(profile.PreferredRole, rec.Title)
	readiness := m.blender.Predict(skill.Final, experience, role)

	missing := skill.Missing
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	return MatchResult{
		JobID:     rec.ID,
		Title:     rec.Title,
		Company:   rec.Company,
		Location:  rec.Location,
		URL:       rec.URL,
		Readiness: roundPct(readiness),
		Category:  Classify(readiness),
		Breakdown: ReadinessBreakdown{
			Overall: roundPct(readiness),
			Components: []BreakdownComponent{
				{Label: "Skills", Value: roundPct(skill.Final), Weight: weightSkills},
				{Label: "Experience", Value: roundPct(experience), Weight: weightExperience},
				{Label: "Role Fit", Value: roundPct(role), Weight: weightRole},
			},
		},
		MissingSkills:  missing,
		Recommendation: RecommendAction(missing),
	}, nil
}

// roundPct converts a 0-1 score to a percentage with one decimal place.
func roundPct(v float64) float64 {
	return math.Round(clamp01(v)*1000) / 10
}

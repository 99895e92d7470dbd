package match

import (
	"testing"

	"pathway-backend/internal/jobs"
)

func TestMatchWorkedExample(t *testing.T) {
	m := New()
	profile := CandidateProfile{
		Skills:          []SkillEntry{BareSkill("Python"), BareSkill("SQL")},
		ExperienceLevel: "Entry level",
		PreferredRole:   "Data Analyst",
	}
	records := []jobs.JobRecord{{
		ID:              "job-1",
		Title:           "Data Analyst",
		Company:         "Acme",
		RequiredSkills:  []string{"Python", "SQL", "Excel"},
		ExperienceLevel: "Entry level",
	}}

	results := m.Match(profile, records)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Readiness != 75.0 {
		t.Fatalf("Readiness = %v, want 75.0", r.Readiness)
	}
	if r.Category.ID != "apply_now" {
		t.Fatalf("Category = %q, want apply_now", r.Category.ID)
	}
	if len(r.MissingSkills) != 1 || r.MissingSkills[0] != "microsoft excel" {
		t.Fatalf("MissingSkills = %v", r.MissingSkills)
	}
	if r.Recommendation.Skill != "microsoft excel" {
		t.Fatalf("Recommendation = %+v", r.Recommendation)
	}
	if r.Breakdown.Overall != 75.0 {
		t.Fatalf("Breakdown.Overall = %v", r.Breakdown.Overall)
	}
	if len(r.Breakdown.Components) != 3 {
		t.Fatalf("Breakdown has %d components", len(r.Breakdown.Components))
	}
	skills := r.Breakdown.Components[0]
	if skills.Label != "Skills" || skills.Value != 64.2 || skills.Weight != 0.7 {
		t.Fatalf("Skills component = %+v", skills)
	}
	if r.Breakdown.Components[1].Value != 100.0 || r.Breakdown.Components[2].Value != 100.0 {
		t.Fatalf("Experience/Role components = %+v", r.Breakdown.Components[1:])
	}
}

func TestMatchSortsByReadinessDescending(t *testing.T) {
	m := New()
	profile := CandidateProfile{
		Skills:          []SkillEntry{BareSkill("Python")},
		ExperienceLevel: "Entry level",
		PreferredRole:   "Data Analyst",
	}
	records := []jobs.JobRecord{
		{ID: "far", Title: "Kernel Engineer", RequiredSkills: []string{"C++", "Rust"}, ExperienceLevel: "Director"},
		{ID: "close", Title: "Data Analyst", RequiredSkills: []string{"Python"}, ExperienceLevel: "Entry level"},
		{ID: "mid", Title: "Python Developer", RequiredSkills: []string{"Python", "Docker"}, ExperienceLevel: "Associate"},
	}
	results := m.Match(profile, records)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Readiness < results[i].Readiness {
			t.Fatalf("results not sorted: %v then %v", results[i-1].Readiness, results[i].Readiness)
		}
	}
	if results[0].JobID != "close" {
		t.Fatalf("best match = %q, want close", results[0].JobID)
	}
}

func TestMatchSkipsUntitledJobs(t *testing.T) {
	m := New()
	profile := CandidateProfile{Skills: []SkillEntry{BareSkill("Python")}}
	records := []jobs.JobRecord{
		{ID: "bad"},
		{ID: "good", Title: "Python Developer", RequiredSkills: []string{"Python"}},
	}
	results := m.Match(profile, records)
	if len(results) != 1 || results[0].JobID != "good" {
		t.Fatalf("results = %+v, want only the titled job", results)
	}
}

func TestMatchReadinessWithinPercentageRange(t *testing.T) {
	m := New()
	profile := CandidateProfile{
		Skills:          []SkillEntry{RatedSkill("Python", "expert"), BareSkill("AWS")},
		ExperienceLevel: "Mid-Senior level",
		PreferredRole:   "DevOps Engineer",
	}
	results := m.Match(profile, jobs.SeedJobs())
	if len(results) == 0 {
		t.Fatal("no results from seed jobs")
	}
	for _, r := range results {
		if r.Readiness < 0 || r.Readiness > 100 {
			t.Fatalf("readiness %v out of range for %s", r.Readiness, r.JobID)
		}
		if len(r.MissingSkills) > 5 {
			t.Fatalf("missing skills not capped: %v", r.MissingSkills)
		}
	}
}

func TestMatchEmptySkillListStillScores(t *testing.T) {
	m := New()
	results := m.Match(CandidateProfile{ExperienceLevel: "Entry level"}, []jobs.JobRecord{
		{ID: "j", Title: "Analyst", RequiredSkills: []string{"SQL"}, ExperienceLevel: "Entry level"},
	})
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	// Skill 0, experience 1.0, role 0: 0.2 blended.
	if results[0].Readiness != 20.0 {
		t.Fatalf("Readiness = %v, want 20.0", results[0].Readiness)
	}
}

func TestInterviewQuestionsCapAndDeterminism(t *testing.T) {
	missing := []string{"docker", "kubernetes", "terraform", "go"}
	first := InterviewQuestions(missing)
	if len(first) != 3 {
		t.Fatalf("got %d questions, want 3", len(first))
	}
	second := InterviewQuestions(missing)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("questions not deterministic at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].Skill != "docker" {
		t.Fatalf("first question skill = %q", first[0].Skill)
	}
}

package main

// Score a sample candidate against the built-in seed jobs:
//   go run ./cmd/matchdemo -role "Data Analyst"

import (
	"flag"
	"fmt"
	"strings"

	"pathway-backend/internal/jobs"
	"pathway-backend/internal/match"
)

func main() {
	skillsFlag := flag.String("skills", "Python,SQL,Excel", "comma-separated candidate skills")
	level := flag.String("level", "Entry level", "candidate experience level")
	role := flag.String("role", "Data Analyst", "preferred role")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	var entries []match.SkillEntry
	for _, s := range strings.Split(*skillsFlag, ",") {
		if s = strings.TrimSpace(s); s != "" {
			entries = append(entries, match.BareSkill(s))
		}
	}

	matcher := match.New()
	results := matcher.Match(match.CandidateProfile{
		Skills:          entries,
		ExperienceLevel: *level,
		PreferredRole:   *role,
	}, jobs.SeedJobs())

	if len(results) > *top {
		results = results[:*top]
	}
	for i, r := range results {
		fmt.Printf("%d. %-40s %5.1f%%  %s\n", i+1, r.Title+" @ "+r.Company, r.Readiness, r.Category.Label)
		if len(r.MissingSkills) > 0 {
			fmt.Printf("   missing: %s\n", strings.Join(r.MissingSkills, ", "))
		}
		fmt.Printf("   next: %s\n", r.Recommendation.Message)
	}
}

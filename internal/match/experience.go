package match

import "strings"

var experienceOrdinals = map[string]int{
	"internship":       0,
	"entry level":      1,
	"associate":        2,
	"mid-senior level": 3,
	"director":         4,
	"executive":        5,
}

// "Not Specified" and anything unrecognized land here. Treating unknowns
// as entry level keeps sparse postings scoreable without inflating them.
const defaultExperienceOrdinal = 1

func experienceOrdinal(level string) int {
	if v, ok := experienceOrdinals[strings.ToLower(strings.TrimSpace(level))]; ok {
		return v
	}
	return defaultExperienceOrdinal
}

// ScoreExperience maps the distance between candidate and job seniority
// onto a 0-1 score. Symmetric: over-qualification costs as much as
// under-qualification.
func ScoreExperience(candidate, job string) float64 {
	gap := experienceOrdinal(candidate) - experienceOrdinal(job)
	if gap < 0 {
		gap = -gap
	}
	switch gap {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.5
	default:
		return 0.2
	}
}

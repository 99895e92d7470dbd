package match

import "fmt"

// Recommendation is the single next step a candidate should take for a
// given job.
type Recommendation struct {
	Type     string `json:"type"`
	Skill    string `json:"skill,omitempty"`
	Message  string `json:"message"`
	Priority string `json:"priority,omitempty"`
}

// RecommendAction picks the highest-impact next step from the missing
// skill list. Missing skills arrive in posting order, so the first one is
// the recommendation.
func RecommendAction(missing []string) Recommendation {
	if len(missing) == 0 {
		return Recommendation{
			Type:    "ready",
			Message: "You have all required skills! Focus on interview prep.",
		}
	}
	priority := "medium"
	if len(missing) > 2 {
		priority = "high"
	}
	skill := missing[0]
	return Recommendation{
		Type:     "learn",
		Skill:    skill,
		Message:  fmt.Sprintf("Learning %s will have the highest impact", skill),
		Priority: priority,
	}
}

package match

// CandidateProfile is the scoring input: the candidate's skills with
// optional proficiency, their seniority, and the role they want.
type CandidateProfile struct {
	Skills          []SkillEntry `json:"skills"`
	ExperienceLevel string       `json:"experience_level"`
	PreferredRole   string       `json:"preferred_role"`
}

// BreakdownComponent is one dimension of the readiness breakdown. Value is
// a percentage, Weight the dimension's share of the blend.
type BreakdownComponent struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// ReadinessBreakdown explains how a readiness percentage was composed.
type ReadinessBreakdown struct {
	Overall    float64              `json:"overall"`
	Components []BreakdownComponent `json:"breakdown"`
}

// MatchResult is one scored job for a candidate.
type MatchResult struct {
	JobID          string             `json:"job_id"`
	Title          string             `json:"title"`
	Company        string             `json:"company"`
	Location       string             `json:"location,omitempty"`
	URL            string             `json:"url,omitempty"`
	Readiness      float64            `json:"readiness"`
	Category       Category           `json:"category"`
	Breakdown      ReadinessBreakdown `json:"readiness_breakdown"`
	MissingSkills  []string           `json:"missing_skills"`
	Recommendation Recommendation     `json:"recommended_action"`
}

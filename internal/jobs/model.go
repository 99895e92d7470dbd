package jobs

// JobRecord is one job posting in the shape the matching core consumes.
// Records from the live feed, the seed CSV and the database all normalize
// to this; the core treats them identically regardless of origin.
type JobRecord struct {
	ID              string   `json:"job_id,omitempty"`
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	URL             string   `json:"url,omitempty"`
	Source          string   `json:"source,omitempty"`
}

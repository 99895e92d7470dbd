package match

// Category is the presentation bucket for a readiness score. Color and
// Icon are stable identifiers clients map to their own visuals.
type Category struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

const (
	applyNowThreshold  = 0.70
	applySoonThreshold = 0.50
)

// Classify buckets a readiness score. Thresholds are inclusive at the
// lower bound.
func Classify(readiness float64) Category {
	switch {
	case readiness >= applyNowThreshold:
		return Category{
			ID:      "apply_now",
			Label:   "Apply Now",
			Color:   "success",
			Icon:    "check-circle",
			Message: "You are ready for this role",
		}
	case readiness >= applySoonThreshold:
		return Category{
			ID:      "apply_soon",
			Label:   "Apply Soon",
			Color:   "warning",
			Icon:    "clock",
			Message: "Close the skill gap first",
		}
	default:
		return Category{
			ID:      "skill_up",
			Label:   "Skill Up First",
			Color:   "danger",
			Icon:    "exclamation-triangle",
			Message: "Significant preparation needed",
		}
	}
}

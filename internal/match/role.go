package match

import "strings"

// ScoreRole measures how well a job title matches the candidate's
// preferred role. The full preferred role appearing inside the title is a
// full match; any single word of it appearing is a partial one.
func ScoreRole(preferred, title string) float64 {
	p := strings.ToLower(strings.TrimSpace(preferred))
	t := strings.ToLower(strings.TrimSpace(title))
	if p == "" || t == "" {
		return 0
	}
	if strings.Contains(t, p) {
		return 1.0
	}
	for _, tok := range strings.Fields(p) {
		if strings.Contains(t, tok) {
			return 0.7
		}
	}
	return 0
}

package match

import (
	"encoding/json"
	"strings"
)

// SkillEntry is one candidate skill. Legacy profiles carry bare names;
// newer ones rate each skill with a proficiency label. The two shapes are
// a tagged variant: Rated distinguishes them, so no field sniffing happens
// downstream.
type SkillEntry struct {
	Name        string
	Proficiency string
	Rated       bool
}

// BareSkill builds an unrated legacy entry.
func BareSkill(name string) SkillEntry {
	return SkillEntry{Name: name}
}

// RatedSkill builds an entry carrying a proficiency label.
func RatedSkill(name, proficiency string) SkillEntry {
	return SkillEntry{Name: name, Proficiency: proficiency, Rated: true}
}

// UnmarshalJSON accepts either a plain string or {"name": ..., "proficiency": ...}.
func (e *SkillEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = SkillEntry{Name: name}
		return nil
	}
	var record struct {
		Name        string `json:"name"`
		Proficiency string `json:"proficiency"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	*e = SkillEntry{Name: record.Name, Proficiency: record.Proficiency, Rated: true}
	return nil
}

// MarshalJSON emits the same shape the entry was parsed from.
func (e SkillEntry) MarshalJSON() ([]byte, error) {
	if !e.Rated {
		return json.Marshal(e.Name)
	}
	return json.Marshal(struct {
		Name        string `json:"name"`
		Proficiency string `json:"proficiency,omitempty"`
	}{e.Name, e.Proficiency})
}

// Bare entries score below "intermediate": the proficiency is unverified.
const bareSkillConfidence = 0.6

const defaultRatedConfidence = 0.7

var proficiencyConfidence = map[string]float64{
	"beginner":     0.4,
	"intermediate": 0.7,
	"advanced":     0.9,
	"expert":       1.0,
}

// Confidence maps the entry's proficiency onto a 0-1 match weight.
func (e SkillEntry) Confidence() float64 {
	if !e.Rated {
		return bareSkillConfidence
	}
	label := strings.ToLower(strings.TrimSpace(e.Proficiency))
	if label == "" {
		label = "intermediate"
	}
	if v, ok := proficiencyConfidence[label]; ok {
		return v
	}
	return defaultRatedConfidence
}

var defaultSynonyms = map[string]string{
	"js":       "javascript",
	"reactjs":  "react",
	"react.js": "react",
	"node.js":  "node",
	"nodejs":   "node",
	"py":       "python",
	"ml":       "machine learning",
	"ai":       "artificial intelligence",
	"aws":      "amazon web services",
	"excel":    "microsoft excel",
}

// Normalizer canonicalizes raw skill names: lowercase, trim, synonym fold.
// The synonym table is fixed at construction; instances are safe for
// unsynchronized concurrent reads.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer constructs a Normalizer with the default synonym table.
func NewNormalizer() *Normalizer {
	synonyms := make(map[string]string, len(defaultSynonyms))
	for k, v := range defaultSynonyms {
		synonyms[k] = v
	}
	return &Normalizer{synonyms: synonyms}
}

// Normalize canonicalizes one skill name. Unrecognized skills pass through
// lowercased and trimmed, so normalization never fails and is idempotent.
func (n *Normalizer) Normalize(name string) string {
	clean := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := n.synonyms[clean]; ok {
		return canonical
	}
	return clean
}

// NormalizeAll canonicalizes a name list, deduplicating while preserving
// first-occurrence order.
func (n *Normalizer) NormalizeAll(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		canonical := n.Normalize(name)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

// ConfidenceMap builds canonical-name → confidence for a candidate's skill
// entries. A later entry for the same canonical name wins.
func (n *Normalizer) ConfidenceMap(entries []SkillEntry) map[string]float64 {
	out := make(map[string]float64, len(entries))
	for _, entry := range entries {
		canonical := n.Normalize(entry.Name)
		if canonical == "" {
			continue
		}
		out[canonical] = entry.Confidence()
	}
	return out
}

// ImportanceTable maps canonical skill names to market-demand weights.
// Immutable after process start.
type ImportanceTable map[string]float64

// DefaultImportance returns the built-in market-demand weights.
func DefaultImportance() ImportanceTable {
	return ImportanceTable{
		"python":              1.5,
		"java":                1.3,
		"react":               1.4,
		"sql":                 1.2,
		"amazon web services": 1.8,
		"azure":               1.6,
		"docker":              1.5,
		"kubernetes":          1.9,
		"machine learning":    2.0,
		"javascript":          1.3,
		"node":                1.4,
		"typescript":          1.4,
		"terraform":           1.7,
		"go":                  1.6,
		"rust":                1.5,
		"c++":                 1.4,
		"mongodb":             1.3,
		"postgres":            1.3,
		"graphql":             1.2,
	}
}

// Weight returns a skill's demand weight, defaulting to 1.0.
func (t ImportanceTable) Weight(name string) float64 {
	if w, ok := t[name]; ok {
		return w
	}
	return 1.0
}

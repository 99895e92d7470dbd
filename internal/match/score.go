package match

// SkillScore holds the skill dimension of one candidate/job comparison.
type SkillScore struct {
	Coverage float64
	Final    float64
	// Missing lists required skills the candidate lacks, canonical form,
	// in the job's original posting order.
	Missing []string
}

const (
	coverageBlendBase       = 0.7
	coverageBlendConfidence = 0.3
)

// ScoreSkills compares a candidate's confidence map against a job's
// required skill list. Required names are normalized and deduplicated here
// so callers can pass raw posting data.
func (m *Matcher) ScoreSkills(candidate map[string]float64, required []string) SkillScore {
	needed := m.norm.NormalizeAll(required)
	score := SkillScore{Missing: []string{}}
	if len(needed) == 0 {
		// Nothing to measure against. Zero, not full marks: an empty
		// requirement list means the posting is unscoreable.
		return score
	}

	var totalWeight, matchedWeight, weightedConfidence float64
	for _, skill := range needed {
		w := m.importance.Weight(skill)
		totalWeight += w
		if conf, ok := candidate[skill]; ok {
			matchedWeight += w
			weightedConfidence += w * conf
		} else {
			score.Missing = append(score.Missing, skill)
		}
	}

	score.Coverage = matchedWeight / totalWeight
	if matchedWeight > 0 {
		confFactor := weightedConfidence / matchedWeight
		score.Final = clamp01(score.Coverage * (coverageBlendBase + coverageBlendConfidence*confFactor))
	}
	return score
}

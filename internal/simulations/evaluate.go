package simulations

import (
	"fmt"
	"math"
	"strings"
)

// BreakdownEntry is one scored contribution in an evaluation.
type BreakdownEntry struct {
	Action string  `json:"action"`
	Impact float64 `json:"impact"`
	Type   string  `json:"type"`
	Note   string  `json:"note,omitempty"`
}

// Evaluation is the graded outcome of a simulation submission.
type Evaluation struct {
	TotalScore  float64            `json:"total_score"`
	Breakdown   []BreakdownEntry   `json:"breakdown"`
	SkillImpact map[string]float64 `json:"skill_impact"`
	Summary     string             `json:"summary"`
}

const (
	communicationBonusCap = 5.0
	scoreOvershootAllowed = 5.0
	maxNotedKeywords      = 4
)

// Evaluate grades a submission: action impacts plus a vocabulary bonus
// from the free-text justification, capped relative to the simulation's
// difficulty. Unknown action ids are ignored rather than rejected, so a
// stale client keeps working after catalog edits.
func (c *Catalog) Evaluate(simID string, decisions []string, justification string) (Evaluation, error) {
	sim, err := c.Get(simID)
	if err != nil {
		return Evaluation{}, err
	}

	var total float64
	breakdown := []BreakdownEntry{}
	for _, decision := range decisions {
		for _, action := range sim.Actions {
			if action.ID == decision {
				total += action.Impact
				breakdown = append(breakdown, BreakdownEntry{
					Action: action.Label,
					Impact: action.Impact,
					Type:   "technical",
				})
				break
			}
		}
	}

	lowered := strings.ToLower(justification)
	var found []string
	for _, kw := range c.keywords[simID] {
		if strings.Contains(lowered, kw) {
			found = append(found, kw)
		}
	}
	bonus := math.Min(float64(len(found)), communicationBonusCap)
	if bonus > 0 {
		total += bonus
		noted := found
		if len(noted) > maxNotedKeywords {
			noted = noted[:maxNotedKeywords]
		}
		breakdown = append(breakdown, BreakdownEntry{
			Action: "Technical Justification",
			Impact: bonus,
			Type:   "communication",
			Note:   fmt.Sprintf("Strong technical vocabulary used: %s...", strings.Join(noted, ", ")),
		})
	}

	final := round1(math.Min(total, sim.MaxImpact+scoreOvershootAllowed))

	grade := "good"
	switch {
	case final > 12:
		grade = "excellent"
	case final > 8:
		grade = "strong"
	}

	return Evaluation{
		TotalScore: final,
		Breakdown:  breakdown,
		SkillImpact: map[string]float64{
			sim.TargetSkill:           final,
			"Technical Communication": bonus,
		},
		Summary: fmt.Sprintf("Demonstrated %s proficiency in %s.", grade, sim.TargetSkill),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

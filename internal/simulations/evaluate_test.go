package simulations

import (
	"errors"
	"strings"
	"testing"
)

func TestEvaluateCombinesActionsAndVocabulary(t *testing.T) {
	c := NewCatalog()
	result, err := c.Evaluate(
		"sql-perf-audit",
		[]string{"inspect-plan", "optimize-joins"},
		"I checked the execution plan first and then reordered the join.",
	)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// 2.0 + 7.0 actions, plus 2 keywords.
	if result.TotalScore != 11.0 {
		t.Fatalf("TotalScore = %v, want 11.0", result.TotalScore)
	}
	if len(result.Breakdown) != 3 {
		t.Fatalf("breakdown = %+v", result.Breakdown)
	}
	last := result.Breakdown[2]
	if last.Type != "communication" || last.Impact != 2.0 {
		t.Fatalf("communication entry = %+v", last)
	}
	if result.SkillImpact["SQL Query Optimization"] != 11.0 {
		t.Fatalf("skill impact = %v", result.SkillImpact)
	}
	if result.SkillImpact["Technical Communication"] != 2.0 {
		t.Fatalf("communication impact = %v", result.SkillImpact)
	}
	if result.Summary != "Demonstrated strong proficiency in SQL Query Optimization." {
		t.Fatalf("summary = %q", result.Summary)
	}
}

func TestEvaluateIgnoresUnknownActions(t *testing.T) {
	c := NewCatalog()
	result, err := c.Evaluate("sql-perf-audit", []string{"inspect-plan", "no-such-action"}, "")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.TotalScore != 2.0 {
		t.Fatalf("TotalScore = %v, want 2.0", result.TotalScore)
	}
	if len(result.Breakdown) != 1 {
		t.Fatalf("breakdown = %+v", result.Breakdown)
	}
}

func TestEvaluateCapsTotalScore(t *testing.T) {
	c := NewCatalog()
	justification := "index execution plan scan join cost selectivity optimization bottleneck performance"
	result, err := c.Evaluate(
		"sql-perf-audit",
		[]string{"inspect-plan", "sample-rows", "suggest-index", "optimize-joins"},
		justification,
	)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// 15.0 of actions plus a capped 5.0 bonus, clipped to max_impact + 5.
	if result.TotalScore != 20.0 {
		t.Fatalf("TotalScore = %v, want 20.0", result.TotalScore)
	}
	if result.Summary != "Demonstrated excellent proficiency in SQL Query Optimization." {
		t.Fatalf("summary = %q", result.Summary)
	}
}

func TestEvaluateKeywordNoteCapsAtFour(t *testing.T) {
	c := NewCatalog()
	result, err := c.Evaluate(
		"react-perf-fix",
		nil,
		"memo render debounce state virtual callback",
	)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.TotalScore != 5.0 {
		t.Fatalf("TotalScore = %v, want capped bonus 5.0", result.TotalScore)
	}
	note := result.Breakdown[0].Note
	if !strings.HasPrefix(note, "Strong technical vocabulary used: ") || !strings.HasSuffix(note, "...") {
		t.Fatalf("note = %q", note)
	}
	listed := strings.TrimSuffix(strings.TrimPrefix(note, "Strong technical vocabulary used: "), "...")
	if got := len(strings.Split(listed, ", ")); got != 4 {
		t.Fatalf("note lists %d keywords, want 4", got)
	}
}

func TestEvaluateUnknownSimulation(t *testing.T) {
	c := NewCatalog()
	if _, err := c.Evaluate("no-such-sim", nil, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestEvaluateNoBonusSkipsCommunicationEntry(t *testing.T) {
	c := NewCatalog()
	result, err := c.Evaluate("aws-security-audit", []string{"remove-admin"}, "did the thing")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.TotalScore != 4.0 {
		t.Fatalf("TotalScore = %v", result.TotalScore)
	}
	for _, entry := range result.Breakdown {
		if entry.Type == "communication" {
			t.Fatalf("unexpected communication entry: %+v", entry)
		}
	}
	if result.SkillImpact["Technical Communication"] != 0 {
		t.Fatalf("communication impact = %v, want 0", result.SkillImpact["Technical Communication"])
	}
	if result.Summary != "Demonstrated good proficiency in Cloud Platform (AWS)." {
		t.Fatalf("summary = %q", result.Summary)
	}
}

func TestCatalogListAndGet(t *testing.T) {
	c := NewCatalog()
	sims := c.List()
	if len(sims) != 4 {
		t.Fatalf("got %d simulations, want 4", len(sims))
	}
	if sims[0].ID != "sql-perf-audit" {
		t.Fatalf("first simulation = %q, order should be stable", sims[0].ID)
	}
	sim, err := c.Get("react-perf-fix")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sim.MaxImpact != 15.0 || len(sim.Actions) != 2 {
		t.Fatalf("react-perf-fix = %+v", sim)
	}
	if _, err := c.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing err = %v", err)
	}
}

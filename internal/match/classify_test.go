package match

import "testing"

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		readiness float64
		wantID    string
	}{
		{0.95, "apply_now"},
		{0.70, "apply_now"},
		{0.699, "apply_soon"},
		{0.50, "apply_soon"},
		{0.499, "skill_up"},
		{0.0, "skill_up"},
	}
	for _, tc := range cases {
		if got := Classify(tc.readiness); got.ID != tc.wantID {
			t.Errorf("Classify(%v).ID = %q, want %q", tc.readiness, got.ID, tc.wantID)
		}
	}
}

func TestClassifyPresentationFields(t *testing.T) {
	got := Classify(0.8)
	if got.Label != "Apply Now" || got.Color != "success" || got.Icon != "check-circle" {
		t.Fatalf("apply_now presentation = %+v", got)
	}
	if got.Message != "You are ready for this role" {
		t.Fatalf("apply_now message = %q", got.Message)
	}
	if soon := Classify(0.6); soon.Color != "warning" || soon.Icon != "clock" {
		t.Fatalf("apply_soon presentation = %+v", soon)
	}
	if up := Classify(0.2); up.Color != "danger" || up.Icon != "exclamation-triangle" {
		t.Fatalf("skill_up presentation = %+v", up)
	}
}

func TestRecommendAction(t *testing.T) {
	ready := RecommendAction(nil)
	if ready.Type != "ready" {
		t.Fatalf("empty missing: %+v", ready)
	}
	if ready.Message != "You have all required skills! Focus on interview prep." {
		t.Fatalf("ready message = %q", ready.Message)
	}

	single := RecommendAction([]string{"docker"})
	if single.Type != "learn" || single.Skill != "docker" || single.Priority != "medium" {
		t.Fatalf("single missing: %+v", single)
	}
	if single.Message != "Learning docker will have the highest impact" {
		t.Fatalf("learn message = %q", single.Message)
	}

	many := RecommendAction([]string{"docker", "kubernetes", "terraform"})
	if many.Priority != "high" || many.Skill != "docker" {
		t.Fatalf("many missing: %+v", many)
	}
}

package match

import (
	"math"
	"math/rand"
)

// Blend weights are part of the scoring contract: the readiness breakdown
// reports them to clients, so they only change together with that surface.
const (
	weightSkills     = 0.7
	weightExperience = 0.2
	weightRole       = 0.1
)

// Blender combines the three dimension scores into overall readiness.
type Blender struct{}

// Predict blends skill, experience and role scores into a 0-1 readiness
// value. Inputs outside [0,1] are clamped rather than rejected.
func (Blender) Predict(skill, experience, role float64) float64 {
	return clamp01(weightSkills*skill + weightExperience*experience + weightRole*role)
}

// BootstrapReport summarizes a self-check of the blend against a synthetic
// labeled sample.
type BootstrapReport struct {
	Samples   int
	Agreement float64
}

const bootstrapThreshold = 0.75

// Bootstrap measures how often Predict agrees with a noisy synthetic
// labeling rule. The seed is fixed so the reported agreement is stable
// across restarts; the result is informational only and never gates
// scoring.
func (b Blender) Bootstrap(samples int) BootstrapReport {
	if samples <= 0 {
		samples = 2000
	}
	rng := rand.New(rand.NewSource(42))
	agree := 0
	for i := 0; i < samples; i++ {
		skill := rng.Float64()
		experience := rng.Float64()
		role := rng.Float64()
		noise := (rng.Float64() - 0.5) * 0.2
		label := 0.6*skill+0.3*experience+0.1*role+noise > bootstrapThreshold
		predicted := b.Predict(skill, experience, role) > bootstrapThreshold
		if label == predicted {
			agree++
		}
	}
	return BootstrapReport{
		Samples:   samples,
		Agreement: float64(agree) / float64(samples),
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

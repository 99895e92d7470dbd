package match

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/jobs"
	"pathway-backend/internal/shared/metrics"
	"pathway-backend/internal/shared/server/respond"
	"pathway-backend/internal/shared/telemetry"
)

// CorpusProvider supplies the job records to score when a request does not
// carry its own.
type CorpusProvider interface {
	Snapshot() []jobs.JobRecord
}

// Handler wires the matcher into HTTP.
type Handler struct {
	Matcher *Matcher
	Corpus  CorpusProvider
}

// RegisterRoutes attaches match endpoints to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches", h.createMatch)
	rg.GET("/matches/interview-prep", h.interviewPrep)
}

type matchRequest struct {
	Skills          []SkillEntry     `json:"skills" binding:"required"`
	ExperienceLevel string           `json:"experience_level"`
	PreferredRole   string           `json:"preferred_role"`
	Jobs            []jobs.JobRecord `json:"jobs"`
}

func (h *Handler) createMatch(c *gin.Context) {
	metrics.IncMatchRequests()

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid match request", err.Error())
		return
	}

	records := req.Jobs
	if len(records) == 0 {
		records = h.Corpus.Snapshot()
	}

	start := time.Now()
	results := h.Matcher.Match(CandidateProfile{
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		PreferredRole:   req.PreferredRole,
	}, records)
	elapsed := time.Since(start)

	metrics.ObserveMatchDurationMs(float64(elapsed.Milliseconds()))
	telemetry.Info("match.complete", map[string]any{
		"jobs_in":     len(records),
		"jobs_scored": len(results),
		"duration_ms": elapsed.Milliseconds(),
		"request_id":  c.GetString("requestId"),
	})

	respond.JSON(c, http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *Handler) interviewPrep(c *gin.Context) {
	raw := c.Query("skills")
	if strings.TrimSpace(raw) == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "skills query parameter is required", nil)
		return
	}
	missing := h.Matcher.Normalizer().NormalizeAll(strings.Split(raw, ","))
	questions := InterviewQuestions(missing)
	respond.JSON(c, http.StatusOK, gin.H{
		"count":     len(questions),
		"questions": questions,
	})
}

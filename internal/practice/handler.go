package practice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/shared/server/respond"
)

// Handler serves practice drills over HTTP.
type Handler struct {
	Bank *Bank
}

// RegisterRoutes attaches practice endpoints to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/practice/trivia", h.trivia)
	rg.GET("/practice/debug-challenges", h.debugChallenges)
	rg.GET("/practice/scenarios/:id", h.scenario)
}

func (h *Handler) trivia(c *gin.Context) {
	var skills []string
	if raw := c.Query("skills"); strings.TrimSpace(raw) != "" {
		skills = strings.Split(raw, ",")
	}
	questions := h.Bank.TriviaFor(skills)
	respond.JSON(c, http.StatusOK, gin.H{
		"count":     len(questions),
		"questions": questions,
	})
}

func (h *Handler) debugChallenges(c *gin.Context) {
	challenges := h.Bank.DebugChallenges()
	respond.JSON(c, http.StatusOK, gin.H{
		"count":      len(challenges),
		"challenges": challenges,
	})
}

func (h *Handler) scenario(c *gin.Context) {
	nodes, err := h.Bank.Scenario(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "scenario not found", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":    c.Param("id"),
		"nodes": nodes,
	})
}

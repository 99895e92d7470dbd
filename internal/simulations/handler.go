package simulations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/shared/metrics"
	"pathway-backend/internal/shared/server/respond"
)

// Handler serves the simulation bank over HTTP.
type Handler struct {
	Catalog *Catalog
}

// RegisterRoutes attaches simulation endpoints to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/simulations", h.list)
	rg.GET("/simulations/:id", h.get)
	rg.POST("/simulations/:id/evaluate", h.evaluate)
}

func (h *Handler) list(c *gin.Context) {
	sims := h.Catalog.List()
	respond.JSON(c, http.StatusOK, gin.H{
		"count":       len(sims),
		"simulations": sims,
	})
}

func (h *Handler) get(c *gin.Context) {
	sim, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "simulation not found", nil)
		return
	}
	respond.JSON(c, http.StatusOK, sim)
}

type evaluateRequest struct {
	Decisions     []string `json:"decisions"`
	Justification string   `json:"justification"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid evaluation request", err.Error())
		return
	}

	result, err := h.Catalog.Evaluate(c.Param("id"), req.Decisions, req.Justification)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "simulation not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "evaluation failed", nil)
		return
	}

	metrics.IncSimulationEvaluations()
	respond.JSON(c, http.StatusOK, result)
}

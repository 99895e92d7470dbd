package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the jobs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/search", h.search)
	rg.POST("/jobs/refresh", h.refresh)
}

func (h *Handler) search(c *gin.Context) {
	role := c.Query("role")
	location := c.Query("location")

	results, err := h.Svc.Search(c.Request.Context(), role, location)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search jobs", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *Handler) refresh(c *gin.Context) {
	if err := h.Svc.Rebuild(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to rebuild job corpus", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"size":     h.Svc.Corpus.Size(),
		"built_at": h.Svc.Corpus.BuiltAt(),
	})
}

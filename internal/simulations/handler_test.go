package simulations_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/simulations"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &simulations.Handler{Catalog: simulations.NewCatalog()}
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListSimulations(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/simulations", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var out struct {
		Count       int `json:"count"`
		Simulations []struct {
			ID        string  `json:"id"`
			MaxImpact float64 `json:"max_impact"`
		} `json:"simulations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 4 {
		t.Fatalf("count = %d, want 4", out.Count)
	}
}

func TestGetSimulationNotFound(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/simulations/nope", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestEvaluateSimulationEndpoint(t *testing.T) {
	router := newTestRouter()

	payload, _ := json.Marshal(map[string]any{
		"decisions":     []string{"apply-memo", "debounce-input"},
		"justification": "Wrapped the list in memo and added a debounce to cut rerender churn.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations/react-perf-fix/evaluate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var out struct {
		TotalScore float64            `json:"total_score"`
		Summary    string             `json:"summary"`
		Skill      map[string]float64 `json:"skill_impact"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Actions 15.0 plus a 4-keyword bonus.
	if out.TotalScore != 19.0 {
		t.Fatalf("total_score = %v, want 19.0", out.TotalScore)
	}
	if out.Skill["React & Frontend Performance"] != 19.0 {
		t.Fatalf("skill_impact = %v", out.Skill)
	}
}

func TestEvaluateSimulationNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations/nope/evaluate", bytes.NewReader([]byte(`{"decisions":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

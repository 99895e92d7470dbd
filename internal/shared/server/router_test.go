package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pathway-backend/internal/shared/config"
	"pathway-backend/internal/shared/server"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return server.NewRouter(config.Config{Env: "dev"})
}

func TestHealthEndpointsAndSeededCorpus(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var out struct {
		OK         bool `json:"ok"`
		CorpusSize int  `json:"corpus_size"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !out.OK {
		t.Fatal("health not ok")
	}
	if out.CorpusSize != 21 {
		t.Fatalf("corpus_size = %d, want the 21 seed jobs", out.CorpusSize)
	}

	root := httptest.NewRecorder()
	router.ServeHTTP(root, httptest.NewRequest(http.MethodGet, "/health", nil))
	if root.Code != http.StatusOK {
		t.Fatalf("root health status = %d", root.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("corpus_size")) {
		t.Fatal("metrics output missing corpus gauge")
	}
}

func TestMatchAgainstSeedCorpusEndToEnd(t *testing.T) {
	router := newRouter(t)

	payload, _ := json.Marshal(map[string]any{
		"skills":           []any{"Excel", map[string]any{"name": "Agile", "proficiency": "advanced"}},
		"experience_level": "Entry level",
		"preferred_role":   "Financial Analyst",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Count   int `json:"count"`
		Results []struct {
			Title     string  `json:"title"`
			Readiness float64 `json:"readiness"`
		} `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 21 {
		t.Fatalf("count = %d, want all seed jobs scored", out.Count)
	}
	for i := 1; i < len(out.Results); i++ {
		if out.Results[i-1].Readiness < out.Results[i].Readiness {
			t.Fatal("results not sorted by readiness")
		}
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":7070": ":7070",
	}
	for in, want := range cases {
		if got := server.Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

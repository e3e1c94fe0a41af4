package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"felix-lab/internal/domain"
	"felix-lab/internal/store"
)

func TestGetBrainReturnsFullLibrary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	traitStore := store.NewTraitStore(filepath.Join(t.TempDir(), "trait_library.json"), zap.NewNop())
	if err := traitStore.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	var seed domain.TraitMap
	seed.Set("quiet_hoarder", domain.Trait{
		Definition: "accumulates without sharing",
		SinWeights: map[string]float64{"greed": 0.8},
	})
	if _, err := traitStore.Assimilate(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	h := NewBrainHandler(zap.NewNop(), traitStore, "nope.json")
	router := gin.New()
	router.GET("/api/brain", h.GetBrain)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brain", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var lib domain.TraitLibrary
	if err := json.Unmarshal(rec.Body.Bytes(), &lib); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if !lib.Traits.Has("quiet_hoarder") {
		t.Fatalf("expected seeded trait in response")
	}
	if lib.Meta == nil {
		t.Fatalf("expected meta in response")
	}
}

func TestGetQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	traitStore := store.NewTraitStore(filepath.Join(t.TempDir(), "trait_library.json"), zap.NewNop())
	if err := traitStore.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}

	t.Run("missing file is 404", func(t *testing.T) {
		h := NewBrainHandler(zap.NewNop(), traitStore, filepath.Join(t.TempDir(), "missing.json"))
		router := gin.New()
		router.GET("/api/questions", h.GetQuestions)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("existing file served verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.json")
		content := `{"questions": [{"id": "q1", "text": "..."}]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write questions: %v", err)
		}

		h := NewBrainHandler(zap.NewNop(), traitStore, path)
		router := gin.New()
		router.GET("/api/questions", h.GetQuestions)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != content {
			t.Fatalf("expected questions served verbatim, got %s", rec.Body.String())
		}
	})
}

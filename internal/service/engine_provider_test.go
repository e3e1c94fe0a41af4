package service

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"felix-lab/internal/config"
	"felix-lab/internal/domain"
	"felix-lab/internal/store"
)

func newProviderStore(t *testing.T) *store.TraitStore {
	t.Helper()
	s := store.NewTraitStore(filepath.Join(t.TempDir(), "trait_library.json"), zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func TestEngineProviderWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{LLMAPIKey: "  "}
	p := NewEngineProvider(cfg, newProviderStore(t), zap.NewNop())

	// La falta de credencial debe reportarse en cada llamada, no solo en la primera.
	for i := 0; i < 2; i++ {
		if _, err := p.Engine(); !errors.Is(err, domain.ErrNotConfigured) {
			t.Fatalf("call %d: expected ErrNotConfigured, got %v", i+1, err)
		}
	}
}

func TestEngineProviderCachesEngine(t *testing.T) {
	cfg := &config.Config{
		LLMAPIKey:      "test-key",
		LLMModel:       "gpt-5.1",
		LLMMaxTokens:   4096,
		LLMTemperature: 0.3,
	}
	p := NewEngineProvider(cfg, newProviderStore(t), zap.NewNop())

	first, err := p.Engine()
	if err != nil {
		t.Fatalf("expected engine, got %v", err)
	}
	second, err := p.Engine()
	if err != nil {
		t.Fatalf("expected cached engine, got %v", err)
	}
	if first != second {
		t.Fatalf("expected the same engine instance on repeated calls")
	}
}

func TestEngineProviderRecoversAfterConfigFix(t *testing.T) {
	cfg := &config.Config{}
	p := NewEngineProvider(cfg, newProviderStore(t), zap.NewNop())

	if _, err := p.Engine(); !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	cfg.LLMAPIKey = "late-key"
	if _, err := p.Engine(); err != nil {
		t.Fatalf("expected engine after config fix, got %v", err)
	}
}

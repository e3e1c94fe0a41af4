package service

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"felix-lab/internal/config"
	"felix-lab/internal/domain"
	"felix-lab/internal/llm"
	"felix-lab/internal/store"
)

// EngineProvider construye el motor de analisis recien cuando alguien lo
// pide, y lo cachea. Asi el server puede arrancar sin LLM_API_KEY (util en
// hosting antes de setear env vars); la falta de credencial se reporta en
// cada llamada hasta que se configure, no una sola vez al boot.
type EngineProvider struct {
	mu     sync.Mutex
	engine *AnalysisService

	cfg    *config.Config
	traits *store.TraitStore
	logger *zap.Logger
}

func NewEngineProvider(cfg *config.Config, traits *store.TraitStore, logger *zap.Logger) *EngineProvider {
	return &EngineProvider{
		cfg:    cfg,
		traits: traits,
		logger: logger,
	}
}

// Engine devuelve el motor, construyendolo la primera vez. Una construccion
// fallida no se cachea: el siguiente llamado reintenta.
func (p *EngineProvider) Engine() (*AnalysisService, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.engine != nil {
		return p.engine, nil
	}

	if strings.TrimSpace(p.cfg.LLMAPIKey) == "" {
		return nil, fmt.Errorf("%w: LLM_API_KEY is not set", domain.ErrNotConfigured)
	}

	llmClient := llm.NewHTTPClient(p.cfg.LLMBaseURL, p.cfg.LLMAPIKey, p.cfg.LLMModel, p.logger)
	p.engine = NewAnalysisService(llmClient, p.traits, p.logger, p.cfg.LLMMaxTokens, p.cfg.LLMTemperature)
	p.logger.Info("analysis engine initialized", zap.String("model", p.cfg.LLMModel))
	return p.engine, nil
}

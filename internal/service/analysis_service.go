package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"felix-lab/internal/domain"
	"felix-lab/internal/llm"
	"felix-lab/internal/store"
)

// AnalysisService es el motor psicometrico: convierte un lote de respuestas
// en un resultado enriquecido con una sola ida al LLM, y asimila en la
// libreria los traits nuevos que el modelo proponga.
type AnalysisService struct {
	llmClient     llm.LLMClient
	traits        *store.TraitStore
	promptBuilder AnalysisPromptBuilder
	logger        *zap.Logger
	maxTokens     int
	temperature   float64
}

func NewAnalysisService(
	llmClient llm.LLMClient,
	traits *store.TraitStore,
	logger *zap.Logger,
	maxTokens int,
	temperature float64,
) *AnalysisService {
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnalysisService{
		llmClient:   llmClient,
		traits:      traits,
		logger:      logger,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// analysisResponse es el documento que el LLM debe devolver.
type analysisResponse struct {
	AnalysisLog         []domain.AnalysisEntry `json:"analysis_log"`
	NewTraitDefinitions domain.TraitMap        `json:"new_trait_definitions"`
}

// Analyze corre el analisis Poly-Sin sobre las respuestas del usuario.
// El flag is_new_discovery del LLM no se usa para mutar la libreria: el
// store re-valida estructura y unicidad de claves por su cuenta. Esa
// doble verificacion es lo que protege la base de conocimiento de un
// modelo que alucina duplicados o traits incompletos.
func (s *AnalysisService) Analyze(ctx context.Context, answers []domain.Answer) (domain.AnalysisResult, error) {
	knowledgeBase := s.traits.KnowledgeBaseSummary()

	answersJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("marshal answers: %w", err)
	}

	prompt := s.promptBuilder.BuildAnalysisPrompt(knowledgeBase, string(answersJSON))

	rawResp, err := s.llmClient.Generate(ctx, prompt, llm.Options{
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("llm generate: %w", err)
	}

	cleaned := cleanLLMJSONResponse(rawResp)
	if obj := extractFirstJSONObject(cleaned); obj != "" {
		cleaned = obj
	}

	var parsed analysisResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// Retener el texto crudo en el log: es la unica pista para diagnosticar.
		s.logger.Warn("analysis response did not parse", zap.Error(err), zap.String("raw", rawResp))
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	newlyAdded, err := s.traits.Assimilate(parsed.NewTraitDefinitions)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("assimilate traits: %w", err)
	}

	return domain.AnalysisResult{
		AnalysisID:          uuid.NewString(),
		AnalysisLog:         parsed.AnalysisLog,
		NewTraitDefinitions: parsed.NewTraitDefinitions,
		NewlyAddedTraits:    newlyAdded,
	}, nil
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"felix-lab/internal/domain"
	"felix-lab/internal/service"
)

// EngineSource entrega el motor de analisis (o el error de configuracion
// que impide construirlo). Lo implementa service.EngineProvider.
type EngineSource interface {
	Engine() (*service.AnalysisService, error)
}

// AnalyzeHandler mantiene dependencias para el endpoint de analisis.
type AnalyzeHandler struct {
	logger  *zap.Logger
	engines EngineSource
	limiter service.AnalyzeRateLimiter
}

// NewAnalyzeHandler crea una instancia de AnalyzeHandler. limiter puede ser
// nil (sin Redis no hay throttling).
func NewAnalyzeHandler(logger *zap.Logger, engines EngineSource, limiter service.AnalyzeRateLimiter) *AnalyzeHandler {
	return &AnalyzeHandler{
		logger:  logger,
		engines: engines,
		limiter: limiter,
	}
}

// Analyze maneja POST /api/analyze.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req struct {
		Answers []domain.Answer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many analyze requests, slow down"})
		return
	}

	engine, err := h.engines.Engine()
	if err != nil {
		h.logger.Error("engine unavailable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := engine.Analyze(c.Request.Context(), req.Answers)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrOracle), errors.Is(err, domain.ErrMalformedResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed: " + err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

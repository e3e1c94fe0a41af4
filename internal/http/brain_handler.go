package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"felix-lab/internal/store"
)

// BrainHandler expone la libreria de traits y el cuestionario.
type BrainHandler struct {
	logger        *zap.Logger
	traits        *store.TraitStore
	questionsPath string
}

// NewBrainHandler crea una instancia de BrainHandler con dependencias necesarias.
func NewBrainHandler(logger *zap.Logger, traits *store.TraitStore, questionsPath string) *BrainHandler {
	return &BrainHandler{
		logger:        logger,
		traits:        traits,
		questionsPath: questionsPath,
	}
}

// GetBrain maneja GET /api/brain: devuelve la libreria completa
// (el panel "Brain" del frontend la muestra tal cual).
func (h *BrainHandler) GetBrain(c *gin.Context) {
	c.JSON(http.StatusOK, h.traits.Library())
}

// GetQuestions maneja GET /api/questions: devuelve el cuestionario.
func (h *BrainHandler) GetQuestions(c *gin.Context) {
	questions, err := store.LoadQuestions(h.questionsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "questions file not found"})
			return
		}
		h.logger.Error("load questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load questions"})
		return
	}
	c.Data(http.StatusOK, "application/json", questions)
}

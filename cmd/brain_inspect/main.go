package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"felix-lab/internal/config"
	"felix-lab/internal/domain"
	"felix-lab/internal/store"
)

// brain_inspect imprime el estado de la libreria de traits: el resumen que
// ve el LLM y los pesos agregados por pecado. Util para revisar que esta
// aprendiendo Felix sin levantar el server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	traitStore := store.NewTraitStore(cfg.TraitLibraryPath, logger)
	if err := traitStore.Load(); err != nil {
		log.Fatalf("cargar libreria: %v", err)
	}

	traits := traitStore.Traits()
	fmt.Printf("===== Libreria de Traits (%d) =====\n", traits.Len())
	fmt.Println(traitStore.KnowledgeBaseSummary())

	if traits.Len() == 0 {
		return
	}

	totals := map[string]float64{}
	for _, key := range traits.Keys() {
		trait, _ := traits.Get(key)
		for _, sin := range domain.SinNames {
			totals[sin] += trait.Weight(sin)
		}
	}

	fmt.Println("\n===== Peso acumulado por pecado =====")
	for _, sin := range domain.SinNames {
		fmt.Printf("%-10s %.2f\n", sin, totals[sin])
	}
}

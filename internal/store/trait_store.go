package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"felix-lab/internal/domain"
)

// defaultMeta es el stub de metadata con el que nace una libreria vacia.
var defaultMeta = json.RawMessage(`{"version":"2.1","description":"Poly-Sin Weighting Library"}`)

// emptyLibraryPlaceholder se inyecta en el prompt cuando no hay memoria previa.
const emptyLibraryPlaceholder = "(No traits learned yet)"

// TraitStore es el unico dueno de trait_library.json: toda lectura y
// escritura de la libreria pasa por aca. El mutex serializa el ciclo
// completo chequear-insertar-persistir de Assimilate para que dos analisis
// concurrentes no puedan duplicar una clave ni pisarse la escritura.
type TraitStore struct {
	mu      sync.Mutex
	path    string
	library domain.TraitLibrary
	logger  *zap.Logger
}

// NewTraitStore crea el store apuntando al archivo JSON de la libreria.
func NewTraitStore(path string, logger *zap.Logger) *TraitStore {
	return &TraitStore{
		path:   path,
		logger: logger,
	}
}

// Load lee la libreria desde disco. Si el archivo no existe, inicializa una
// libreria vacia con metadata fija y la persiste de inmediato. Un archivo
// presente pero corrupto es un error de storage que se propaga: no se
// recupera pisando datos.
func (s *TraitStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.library = domain.TraitLibrary{Meta: defaultMeta}
		return s.persistLocked()
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrStorage, s.path, err)
	}

	var library domain.TraitLibrary
	if err := json.Unmarshal(data, &library); err != nil {
		return fmt.Errorf("%w: parse %s: %v", domain.ErrStorage, s.path, err)
	}
	if library.Meta == nil {
		library.Meta = defaultMeta
	}
	s.library = library
	return nil
}

// Library devuelve la libreria completa (metadata + traits).
func (s *TraitStore) Library() domain.TraitLibrary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library
}

// Traits devuelve solo la seccion de traits.
func (s *TraitStore) Traits() domain.TraitMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library.Traits
}

// KnowledgeBaseSummary arma el resumen textual de todos los traits conocidos
// para inyectarlo en el prompt del LLM: es la "memoria" del analista.
// Una linea por trait, en orden de insercion, pesos en orden canonico de
// pecados y omitiendo los que valen cero; misma libreria => mismo texto.
func (s *TraitStore) KnowledgeBaseSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.library.Traits.Len() == 0 {
		return emptyLibraryPlaceholder
	}

	var sb strings.Builder
	for i, key := range s.library.Traits.Keys() {
		trait, _ := s.library.Traits.Get(key)
		if i > 0 {
			sb.WriteByte('\n')
		}

		definition := trait.Definition
		if definition == "" {
			definition = "No definition"
		}

		var weights []string
		for _, sin := range domain.SinNames {
			if w := trait.Weight(sin); w > 0 {
				weights = append(weights, sin+": "+formatScore(w))
			}
		}

		sb.WriteString("- ")
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(definition)
		sb.WriteString(" [Weights: ")
		sb.WriteString(strings.Join(weights, ", "))
		sb.WriteString("] (complexity: ")
		sb.WriteString(formatScore(trait.ComplexityScore))
		sb.WriteString(")")
	}
	return sb.String()
}

// Assimilate mezcla las definiciones nuevas propuestas por el LLM.
// Reglas: una clave existente nunca se sobreescribe (la definicion vieja es
// la autoritativa); un candidato sin definition o sin sin_weights se descarta
// sin error. Devuelve las claves realmente insertadas, en el orden en que
// vinieron. Solo persiste si entro al menos una; si la escritura falla, la
// memoria ya quedo mutada y el error exige reintentar el persist, no
// re-enviar el analisis.
func (s *TraitStore) Assimilate(candidates domain.TraitMap) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []string
	for _, key := range candidates.Keys() {
		if s.library.Traits.Has(key) {
			continue
		}
		trait, _ := candidates.Get(key)
		if !trait.Valid() {
			s.logger.Warn("discarding incomplete trait candidate", zap.String("trait", key))
			continue
		}
		s.library.Traits.Set(key, trait)
		added = append(added, key)
	}

	if len(added) > 0 {
		if err := s.persistLocked(); err != nil {
			return added, err
		}
		s.logger.Info("trait library grew", zap.Strings("added", added), zap.Int("total", s.library.Traits.Len()))
	}
	return added, nil
}

func (s *TraitStore) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", domain.ErrStorage, dir, err)
		}
	}

	data, err := json.MarshalIndent(s.library, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal library: %v", domain.ErrStorage, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, s.path, err)
	}
	return nil
}

// formatScore imprime pesos y scores sin ceros de relleno (0.6, no 0.600000).
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"felix-lab/internal/domain"
)

// LoadQuestions lee el cuestionario desde disco y lo devuelve como JSON crudo.
// El contenido es material del frontend; el backend no lo interpreta.
// Un archivo ausente propaga fs.ErrNotExist para que el handler responda 404.
func LoadQuestions(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: questions file %s is not valid JSON", domain.ErrStorage, path)
	}
	return json.RawMessage(data), nil
}

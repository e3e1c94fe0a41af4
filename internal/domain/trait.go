package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// SinNames define los siete pecados en orden canonico.
// Todo render de pesos usa este orden para que la salida sea determinista.
var SinNames = []string{"lust", "gluttony", "greed", "sloth", "wrath", "envy", "pride"}

// Trait es un patron de comportamiento aprendido con su vector de pecados.
type Trait struct {
	Definition      string
	SinWeights      map[string]float64
	ComplexityScore float64

	// Campos desconocidos del JSON persistido; se conservan al re-guardar.
	extra map[string]json.RawMessage
}

// Weight devuelve el peso de un pecado; 0.0 si no esta presente.
func (t Trait) Weight(sin string) float64 {
	return t.SinWeights[sin]
}

// Valid indica si el trait trae la estructura minima exigida para asimilarlo:
// una definicion y un mapa de sin_weights. Un candidato invalido se descarta
// en silencio; el LLM a veces propone traits incompletos.
func (t Trait) Valid() bool {
	return t.Definition != "" && t.SinWeights != nil
}

func (t *Trait) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*t = Trait{}
	for key, raw := range fields {
		switch key {
		case "definition":
			if err := json.Unmarshal(raw, &t.Definition); err != nil {
				return fmt.Errorf("trait definition: %w", err)
			}
		case "sin_weights":
			if err := json.Unmarshal(raw, &t.SinWeights); err != nil {
				return fmt.Errorf("trait sin_weights: %w", err)
			}
			if t.SinWeights == nil {
				t.SinWeights = map[string]float64{}
			}
		case "complexity_score":
			if err := json.Unmarshal(raw, &t.ComplexityScore); err != nil {
				return fmt.Errorf("trait complexity_score: %w", err)
			}
		default:
			if t.extra == nil {
				t.extra = map[string]json.RawMessage{}
			}
			t.extra[key] = raw
		}
	}
	return nil
}

func (t Trait) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(name string, value interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(name)
		if err != nil {
			return err
		}
		valJSON, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
		return nil
	}

	if err := writeField("definition", t.Definition); err != nil {
		return nil, err
	}
	weights := t.SinWeights
	if weights == nil {
		weights = map[string]float64{}
	}
	if err := writeField("sin_weights", weights); err != nil {
		return nil, err
	}
	if err := writeField("complexity_score", t.ComplexityScore); err != nil {
		return nil, err
	}

	extraKeys := make([]string, 0, len(t.extra))
	for key := range t.extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		if err := writeField(key, t.extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TraitMap es un mapa clave -> Trait que conserva el orden de insercion.
// El orden importa: el resumen de conocimiento debe ser reproducible y el
// export JSON legible mantiene el orden historico de descubrimiento.
type TraitMap struct {
	keys  []string
	items map[string]Trait
}

// Len devuelve la cantidad de traits.
func (m TraitMap) Len() int {
	return len(m.keys)
}

// Keys devuelve las claves en orden de insercion (copia).
func (m TraitMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has indica si la clave ya existe.
func (m TraitMap) Has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Get devuelve el trait para una clave.
func (m TraitMap) Get(key string) (Trait, bool) {
	t, ok := m.items[key]
	return t, ok
}

// Set inserta o reemplaza un trait. Una clave nueva va al final del orden;
// reemplazar no cambia la posicion original.
func (m *TraitMap) Set(key string, t Trait) {
	if m.items == nil {
		m.items = map[string]Trait{}
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = t
}

func (m TraitMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(m.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *TraitMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	// null cuenta como mapa vacio; el LLM a veces manda eso.
	if tok == nil {
		*m = TraitMap{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("traits: expected JSON object, got %v", tok)
	}

	*m = TraitMap{items: map[string]Trait{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("traits: expected string key, got %v", keyTok)
		}
		var t Trait
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("trait %q: %w", key, err)
		}
		m.Set(key, t)
	}

	_, err = dec.Token()
	return err
}

// TraitLibrary es la base de conocimiento completa que se persiste en disco.
// Meta es opaco para la logica; se conserva tal cual se leyo.
type TraitLibrary struct {
	Meta   json.RawMessage `json:"meta"`
	Traits TraitMap        `json:"traits"`
}

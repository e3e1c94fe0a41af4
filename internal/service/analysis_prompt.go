package service

import "strings"

// AnalysisPromptBuilder arma el prompt del analista a partir de la memoria
// de traits y las respuestas serializadas. Las respuestas llegan ya como
// JSON (escapadas), asi un texto patologico no puede romper la estructura
// del template.
type AnalysisPromptBuilder struct{}

// BuildAnalysisPrompt arma el prompt completo que se envía al LLM analista.
func (AnalysisPromptBuilder) BuildAnalysisPrompt(knowledgeBase, answersJSON string) string {
	var sb strings.Builder

	// 1. Rol
	sb.WriteString("SYSTEM ROLE: You are 'Felix', an Advanced Evolutionary Psychologist.\n")
	sb.WriteString("OBJECTIVE: Map user behaviors to the 'Seven Deadly Sins' using Poly-Sin Vectors.\n\n")

	// 2. Memoria existente: el LLM debe reusar estas definiciones si aplican.
	sb.WriteString("=== THE HIPPOCAMPUS (EXISTING MEMORY) ===\n")
	sb.WriteString("You MUST prioritize mapping answers to these existing definitions if they fit:\n")
	sb.WriteString(knowledgeBase)
	sb.WriteString("\n\n")

	// 3. Input del usuario
	sb.WriteString("=== THE INPUT ===\n")
	sb.WriteString(answersJSON)
	sb.WriteString("\n\n")

	// 4. Protocolo
	sb.WriteString("=== THE PROTOCOL ===\n")
	sb.WriteString("1. Analyze the user's answer.\n")
	sb.WriteString("2. Search your MEMORY. Does a trait (like 'lust_for_power') already explain this? If yes, use it.\n")
	sb.WriteString("3. IF AND ONLY IF the behavior is nuanced and distinct from memory, DEFINE A NEW TRAIT.\n")
	sb.WriteString("4. A New Trait must define \"sin_weights\" (e.g., { \"pride\": 0.6, \"sloth\": 0.4 }).\n\n")

	// 5. Esquema de salida estricto
	sb.WriteString("=== OUTPUT SCHEMA (Strict JSON) ===\n")
	sb.WriteString(`{
    "analysis_log": [
        {
            "question_id": "q1",
            "answer_text": "...",
            "assigned_trait": "trait_key_snake_case",
            "is_new_discovery": boolean,
            "match_reasoning": "Why this fits..."
        }
    ],
    "new_trait_definitions": {
        "only_if_is_new_discovery_is_true": {
            "definition": "Precise definition",
            "sin_weights": { "lust": 0.0, "gluttony": 0.0, "greed": 0.0, "sloth": 0.0, "wrath": 0.0, "envy": 0.0, "pride": 0.0 },
            "complexity_score": 0.0
        }
    }
}
`)
	sb.WriteString("\nIMPORTANT: Return ONLY valid JSON. No markdown fences. No extra text.")

	return sb.String()
}

package domain

// Answer es una respuesta del cuestionario enviada por el usuario.
type Answer struct {
	QuestionID string `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

// AnalysisEntry es el veredicto del LLM para una respuesta individual.
type AnalysisEntry struct {
	QuestionID     string `json:"question_id"`
	AnswerText     string `json:"answer_text"`
	AssignedTrait  string `json:"assigned_trait"`
	IsNewDiscovery bool   `json:"is_new_discovery"`
	MatchReasoning string `json:"match_reasoning"`
}

// AnalysisResult es la salida completa de un analisis.
// NewTraitDefinitions es lo que el LLM propuso; NewlyAddedTraits es el
// subconjunto que la libreria acepto de verdad (los duplicados se caen).
type AnalysisResult struct {
	AnalysisID          string          `json:"analysis_id"`
	AnalysisLog         []AnalysisEntry `json:"analysis_log"`
	NewTraitDefinitions TraitMap        `json:"new_trait_definitions"`
	NewlyAddedTraits    []string        `json:"_newly_added_traits"`
}

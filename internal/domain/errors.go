package domain

import "errors"

// Errores centinela para que el borde HTTP distinga el tipo de falla
// con errors.Is sin parsear strings.
var (
	// ErrNotConfigured: falta la credencial del LLM; fatal hasta que se configure.
	ErrNotConfigured = errors.New("analysis engine not configured")

	// ErrOracle: la llamada al LLM fallo (red, cuota, auth).
	ErrOracle = errors.New("llm call failed")

	// ErrMalformedResponse: el LLM devolvio texto que no parsea al esquema esperado.
	ErrMalformedResponse = errors.New("malformed llm response")

	// ErrStorage: fallo de lectura/escritura de la libreria de traits.
	ErrStorage = errors.New("trait storage failure")
)

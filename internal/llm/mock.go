package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
// Captura el ultimo prompt y opciones para poder inspeccionarlos.
type MockClient struct {
	Response   string
	Err        error
	LastPrompt string
	LastOpts   Options
	Calls      int
}

func (m *MockClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastOpts = opts
	return m.Response, m.Err
}

package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
// LLM_API_KEY no es required a proposito: el server debe poder arrancar sin
// credencial y recien fallar cuando alguien pide un analisis.
type Config struct {
	HTTPPort         string  `env:"HTTP_PORT" envDefault:"8080"`
	LLMAPIKey        string  `env:"LLM_API_KEY"`
	LLMBaseURL       string  `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel         string  `env:"LLM_MODEL" envDefault:"gpt-5.1"`
	LLMMaxTokens     int     `env:"LLM_MAX_TOKENS" envDefault:"4096"`
	LLMTemperature   float64 `env:"LLM_TEMPERATURE" envDefault:"0.3"`
	TraitLibraryPath string  `env:"TRAIT_LIBRARY_PATH" envDefault:"data/trait_library.json"`
	QuestionsPath    string  `env:"QUESTIONS_PATH" envDefault:"felix_questions.json"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	AnalyzeRateWindowMinutes int `env:"ANALYZE_RATE_WINDOW_MINUTES" envDefault:"1"`
	AnalyzeRateMax           int `env:"ANALYZE_RATE_MAX" envDefault:"6"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"felix-lab/internal/config"
	apihttp "felix-lab/internal/http"
	"felix-lab/internal/service"
	"felix-lab/internal/store"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	traitStore := store.NewTraitStore(cfg.TraitLibraryPath, logger)
	if err := traitStore.Load(); err != nil {
		logger.Fatal("trait library load", zap.Error(err))
	}

	// El motor se inicializa lazy: el server levanta sin LLM_API_KEY y la
	// falta de credencial se reporta recien al primer analisis.
	engines := service.NewEngineProvider(cfg, traitStore, logger)

	var limiter service.AnalyzeRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisAnalyzeRateLimiter(
				redisClient,
				time.Duration(cfg.AnalyzeRateWindowMinutes)*time.Minute,
				cfg.AnalyzeRateMax,
			)
		}
		cancel()
	}

	brainHandler := apihttp.NewBrainHandler(logger, traitStore, cfg.QuestionsPath)
	analyzeHandler := apihttp.NewAnalyzeHandler(logger, engines, limiter)
	router := apihttp.NewRouter(logger, brainHandler, analyzeHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("trait_library", cfg.TraitLibraryPath))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

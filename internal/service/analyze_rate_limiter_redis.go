package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyzeRateLimiter limita cuantos analisis puede disparar un mismo cliente
// en una ventana de tiempo. Cada analisis es una llamada LLM lenta y paga.
type AnalyzeRateLimiter interface {
	Allow(key string) bool
}

const redisAnalyzeAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisAnalyzeRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisAnalyzeRateLimiter crea el limiter sobre Redis. Ante errores de
// Redis abre el paso (fail-open): perder throttling es mejor que tirar
// el servicio entero.
func NewRedisAnalyzeRateLimiter(client *redis.Client, window time.Duration, max int) AnalyzeRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisAnalyzeRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "analyze:rl:",
	}
}

func (l *redisAnalyzeRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisAnalyzeAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

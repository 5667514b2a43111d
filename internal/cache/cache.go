package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const defaultTTL = 5 * time.Minute

// Cache guarda o payload da página pública de agendamento por slug.
// Sem Redis configurado todas as operações viram no-op e as leituras
// vão direto ao banco.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func New(redisURL string, log zerolog.Logger) *Cache {
	if redisURL == "" {
		return &Cache{log: log}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, cache disabled")
		return &Cache{log: log}
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: defaultTTL,
		log: log,
	}
}

// NewWithClient injeta um cliente pronto (testes usam miniredis).
func NewWithClient(rdb *redis.Client, log zerolog.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: defaultTTL, log: log}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func BookingPageKey(slug string) string {
	return "public:page:" + slug
}

// GetJSON carrega e decodifica a chave; retorna false em miss ou erro.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

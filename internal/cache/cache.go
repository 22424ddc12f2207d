package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/consult-scheduler/internal/config"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

const (
	feedKey = "consultants:feed"
	feedTTL = 60 * time.Second
)

// ConsultantCache guarda a vitrine padrão de consultores verificados.
// Qualquer falha do Redis degrada para leitura no banco — cache nunca
// derruba uma requisição.
type ConsultantCache struct {
	client *redis.Client
}

func NewConsultantCache(cfg *config.Config) *ConsultantCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, consultant feed cache disabled: %v", err)
		return nil
	}

	return &ConsultantCache{client: client}
}

func (c *ConsultantCache) GetFeed(ctx context.Context) ([]models.Consultant, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, false
	}

	var feed []models.Consultant
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, false
	}

	return feed, true
}

func (c *ConsultantCache) SetFeed(ctx context.Context, feed []models.Consultant) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, feedKey, raw, feedTTL).Err(); err != nil {
		log.Printf("failed to cache consultant feed: %v", err)
	}
}

func (c *ConsultantCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		log.Printf("failed to invalidate consultant feed: %v", err)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-saas/internal/config"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

const shopTTL = 5 * time.Minute

// Cache guarda a barbearia por slug para a página pública de agendamento.
// Sem REDIS_URL configurada vira no-op e tudo vai direto ao banco.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	if cfg.RedisURL == "" {
		return &Cache{}
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return &Cache{}
	}

	return &Cache{rdb: redis.NewClient(opt)}
}

func shopKey(slug string) string {
	return "shop:slug:" + slug
}

func (c *Cache) GetShop(ctx context.Context, slug string) (*models.Barbershop, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, shopKey(slug)).Result()
	if err != nil {
		return nil, false
	}

	var shop models.Barbershop
	if err := json.Unmarshal([]byte(raw), &shop); err != nil {
		return nil, false
	}
	return &shop, true
}

func (c *Cache) SetShop(ctx context.Context, shop *models.Barbershop) {
	if c.rdb == nil || shop == nil {
		return
	}

	b, err := json.Marshal(shop)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, shopKey(shop.Slug), b, shopTTL)
}

func (c *Cache) InvalidateShop(ctx context.Context, slug string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, shopKey(slug))
}

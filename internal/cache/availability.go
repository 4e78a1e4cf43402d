package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/StudioNavalha/agenda-api/internal/config"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// TTL curto: a invalidação explícita nas mutações é o mecanismo principal,
// o TTL só cobre escrita concorrente fora da API.
const availabilityTTL = 2 * time.Minute

func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// Cache é otimização: sem redis a API segue funcionando,
		// recalculando a cada chamada.
		logrus.Warnf("redis unavailable, availability cache disabled: %v", err)
		return nil
	}

	logrus.Info("redis connected")
	return client
}

// AvailabilityCache guarda a grade de slots livres de um barbeiro por dia.
// client nil desliga o cache por completo (todas as operações viram no-op).
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func slotsKey(barberID uint, date string, durMin int) string {
	return fmt.Sprintf("availability:%d:%s:%d", barberID, date, durMin)
}

func (c *AvailabilityCache) GetSlots(
	ctx context.Context,
	barberID uint,
	date string,
	durMin int,
) ([]schedule.TimeSlot, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, slotsKey(barberID, date, durMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) SetSlots(
	ctx context.Context,
	barberID uint,
	date string,
	durMin int,
	slots []schedule.TimeSlot,
) {

	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, slotsKey(barberID, date, durMin), raw, availabilityTTL).Err(); err != nil {
		logrus.Warnf("availability cache set failed: %v", err)
	}
}

// InvalidateBarberDay derruba todas as grades cacheadas do barbeiro naquele
// dia (qualquer duração de serviço). Chamado após criar, cancelar, concluir
// ou reagendar um horário, e após mexer em bloqueios.
func (c *AvailabilityCache) InvalidateBarberDay(ctx context.Context, barberID uint, date string) {
	c.deleteByPattern(ctx, fmt.Sprintf("availability:%d:%s:*", barberID, date))
}

// InvalidateBarber derruba todos os dias cacheados do barbeiro. Usado quando
// o expediente semanal muda e não há um único dia afetado.
func (c *AvailabilityCache) InvalidateBarber(ctx context.Context, barberID uint) {
	c.deleteByPattern(ctx, fmt.Sprintf("availability:%d:*", barberID))
}

func (c *AvailabilityCache) deleteByPattern(ctx context.Context, pattern string) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, pattern, 50).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logrus.Warnf("availability cache invalidation failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		logrus.Warnf("availability cache scan failed: %v", err)
	}
}

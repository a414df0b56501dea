package redisfeed

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/config"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/types"
)

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(cfg *config.Config) *Publisher {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
	})
	return &Publisher{rdb: rdb}
}

// UpsertQuote пишет последнюю котировку в HASH quote:last:<SYMBOL>
// и обновляет индекс активных символов. Истории нет — только last value.
func (p *Publisher) UpsertQuote(ctx context.Context, q types.Quote) error {
	key := "quote:last:" + q.Symbol
	if err := p.rdb.HSet(ctx, key, map[string]interface{}{
		"symbol":  q.Symbol,
		"bid":     q.Bid,
		"bid_qty": q.BidQty,
		"ask":     q.Ask,
		"ask_qty": q.AskQty,
		"ts_ms":   q.TsMs,
	}).Err(); err != nil {
		return err
	}
	return p.rdb.ZAdd(ctx, "quote:active", redis.Z{
		Score: float64(q.TsMs), Member: q.Symbol,
	}).Err()
}

// internal/feed/random_walk.go
package feed

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"go-price-particles/internal/utils"
)

var (
	minPrice = decimal.NewFromFloat(0.01)
	hundred  = decimal.NewFromInt(100)
)

// RandomWalk — синтетический источник: случайное блуждание с редкими скачками.
type RandomWalk struct {
	Symbol      string
	Price       decimal.Decimal
	Volatility  float64 // проценты на шаг
	SpikeChance float64
	Interval    time.Duration
	rng         utils.Random
}

// NewRandomWalk создаёт генератор котировок.
func NewRandomWalk(symbol string, start decimal.Decimal, volatility, spikeChance float64, interval time.Duration, rng utils.Random) *RandomWalk {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if start.LessThan(minPrice) {
		start = decimal.NewFromInt(100)
	}
	return &RandomWalk{
		Symbol:      symbol,
		Price:       start,
		Volatility:  volatility,
		SpikeChance: spikeChance,
		Interval:    interval,
		rng:         rng,
	}
}

// Next делает один шаг блуждания и возвращает новую цену.
func (w *RandomWalk) Next() decimal.Decimal {
	pct := utils.Spread(w.rng, w.Volatility)
	if w.rng.Float64() < w.SpikeChance {
		pct *= utils.RangeF(w.rng, 8, 16)
	}
	factor := decimal.NewFromFloat(pct).Div(hundred).Add(decimal.NewFromInt(1))
	next := w.Price.Mul(factor).Round(2)
	if next.LessThan(minPrice) {
		next = minPrice
	}
	w.Price = next
	return next
}

// Run отправляет котировки с интервалом Interval до отмены ctx.
func (w *RandomWalk) Run(ctx context.Context, out chan<- Quote) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	if !send(ctx, out, Quote{Symbol: w.Symbol, Price: w.Price, Time: time.Now()}) {
		return ctx.Err()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !send(ctx, out, Quote{Symbol: w.Symbol, Price: w.Next(), Time: now}) {
				return ctx.Err()
			}
		}
	}
}

func send(ctx context.Context, out chan<- Quote, q Quote) bool {
	select {
	case out <- q:
		return true
	case <-ctx.Done():
		return false
	}
}

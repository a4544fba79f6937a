// internal/feed/feed.go
package feed

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"go-price-particles/internal/config"
	"go-price-particles/internal/event"
	"go-price-particles/internal/utils"
)

const (
	ProviderRandom  = "random"
	ProviderBinance = "binance"
)

var (
	// ErrNoSymbol — источнику не задан инструмент.
	ErrNoSymbol = errors.New("feed requires a symbol")
	// ErrUnknownProvider — неизвестное имя источника.
	ErrUnknownProvider = errors.New("unknown feed provider")
)

// Quote — одна котировка инструмента.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
	Time   time.Time
}

// Source — поток котировок. Run блокируется до отмены ctx или фатальной ошибки.
type Source interface {
	Run(ctx context.Context, out chan<- Quote) error
}

// New создаёт источник по настройкам.
func New(s config.FeedSettings, seed int64) (Source, error) {
	if strings.TrimSpace(s.Symbol) == "" {
		return nil, ErrNoSymbol
	}
	switch strings.ToLower(s.Provider) {
	case "", ProviderRandom:
		start, err := decimal.NewFromString(s.StartPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "parse start price %q", s.StartPrice)
		}
		return NewRandomWalk(s.Symbol, start, s.Volatility, s.SpikeChance, s.Interval, utils.NewPRNGService(seed)), nil
	case ProviderBinance:
		return NewBinance(s.URL, s.Symbol), nil
	}
	return nil, errors.Wrap(ErrUnknownProvider, s.Provider)
}

// Tracker превращает котировки в пары (предыдущая, текущая) по каждому инструменту.
type Tracker struct {
	last map[string]decimal.Decimal
}

// NewTracker создаёт пустой трекер.
func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]decimal.Decimal)}
}

// Observe запоминает котировку. Первая котировка инструмента пары не даёт.
func (t *Tracker) Observe(q Quote) (event.PricePair, bool) {
	prev, ok := t.last[q.Symbol]
	t.last[q.Symbol] = q.Price
	if !ok {
		return event.PricePair{}, false
	}
	return event.PricePair{Symbol: q.Symbol, Previous: prev, Current: q.Price}, true
}

// Drain неблокирующе вычитывает все накопленные котировки и вызывает fn для каждой пары.
// Вызывается из кадра хоста, чтобы движок оставался однопоточным.
func (t *Tracker) Drain(in <-chan Quote, fn func(pair event.PricePair)) int {
	n := 0
	for {
		select {
		case q, ok := <-in:
			if !ok {
				return n
			}
			if pair, ok := t.Observe(q); ok {
				fn(pair)
				n++
			}
		default:
			return n
		}
	}
}

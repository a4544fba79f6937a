// internal/feed/binance.go
package feed

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-price-particles/internal/logger"
)

const (
	binanceReadTimeout  = 30 * time.Second
	binancePingInterval = 15 * time.Second
	binanceMinBackoff   = time.Second
	binanceMaxBackoff   = 30 * time.Second
	binanceBackoffGrow  = 1.8
)

type binanceEnvelope struct {
	Stream string       `json:"stream"`
	Data   binanceTrade `json:"data"`
}

type binanceTrade struct {
	TradeID   int64  `json:"t"`
	Price     string `json:"p"`
	TradeTime int64  `json:"T"`
}

// Binance — поток сделок Binance через websocket с переподключением.
type Binance struct {
	URL    string
	Symbol string
	dialer websocket.Dialer
	log    *logrus.Entry

	minBackoff time.Duration
	maxBackoff time.Duration
}

// NewBinance создаёт источник для одного инструмента.
func NewBinance(baseURL, symbol string) *Binance {
	return &Binance{
		URL:    baseURL,
		Symbol: strings.ToUpper(symbol),
		dialer: websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		log:    logger.WithComponent("feed.binance"),

		minBackoff: binanceMinBackoff,
		maxBackoff: binanceMaxBackoff,
	}
}

// StreamURL возвращает адрес комбинированного потока сделок.
func (b *Binance) StreamURL() string {
	return b.URL + "?streams=" + strings.ToLower(b.Symbol) + "@trade"
}

// Run читает поток до отмены ctx, переподключаясь с растущей задержкой.
func (b *Binance) Run(ctx context.Context, out chan<- Quote) error {
	backoff := b.minBackoff
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		delivered, err := b.consume(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait := b.retryDelay(backoff, delivered)
		b.log.WithError(err).WithFields(logrus.Fields{
			"retry_in":  wait,
			"delivered": delivered,
		}).Warn("binance feed disconnected")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff = b.grow(wait)
	}
}

// retryDelay возвращает паузу перед переподключением.
// Сессия, отдавшая хотя бы одну котировку, сбрасывает задержку к минимальной.
func (b *Binance) retryDelay(backoff time.Duration, delivered int) time.Duration {
	if delivered > 0 || backoff < b.minBackoff {
		return b.minBackoff
	}
	return backoff
}

func (b *Binance) grow(backoff time.Duration) time.Duration {
	return time.Duration(math.Min(float64(b.maxBackoff), float64(backoff)*binanceBackoffGrow))
}

// consume обслуживает одно соединение и возвращает число отданных котировок.
func (b *Binance) consume(ctx context.Context, out chan<- Quote) (int, error) {
	conn, _, err := b.dialer.DialContext(ctx, b.StreamURL(), nil)
	if err != nil {
		return 0, errors.Wrap(err, "dial binance")
	}
	defer conn.Close()
	b.log.WithField("symbol", b.Symbol).Info("connected market data feed")

	conn.SetReadLimit(1 << 20)
	conn.SetReadDeadline(time.Now().Add(binanceReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(binanceReadTimeout))
	})

	pingCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ticker := time.NewTicker(binancePingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deadline := time.Now().Add(5 * time.Second)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					b.log.WithError(err).Debug("binance ping failed")
					return
				}
			case <-pingCtx.Done():
				return
			}
		}
	}()

	// Закрываем соединение при отмене, чтобы разблокировать ReadMessage
	go func() {
		<-pingCtx.Done()
		conn.Close()
	}()

	delivered := 0
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return delivered, errors.Wrap(err, "read binance")
		}
		q, err := ParseBinanceTrade(message)
		if err != nil {
			b.log.WithError(err).Debug("skip binance message")
			continue
		}
		if !send(ctx, out, q) {
			return delivered, ctx.Err()
		}
		delivered++
	}
}

// ParseBinanceTrade разбирает сообщение комбинированного потока сделок.
func ParseBinanceTrade(message []byte) (Quote, error) {
	var env binanceEnvelope
	if err := json.Unmarshal(message, &env); err != nil {
		return Quote{}, errors.Wrap(err, "decode binance message")
	}
	price, err := decimal.NewFromString(env.Data.Price)
	if err != nil {
		return Quote{}, errors.Wrapf(err, "parse price %q", env.Data.Price)
	}
	symbol := env.Stream
	if i := strings.IndexByte(symbol, '@'); i >= 0 {
		symbol = symbol[:i]
	}
	ts := time.Now()
	if env.Data.TradeTime > 0 {
		ts = time.UnixMilli(env.Data.TradeTime)
	}
	return Quote{Symbol: strings.ToUpper(symbol), Price: price, Time: ts}, nil
}

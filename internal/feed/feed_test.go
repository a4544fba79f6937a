// internal/feed/feed_test.go
package feed

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-price-particles/internal/config"
	"go-price-particles/internal/event"
)

func q(symbol, price string) Quote {
	return Quote{Symbol: symbol, Price: decimal.RequireFromString(price)}
}

func TestTrackerPairsPerSymbol(t *testing.T) {
	tr := NewTracker()

	_, ok := tr.Observe(q("BTC", "100"))
	assert.False(t, ok)
	_, ok = tr.Observe(q("ETH", "10"))
	assert.False(t, ok)

	pair, ok := tr.Observe(q("BTC", "105"))
	require.True(t, ok)
	assert.Equal(t, "BTC", pair.Symbol)
	assert.True(t, pair.Previous.Equal(decimal.NewFromInt(100)))
	assert.True(t, pair.Current.Equal(decimal.NewFromInt(105)))

	pair, ok = tr.Observe(q("ETH", "11"))
	require.True(t, ok)
	assert.True(t, pair.Previous.Equal(decimal.NewFromInt(10)))
}

func TestTrackerDrainIsNonBlocking(t *testing.T) {
	tr := NewTracker()
	in := make(chan Quote, 4)
	in <- q("BTC", "1")
	in <- q("BTC", "2")
	in <- q("BTC", "3")

	var pairs []event.PricePair
	n := tr.Drain(in, func(p event.PricePair) { pairs = append(pairs, p) })
	assert.Equal(t, 2, n)
	require.Len(t, pairs, 2)
	assert.True(t, pairs[1].Previous.Equal(decimal.NewFromInt(2)))

	assert.Zero(t, tr.Drain(in, func(event.PricePair) { t.Fatal("unexpected pair") }))

	close(in)
	assert.Zero(t, tr.Drain(in, func(event.PricePair) {}))
}

func TestNew(t *testing.T) {
	s := config.Default().Feed

	src, err := New(s, 1)
	require.NoError(t, err)
	assert.IsType(t, &RandomWalk{}, src)

	s.Provider = "BINANCE"
	src, err = New(s, 1)
	require.NoError(t, err)
	b, ok := src.(*Binance)
	require.True(t, ok)
	assert.Equal(t, "wss://stream.binance.com:9443/stream?streams=btcusdt@trade", b.StreamURL())

	s.Provider = "ticker-tape"
	_, err = New(s, 1)
	assert.ErrorIs(t, err, ErrUnknownProvider)

	s.Provider = ProviderRandom
	s.Symbol = "  "
	_, err = New(s, 1)
	assert.ErrorIs(t, err, ErrNoSymbol)

	s.Symbol = "BTCUSDT"
	s.StartPrice = "a lot"
	_, err = New(s, 1)
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	w := NewRandomWalk("BTC", decimal.NewFromInt(100), 1, 0, 5*time.Millisecond, stepRandom{f: 0.75})
	out := make(chan Quote)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, out) }()

	first := <-out
	assert.True(t, first.Price.Equal(decimal.NewFromInt(100)))
	second := <-out
	assert.Equal(t, "BTC", second.Symbol)
	assert.True(t, second.Price.Equal(decimal.RequireFromString("100.50")))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("random walk did not stop")
	}
}

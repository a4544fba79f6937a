// internal/signal/signal.go
package signal

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Signal — знаковое изменение цены в процентах.
type Signal struct {
	PercentChange float64
	Magnitude     float64 // |PercentChange|
	IsPositive    bool
}

// Interpret переводит пару цен в сигнал.
// Если одна из цен равна нулю или цена не изменилась, сигнала нет.
func Interpret(previous, current decimal.Decimal) (Signal, bool) {
	if previous.IsZero() || current.IsZero() {
		return Signal{}, false
	}
	change := current.Sub(previous).Div(previous).Mul(hundred)
	if change.IsZero() {
		return Signal{}, false
	}
	pct := change.InexactFloat64()
	return Signal{
		PercentChange: pct,
		Magnitude:     change.Abs().InexactFloat64(),
		IsPositive:    change.IsPositive(),
	}, true
}

// FromFloats — вариант Interpret для хостов без decimal.
func FromFloats(previous, current float64) (Signal, bool) {
	return Interpret(decimal.NewFromFloat(previous), decimal.NewFromFloat(current))
}

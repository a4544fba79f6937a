// internal/app/status.go
package app

import (
	"fmt"

	"github.com/shopspring/decimal"

	"go-price-particles/internal/component"
	"go-price-particles/internal/event"
)

var hundred = decimal.NewFromInt(100)

// StatusLines формирует строки панели статуса
func StatusLines(pair event.PricePair, hasPrice bool, mode component.EmissionMode, intensity float64, stats Stats) []string {
	price := "—"
	change := ""
	if hasPrice {
		price = pair.Current.StringFixed(2)
		if !pair.Previous.IsZero() {
			pct := pair.Current.Sub(pair.Previous).Div(pair.Previous).Mul(hundred)
			change = fmt.Sprintf(" (%+.2f%%)", pct.InexactFloat64())
		}
	}
	return []string{
		fmt.Sprintf("%s %s%s", pair.Symbol, price, change),
		fmt.Sprintf("mode: %s  intensity: %.2f", mode, intensity),
		fmt.Sprintf("live: %d  emitted: %d  warnings: %d", stats.Live, stats.Emitted, stats.WarningsEmitted),
		fmt.Sprintf("expired: %d  culled: %d  cleared: %d", stats.Expired, stats.Culled, stats.Cleared),
		"[space] on/off  [m] mode  [+/-] intensity  [c] drop visuals",
	}
}


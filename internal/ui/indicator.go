// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-price-particles/internal/config"
)

var panelColor = color.RGBA{0, 0, 0, 120}

// StatusIndicator — индикатор состояния движка и панель с цифрами
type StatusIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	face          font.Face
}

func NewStatusIndicator(x, y, radius float32) *StatusIndicator {
	return &StatusIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		face:   basicfont.Face7x13,
	}
}

// Draw отрисовывает индикатор и строки статуса
func (i *StatusIndicator) Draw(screen *ebiten.Image, active bool, lines []string) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	stateColor := config.InactiveColor
	if active {
		stateColor = config.ActiveColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.IndicatorStroke, true)

	if len(lines) > 0 {
		h := float32(len(lines)*config.HUDLineHeight + config.HUDLineHeight/2)
		vector.DrawFilledRect(screen, 0, config.IndicatorOffsetX-config.HUDLineHeight, 360, h, panelColor, false)
	}
	for n, line := range lines {
		text.Draw(screen, line, i.face, config.IndicatorOffsetX/2, config.IndicatorOffsetX+n*config.HUDLineHeight, config.TextLightColor)
	}
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StatusIndicator) IsClicked(x, y int) bool {
	dx := float64(x) - float64(i.X)
	dy := float64(y) - float64(i.Y)
	return dx*dx+dy*dy <= float64(i.Radius*i.Radius)
}

// HandleClick запускает анимацию нажатия
func (i *StatusIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

// pkg/render/visual_test.go
package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-price-particles/internal/app"
	"go-price-particles/internal/component"
)

var _ app.Sink = (*Visuals)(nil)

func TestNewVisual(t *testing.T) {
	circle := NewVisual(component.Shape{Kind: component.ShapeCircle, Radius: 2})
	require.Len(t, circle.Rim, CircleSegments)
	assert.InDelta(t, 2, math.Hypot(circle.Rim[3][0], circle.Rim[3][1]), 1e-12)

	tri := NewVisual(component.Shape{
		Kind:   component.ShapeTriangle,
		Points: []component.Vec2{{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
		Radius: 1,
	})
	assert.Equal(t, [][2]float64{{0, -1}, {1, 1}, {-1, 1}}, tri.Rim)
}

func TestVisualsFollowEngine(t *testing.T) {
	v := NewVisuals()
	e := app.NewEngine(app.Options{Sink: &v})
	require.NoError(t, e.SetActive(true))
	_, ok := e.OnPriceUpdate(decimal.NewFromInt(100), decimal.NewFromInt(112))
	require.True(t, ok)
	assert.Equal(t, e.Len(), v.Len())

	var first component.Particle
	e.Each(func(p *component.Particle) {
		if first.ID == 0 {
			first = *p
		}
	})
	_, ok = v.Get(first.ID)
	assert.True(t, ok)

	// Хост сам очищает сцену: движок видит устаревшие дескрипторы
	live := v.Len()
	v.Reset()
	require.NoError(t, e.SetActive(false))
	assert.Equal(t, live, e.Stats().StaleHandles)
	assert.Zero(t, v.Len())
	assert.False(t, v.Detach(first.ID))
}

func TestFadeAndDarken(t *testing.T) {
	c := color.RGBA{200, 100, 50, 200}
	assert.Equal(t, color.NRGBA{200, 100, 50, 100}, Fade(c, 0.5))
	assert.Equal(t, uint8(200), Fade(c, 3).A)
	assert.Equal(t, uint8(0), Fade(c, -1).A)
	assert.Equal(t, color.RGBA{100, 50, 25, 200}, DarkenColor(c))

	r, g, b, a := Channels(color.RGBA{255, 0, 51, 255}, 1)
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), g)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.Equal(t, float32(1), a)
}

// internal/system/emission_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-price-particles/internal/component"
	"go-price-particles/internal/entity"
	"go-price-particles/internal/signal"
	"go-price-particles/internal/utils"
)

func newEmission(rng utils.Random) (*EmissionSystem, *entity.Store, *int) {
	store := entity.NewStore(64)
	spawned := 0
	sys := NewEmissionSystem(store, rng, func(p *component.Particle) {
		spawned++
	})
	return sys, store, &spawned
}

func withMode(m component.EmissionMode) EmissionSettings {
	cfg := DefaultEmissionSettings()
	cfg.Mode = m
	return cfg
}

func TestBaseCount(t *testing.T) {
	cases := []struct {
		name      string
		magnitude float64
		intensity float64
		rate      float64
		want      int
	}{
		{"scenario", 12, 1, 1, 30},
		{"one percent", 1, 1, 1, 15},
		{"floor", 0.5, 1, 1, 7},
		{"half intensity", 2, 0.5, 1, 15},
		{"zero", 0, 1, 1, 0},
		{"spike", 10000, 1, 1, 30},
		{"zero rate", 5, 1, 0, 0},
		{"nan", math.NaN(), 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BaseCount(c.magnitude, c.intensity, c.rate, 30))
		})
	}
}

func TestEmitNeverExceedsCap(t *testing.T) {
	rng := utils.NewPRNGService(7)
	for _, mode := range component.Modes {
		limit := 30
		if mode == component.ModeExplosion {
			limit = 60
		}
		for _, mag := range []float64{0.01, 0.5, 2, 9.9, 10, 50, 10000} {
			for _, k := range []float64{0.1, 0.5, 1} {
				sys, _, _ := newEmission(rng)
				cfg := withMode(mode)
				cfg.Intensity, cfg.EmissionRate = k, k
				r := sys.Emit(signal.Signal{Magnitude: mag, IsPositive: true}, cfg, viewport)
				assert.LessOrEqual(t, r.Spawned, limit, "mode=%s mag=%v k=%v", mode, mag, k)
			}
		}
	}
}

func TestWarningThreshold(t *testing.T) {
	for _, mode := range component.Modes {
		sys, store, _ := newEmission(utils.NewPRNGService(1))
		r := sys.Emit(signal.Signal{Magnitude: 10, IsPositive: false}, withMode(mode), viewport)
		assert.Equal(t, 0, r.Warnings, mode.String())
		assert.Zero(t, countCategory(collect(store), component.CategoryWarning))

		sys, store, _ = newEmission(utils.NewPRNGService(1))
		r = sys.Emit(signal.Signal{Magnitude: 10.5, IsPositive: false}, withMode(mode), viewport)
		assert.Equal(t, 3, r.Warnings, mode.String())
		assert.Equal(t, 3, countCategory(collect(store), component.CategoryWarning))
	}
}

func TestEmitMixedScenario(t *testing.T) {
	sys, store, spawned := newEmission(utils.NewPRNGService(42))
	r := sys.Emit(signal.Signal{PercentChange: 12, Magnitude: 12, IsPositive: true}, withMode(component.ModeMixed), viewport)

	assert.Equal(t, 30, r.BaseCount)
	assert.Equal(t, 30, r.Spawned)
	assert.Equal(t, 3, r.Warnings)
	assert.Equal(t, 33, r.Total())
	assert.Equal(t, 33, *spawned)

	ps := collect(store)
	require.Len(t, ps, 33)
	assert.Equal(t, 30, countCategory(ps, component.CategoryStandard))
	assert.Equal(t, 3, countCategory(ps, component.CategoryWarning))
	for _, p := range ps {
		assert.True(t, p.IsPositive)
		assert.Equal(t, 1.0, p.Life)
		assert.Equal(t, 1.0, p.Scale)
		assert.GreaterOrEqual(t, p.Position.X, 0.0)
		assert.Less(t, p.Position.X, viewport.X)
		assert.GreaterOrEqual(t, p.Position.Y, 0.0)
		assert.Less(t, p.Position.Y, viewport.Y)
		if p.Category == component.CategoryWarning {
			assert.InDelta(t, 2*3+1.2, p.MaxLife, 1e-9)
			assert.Equal(t, 0.1, p.ScaleSpeed)
			assert.Equal(t, component.ShapeTriangle, p.Look.Shape.Kind)
		} else {
			assert.InDelta(t, 3+1.2, p.MaxLife, 1e-9)
			assert.InDelta(t, -0.3-0.6, p.ScaleSpeed, 1e-9)
			assert.Contains(t, component.StandardShapes, p.Look.Shape.Kind)
		}
	}
}

func TestEmitBurstRing(t *testing.T) {
	sys, store, _ := newEmission(utils.NewPRNGService(3))
	r := sys.Emit(signal.Signal{Magnitude: 2, IsPositive: true}, withMode(component.ModeBurst), viewport)
	require.Equal(t, 30, r.Spawned)
	assert.Zero(t, r.Warnings)

	for _, p := range collect(store) {
		assert.Equal(t, component.CategoryBurst, p.Category)
		assert.Equal(t, viewport.Scale(0.5), p.Position)
		speed := math.Hypot(p.Velocity.X, p.Velocity.Y)
		assert.InDelta(t, 80+2*5, speed, 1e-9)
		assert.Equal(t, component.ShapeStarBurst, p.Look.Shape.Kind)
	}
}

func TestEmitStreamDirection(t *testing.T) {
	rng := fixedRandom{f: 0.5}

	sys, store, _ := newEmission(rng)
	r := sys.Emit(signal.Signal{Magnitude: 2, IsPositive: true}, withMode(component.ModeStream), viewport)
	require.Equal(t, 10, r.Spawned)
	for _, p := range collect(store) {
		assert.Equal(t, component.CategoryStream, p.Category)
		assert.Equal(t, viewport.Y, p.Position.Y)
		assert.InDelta(t, -(120 + 2*3.0), p.Velocity.Y, 1e-9)
		assert.InDelta(t, 0, p.Velocity.X, 1e-9)
	}

	sys, store, _ = newEmission(rng)
	sys.Emit(signal.Signal{Magnitude: 2, IsPositive: false}, withMode(component.ModeStream), viewport)
	for _, p := range collect(store) {
		assert.Equal(t, 0.0, p.Position.Y)
		assert.InDelta(t, 120+2*3.0, p.Velocity.Y, 1e-9)
	}
}

func TestEmitExplosionDoubles(t *testing.T) {
	sys, store, _ := newEmission(utils.NewPRNGService(9))
	r := sys.Emit(signal.Signal{Magnitude: 1, IsPositive: false}, withMode(component.ModeExplosion), viewport)
	assert.Equal(t, 15, r.BaseCount)
	require.Equal(t, 30, r.Spawned)

	center := viewport.Scale(0.5)
	for _, p := range collect(store) {
		assert.Equal(t, component.CategoryExplosion, p.Category)
		assert.LessOrEqual(t, math.Abs(p.Position.X-center.X), 20.0)
		assert.LessOrEqual(t, math.Abs(p.Position.Y-center.Y), 20.0)
		speed := math.Hypot(p.Velocity.X, p.Velocity.Y)
		assert.GreaterOrEqual(t, speed, 150.0-1e-9)
		assert.Less(t, speed, 160.0)
		n := len(p.Look.Shape.Points)
		assert.True(t, n >= 5 && n <= 7, "shard vertices %d", n)
	}
}

func TestEmitZeroIntensityOnlyWarnings(t *testing.T) {
	sys, store, _ := newEmission(utils.NewPRNGService(5))
	cfg := withMode(component.ModeBurst)
	cfg.Intensity = 0
	r := sys.Emit(signal.Signal{Magnitude: 20, IsPositive: true}, cfg, viewport)
	assert.Zero(t, r.Spawned)
	assert.Equal(t, 3, r.Warnings)
	assert.Equal(t, 3, store.Len())
}

func TestSpawnRotationRanges(t *testing.T) {
	sys, store, _ := newEmission(utils.NewPRNGService(11))
	sys.Emit(signal.Signal{Magnitude: 4, IsPositive: true}, withMode(component.ModeMixed), viewport)
	for _, p := range collect(store) {
		assert.GreaterOrEqual(t, p.Rotation, 0.0)
		assert.Less(t, p.Rotation, 360.0)
		assert.LessOrEqual(t, math.Abs(p.RotationSpeed), 180.0)
	}
}

// internal/utils/utils_test.go
package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsSeeded(t *testing.T) {
	a, b := NewPRNGService(5), NewPRNGService(5)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestRangeAndSpread(t *testing.T) {
	r := NewPRNGService(3)
	for i := 0; i < 200; i++ {
		v := RangeF(r, 2, 4)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 4.0)
		s := Spread(r, 5)
		assert.GreaterOrEqual(t, s, -5.0)
		assert.Less(t, s, 5.0)
	}
}

func TestMath(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.InDelta(t, 350, NormalizeDegrees(-10), 1e-12)
	assert.InDelta(t, 10, NormalizeDegrees(730), 1e-12)
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
}

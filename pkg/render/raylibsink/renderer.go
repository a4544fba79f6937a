// pkg/render/raylibsink/renderer.go
package raylibsink

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-price-particles/internal/component"
	"go-price-particles/pkg/render"
	"go-price-particles/pkg/utils"
)

// RaylibRenderer draws particle sprites with raylib and implements app.Sink.
type RaylibRenderer struct {
	render.Visuals
	fan []rl.Vector2
}

// NewRaylibRenderer creates an empty renderer.
func NewRaylibRenderer() *RaylibRenderer {
	return &RaylibRenderer{
		Visuals: render.NewVisuals(),
		fan:     make([]rl.Vector2, 0, 32),
	}
}

// Draw renders sprites; it must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *RaylibRenderer) Draw(sprites []component.Sprite) {
	for i := range sprites {
		s := &sprites[i]
		v, ok := r.Get(s.ID)
		if !ok || s.Opacity <= 0 {
			continue
		}
		scale := s.Size * s.Scale
		if s.Glow != nil {
			alpha := s.Opacity * s.Glow.Opacity * math.Min(1, s.Glow.Intensity)
			inner := rl.Fade(s.Glow.Color, float32(alpha))
			outer := rl.Fade(s.Glow.Color, 0)
			rl.DrawCircleGradient(int32(s.X), int32(s.Y), float32(scale+s.Glow.BlurRadius), inner, outer)
		}
		r.drawFill(s, v, scale)
		if s.Fill.StrokeWidth > 0 {
			r.drawStroke(s, v, scale)
		}
	}
}

// drawFill approximates the radial gradient with a darker outer fan and a brighter inner one.
func (r *RaylibRenderer) drawFill(s *component.Sprite, v *render.Visual, scale float64) {
	outer := rl.Fade(render.DarkenColor(s.Fill.Center), float32(s.Opacity*0.6))
	if s.Fill.Edge == s.Fill.Center {
		outer = rl.Fade(s.Fill.Center, float32(s.Opacity))
	}
	rl.DrawTriangleFan(r.buildFan(s, v, scale), outer)
	inner := rl.Fade(s.Fill.Center, float32(s.Opacity))
	rl.DrawTriangleFan(r.buildFan(s, v, scale*0.5), inner)
}

// buildFan returns center + rim in counter-clockwise order, closed.
func (r *RaylibRenderer) buildFan(s *component.Sprite, v *render.Visual, scale float64) []rl.Vector2 {
	r.fan = r.fan[:0]
	r.fan = append(r.fan, rl.NewVector2(float32(s.X), float32(s.Y)))
	for i := len(v.Rim) - 1; i >= 0; i-- {
		x, y := utils.Transform(v.Rim[i][0], v.Rim[i][1], s.X, s.Y, s.Rotation, scale)
		r.fan = append(r.fan, rl.NewVector2(float32(x), float32(y)))
	}
	r.fan = append(r.fan, r.fan[1])
	return r.fan
}

func (r *RaylibRenderer) drawStroke(s *component.Sprite, v *render.Visual, scale float64) {
	col := rl.Fade(s.Fill.Stroke, float32(s.Opacity))
	n := len(v.Rim)
	for i := 0; i < n; i++ {
		ax, ay := utils.Transform(v.Rim[i][0], v.Rim[i][1], s.X, s.Y, s.Rotation, scale)
		bx, by := utils.Transform(v.Rim[(i+1)%n][0], v.Rim[(i+1)%n][1], s.X, s.Y, s.Rotation, scale)
		rl.DrawLineEx(rl.NewVector2(float32(ax), float32(ay)), rl.NewVector2(float32(bx), float32(by)), float32(s.Fill.StrokeWidth), col)
	}
}

// pkg/render/ebitensink/renderer.go
package ebitensink

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-price-particles/internal/component"
	"go-price-particles/pkg/render"
	"go-price-particles/pkg/utils"
)

// glowLayers approximates a blur with concentric translucent discs.
const glowLayers = 3

// EbitenRenderer draws particle sprites with ebiten and implements app.Sink.
type EbitenRenderer struct {
	render.Visuals
	whiteImg *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

// NewEbitenRenderer creates an empty renderer.
func NewEbitenRenderer() *EbitenRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &EbitenRenderer{
		Visuals:  render.NewVisuals(),
		whiteImg: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 192),
		strokeVs: make([]ebiten.Vertex, 0, 64),
		strokeIs: make([]uint16, 0, 192),
	}
}

// Draw renders sprites in order. Sprites without an attached drawable are skipped.
func (r *EbitenRenderer) Draw(screen *ebiten.Image, sprites []component.Sprite) {
	for i := range sprites {
		s := &sprites[i]
		v, ok := r.Get(s.ID)
		if !ok || s.Opacity <= 0 {
			continue
		}
		scale := s.Size * s.Scale
		if s.Glow != nil {
			r.drawGlow(screen, s, scale)
		}
		r.drawFill(screen, s, v, scale)
		if s.Fill.StrokeWidth > 0 {
			r.drawStroke(screen, s, v, scale)
		}
	}
}

func (r *EbitenRenderer) drawGlow(screen *ebiten.Image, s *component.Sprite, scale float64) {
	alpha := s.Opacity * s.Glow.Opacity * math.Min(1, s.Glow.Intensity) / glowLayers
	for layer := glowLayers; layer >= 1; layer-- {
		radius := scale + s.Glow.BlurRadius*float64(layer)/glowLayers
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(radius), render.Fade(s.Glow.Color, alpha), true)
	}
}

// drawFill draws the shape as a triangle fan: opaque center, transparent rim.
func (r *EbitenRenderer) drawFill(screen *ebiten.Image, s *component.Sprite, v *render.Visual, scale float64) {
	r.fillVs = r.fillVs[:0]
	r.fillIs = r.fillIs[:0]

	cr, cg, cb, ca := render.Channels(s.Fill.Center, s.Opacity)
	r.fillVs = append(r.fillVs, ebiten.Vertex{
		DstX: float32(s.X), DstY: float32(s.Y),
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	er, eg, eb, ea := render.Channels(s.Fill.Edge, s.Opacity)
	for _, pt := range v.Rim {
		x, y := utils.Transform(pt[0], pt[1], s.X, s.Y, s.Rotation, scale)
		r.fillVs = append(r.fillVs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: er, ColorG: eg, ColorB: eb, ColorA: ea,
		})
	}
	r.fillIs = utils.FanIndices(r.fillIs, 0, len(v.Rim))

	screen.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *EbitenRenderer) drawStroke(screen *ebiten.Image, s *component.Sprite, v *render.Visual, scale float64) {
	path := vector.Path{}
	for i, pt := range v.Rim {
		x, y := utils.Transform(pt[0], pt[1], s.X, s.Y, s.Rotation, scale)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(s.Fill.StrokeWidth),
	})
	sr, sg, sb, sa := render.Channels(s.Fill.Stroke, s.Opacity)
	for i := range r.strokeVs {
		r.strokeVs[i].SrcX = 1
		r.strokeVs[i].SrcY = 1
		r.strokeVs[i].ColorR = sr
		r.strokeVs[i].ColorG = sg
		r.strokeVs[i].ColorB = sb
		r.strokeVs[i].ColorA = sa
	}
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

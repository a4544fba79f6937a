// pkg/utils/math.go
package utils

import "math"

// Transform rotates a local point by rotationDeg, scales it and moves it to (x, y).
func Transform(px, py, x, y, rotationDeg, scale float64) (float64, float64) {
	sin, cos := math.Sincos(rotationDeg * math.Pi / 180)
	return x + (px*cos-py*sin)*scale, y + (px*sin+py*cos)*scale
}

// CirclePoints returns the rim of a unit circle split into segments points.
func CirclePoints(segments int) [][2]float64 {
	if segments < 3 {
		segments = 3
	}
	pts := make([][2]float64, segments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}
	return pts
}

// FanIndices appends triangle-fan indices for a closed polygon.
// Vertex base is the center, base+1..base+rim are the rim vertices.
func FanIndices(dst []uint16, base, rim int) []uint16 {
	for i := 0; i < rim; i++ {
		next := (i + 1) % rim
		dst = append(dst, uint16(base), uint16(base+1+i), uint16(base+1+next))
	}
	return dst
}

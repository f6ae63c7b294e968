package toast

import "math/rand"

// Point is a position in viewport cells. Fractional while in flight;
// rounded only when blitted.
type Point struct {
	X, Y float64
}

// Viewport is the drawable area in cells.
type Viewport struct {
	W, H int
}

func (v Viewport) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(v.W) && p.Y < float64(v.H)
}

// Path is one flight leg, entry point to exit point.
type Path struct {
	Start, End Point
}

// At interpolates the leg position at progress t.
func (p Path) At(t float64) Point {
	return Point{
		X: p.Start.X + (p.End.X-p.Start.X)*t,
		Y: p.Start.Y + (p.End.Y-p.Start.Y)*t,
	}
}

// GenerateRandomPath draws a fresh leg: entry from the top or left edge
// with equal probability, exit past the opposite corner, randomized
// offsets each time. Deterministic for a given rng state, which is what
// the simulation tests lean on.
func GenerateRandomPath(rng *rand.Rand, vp Viewport, size int) Path {
	w, h, s := float64(vp.W), float64(vp.H), float64(size)

	if rng.Intn(2) == 0 {
		// Top entry: drift down-right, leave past the right edge.
		return Path{
			Start: Point{X: rng.Float64()*(w+2*s) - s, Y: -2 * s},
			End:   Point{X: w + s + rng.Float64()*(w/4), Y: h - rng.Float64()*(h/4)},
		}
	}
	// Left entry: drift down-right, leave past the bottom edge.
	return Path{
		Start: Point{X: -2 * s, Y: rng.Float64() * h},
		End:   Point{X: w - rng.Float64()*(w/4), Y: h + s + rng.Float64()*(h/4)},
	}
}

// Package hexgrid provides axial hex coordinates, tiles, and the battlefield
// map. Uses pointy-top hexes addressed by axial coordinates (q, r).
package hexgrid

import "math"

// AxialCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type AxialCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c AxialCoord) S() int {
	return -c.Q - c.R
}

// NeighborDirections defines the six neighbor offsets in axial coordinates,
// clockwise starting east. The order is fixed: search expansion and tests
// depend on it.
var NeighborDirections = [6]AxialCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates in clockwise order.
func (c AxialCoord) Neighbors() [6]AxialCoord {
	var result [6]AxialCoord
	for i, dir := range NeighborDirections {
		result[i] = AxialCoord{Q: c.Q + dir.Q, R: c.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b AxialCoord) int {
	dq := abs(a.Q - b.Q)
	dqr := abs((a.Q + a.R) - (b.Q + b.R))
	dr := abs(a.R - b.R)
	return (dq + dqr + dr) / 2
}

// ToPixel converts an axial coordinate to the pixel center of its hex for a
// pointy-top layout with the given hex size.
func ToPixel(c AxialCoord, size float64) (x, y float64) {
	x = size * (math.Sqrt(3)*float64(c.Q) + math.Sqrt(3)/2*float64(c.R))
	y = size * (3.0 / 2.0 * float64(c.R))
	return x, y
}

// FromPixel converts a pixel position back to the axial coordinate of the
// containing hex, rounding in cube space.
func FromPixel(x, y, size float64) AxialCoord {
	fq := (math.Sqrt(3)/3*x - 1.0/3.0*y) / size
	fr := (2.0 / 3.0 * y) / size
	return cubeRound(fq, fr)
}

// Round rounds fractional axial coordinates to the nearest hex, useful for
// line drawing between two hexes.
func Round(fq, fr float64) AxialCoord {
	return cubeRound(fq, fr)
}

// cubeRound rounds fractional axial coordinates to the nearest hex.
func cubeRound(fq, fr float64) AxialCoord {
	fs := -fq - fr

	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return AxialCoord{Q: int(q), R: int(r)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package hexmap

import (
	opt "github.com/repeale/fp-go/option"
)

const (
	HexWidth  = 32
	HexHeight = 16
	// Height of the left/right edge of a hex.
	HexEdgeHeight = 12

	// Roofs are drawn this many pixels above the ground tile of the same hex.
	RoofElevation = 92
)

// TileOffset is applied to every tile sprite after the hex transform.
var TileOffset = Point{X: -64, Y: -16}

// A Transform converts between hexes and pixels for one map view.
//
// Forward transforms are always available. Pick and Contains need the map
// size, which only a bounded transform carries.
type Transform struct {
	origin Point
	bounds opt.Option[Size]
}

func NewTransform(origin Point) *Transform {
	return &Transform{
		origin: origin,
		bounds: opt.None[Size](),
	}
}

func NewBoundedTransform(origin Point, size Size) *Transform {
	return &Transform{
		origin: origin,
		bounds: opt.Some(size),
	}
}

func (t *Transform) Origin() Point {
	return t.origin
}

func (t *Transform) Bounds() opt.Option[Size] {
	return t.bounds
}

// Contains reports whether the hex lies inside the bound map size. An
// unbounded transform contains nothing.
func (t *Transform) Contains(hex Hex) bool {
	if opt.IsNone(t.bounds) {
		return false
	}
	size := t.bounds.Value
	return hex.X >= 0 && hex.X < size.Width && hex.Y >= 0 && hex.Y < size.Height
}

// ToPixel returns the top-left corner of the hex. Out of range hexes are
// extrapolated, not rejected.
func (t *Transform) ToPixel(hex Hex, applyOrigin bool) Point {
	x := hex.Y*HexHeight - hex.X*HexWidth
	y := abs(hex.Y+hex.X/2) * HexEdgeHeight

	if hex.X > 1 {
		x += (hex.X / 2) * HexHeight
	}

	point := Point{X: float64(x), Y: float64(y)}
	if applyOrigin {
		return point.Add(t.origin)
	}
	return point
}

func (t *Transform) Coords(hex Hex) Point {
	return t.ToPixel(hex, true)
}

// EdgeCoords returns the most extreme unshifted hex position in the given
// direction. The search starts from (0,0), so if no hex is strictly beyond
// the origin the origin itself is returned.
func (t *Transform) EdgeCoords(hexes []Hex, dir Direction) Point {
	var coords Point
	for _, hex := range hexes {
		hc := t.ToPixel(hex, false)
		switch {
		case dir == Up && hc.Y < coords.Y,
			dir == Down && hc.Y > coords.Y,
			dir == Left && hc.X < coords.X,
			dir == Right && hc.X > coords.X:
			coords = hc
		}
	}
	return coords
}

func inWindow(dx, dy float64) bool {
	return dx >= -1 && dx < HexWidth+1 &&
		dy >= -1 && dy < HexHeight+1
}

// PixelToHex scans every hex of a width x height map for one whose corner
// sits within a hex-sized window of the point. A hex whose corner is
// exactly the point wins; otherwise the first match in column-major order
// is returned. NoHex is returned if nothing matches.
//
// This is O(width*height) and meant for interactive picking only.
func (t *Transform) PixelToHex(point Point, width, height int) Hex {
	found := NoHex
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			hex := Hex{X: x, Y: y}
			calc := t.Coords(hex)

			dx := point.X - calc.X
			dy := point.Y - calc.Y
			if dx == 0 && dy == 0 {
				return hex
			}

			if found == NoHex && inWindow(dx, dy) {
				found = hex
			}
		}
	}
	return found
}

// Pick is PixelToHex against the transform's own map size.
func (t *Transform) Pick(point Point) opt.Option[Hex] {
	if opt.IsNone(t.bounds) {
		return opt.None[Hex]()
	}

	size := t.bounds.Value
	hex := t.PixelToHex(point, size.Width, size.Height)
	if hex == NoHex {
		return opt.None[Hex]()
	}
	return opt.Some(hex)
}

// ObjectCoords places a sprite for an item, scenery or critter: centered
// horizontally on the hex with its bottom edge on the hex, then corrected
// by the prototype anchor and the instance shift.
func (t *Transform) ObjectCoords(hex Hex, sprite Size, shift Offset, proto Offset) Point {
	coords := t.Coords(hex)

	coords.X -= float64(sprite.Width / 2)
	coords.X -= float64(proto.X)
	coords.X += float64(shift.X)
	coords.Y -= float64(sprite.Height)
	coords.Y -= float64(proto.Y)
	coords.Y += float64(shift.Y)

	return coords
}

// TileCoords places a ground or roof tile sprite.
func (t *Transform) TileCoords(hex Hex, roof bool) Point {
	coords := t.Coords(hex)

	if roof {
		coords.Y -= RoofElevation
	}

	return coords.Add(TileOffset)
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

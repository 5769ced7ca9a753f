package hexmap

import (
	"testing"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPixel(t *testing.T) {
	transform := NewTransform(Point{X: 100, Y: 50})

	cases := []struct {
		hex  Hex
		want Point
	}{
		{Hex{0, 0}, Point{0, 0}},
		{Hex{1, 1}, Point{-16, 12}},
		{Hex{2, 0}, Point{-48, 12}},
		{Hex{3, 2}, Point{-48, 36}},
		{Hex{4, 0}, Point{-96, 24}},
		// extrapolated, no bounds check
		{Hex{-1, 0}, Point{32, 0}},
		{Hex{-3, 0}, Point{96, 12}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, transform.ToPixel(c.hex, false), "raw %s", c.hex)
		assert.Equal(t, c.want.Add(Point{100, 50}), transform.ToPixel(c.hex, true), "shifted %s", c.hex)
		assert.Equal(t, transform.ToPixel(c.hex, true), transform.Coords(c.hex))
	}
}

func TestEdgeCoords(t *testing.T) {
	transform := NewTransform(Point{X: 300, Y: 300})
	hexes := []Hex{{0, 0}, {1, 1}, {2, 0}}

	assert.Equal(t, transform.ToPixel(Hex{0, 0}, false), transform.EdgeCoords(hexes, Up))
	assert.Equal(t, Point{-16, 12}, transform.EdgeCoords(hexes, Down))
	assert.Equal(t, Point{-48, 12}, transform.EdgeCoords(hexes, Left))

	// Nothing lies right of the origin, so the origin comes back.
	assert.Equal(t, Point{0, 0}, transform.EdgeCoords(hexes, Right))
	assert.Equal(t, Point{0, 0}, transform.EdgeCoords(nil, Down))
}

func TestPixelToHexRoundTrip(t *testing.T) {
	const width, height = 24, 18
	transform := NewBoundedTransform(Point{X: 640, Y: 8}, Size{width, height})

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			hex := Hex{x, y}
			assert.Equal(t, hex, transform.PixelToHex(transform.Coords(hex), width, height))

			picked := transform.Pick(transform.Coords(hex))
			require.True(t, opt.IsSome(picked))
			assert.Equal(t, hex, picked.Value)
		}
	}
}

func TestPixelToHexWindow(t *testing.T) {
	origin := Point{X: 10, Y: 20}
	transform := NewTransform(origin)

	assert.Equal(t, Hex{0, 0}, transform.PixelToHex(origin.Add(Point{5, 5}), 1, 1))
	assert.Equal(t, Hex{0, 0}, transform.PixelToHex(origin.Add(Point{-1, -1}), 1, 1))
	assert.Equal(t, Hex{0, 0}, transform.PixelToHex(origin.Add(Point{32.5, 16.5}), 1, 1))
	assert.Equal(t, NoHex, transform.PixelToHex(origin.Add(Point{33, 0}), 1, 1))
	assert.Equal(t, NoHex, transform.PixelToHex(origin.Add(Point{0, 17}), 1, 1))
	assert.Equal(t, NoHex, transform.PixelToHex(origin.Add(Point{-1.5, 0}), 1, 1))
	assert.Equal(t, NoHex, transform.PixelToHex(Point{-1000, -1000}, 10, 10))
	assert.Equal(t, NoHex, transform.PixelToHex(origin, 0, 0))
}

func TestPickUnbounded(t *testing.T) {
	transform := NewTransform(Point{})
	assert.True(t, opt.IsNone(transform.Pick(Point{})))
	assert.True(t, opt.IsNone(transform.Bounds()))
	assert.False(t, transform.Contains(Hex{0, 0}))

	bounded := NewBoundedTransform(Point{}, Size{4, 2})
	assert.True(t, bounded.Contains(Hex{3, 1}))
	assert.False(t, bounded.Contains(Hex{4, 1}))
	assert.False(t, bounded.Contains(Hex{0, -1}))
	assert.True(t, opt.IsNone(bounded.Pick(Point{-500, 0})))
}

func TestObjectCoords(t *testing.T) {
	transform := NewTransform(Point{X: 1000, Y: 500})

	got := transform.ObjectCoords(
		Hex{0, 0},
		Size{Width: 31, Height: 40},
		Offset{X: 2, Y: 3},
		Offset{X: 4, Y: 5},
	)
	// width/2 truncates: 31/2 == 15
	assert.Equal(t, Point{X: 1000 - 15 - 4 + 2, Y: 500 - 40 - 5 + 3}, got)
}

func TestTileCoords(t *testing.T) {
	transform := NewTransform(Point{})

	assert.Equal(t, Point{-80, -4}, transform.TileCoords(Hex{1, 1}, false))
	assert.Equal(t, Point{-80, -96}, transform.TileCoords(Hex{1, 1}, true))
	assert.Equal(t, TileOffset, transform.TileCoords(Hex{0, 0}, false))
}

func TestParseDirection(t *testing.T) {
	for _, dir := range []Direction{Up, Down, Left, Right} {
		parsed, err := ParseDirection(dir.String())
		require.NoError(t, err)
		assert.Equal(t, dir, parsed)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

package selection

import (
	"fmt"
	"math"

	"github.com/fonline-tools/fomap/pkg/hexmap"
	"github.com/fonline-tools/fomap/pkg/maps"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmpty      = fmt.Errorf("selection is empty")
	ErrOutOfRange = fmt.Errorf("coordinate out of range")
)

// A Selection is a staging copy of part of a map. It never shares storage
// with the map it was taken from: everything that goes in is cloned.
type Selection struct {
	// Added is set once the selection has been pasted into a map.
	Added   bool
	Tiles   []maps.Tile
	Objects []*maps.MapObject
}

func New() *Selection {
	return &Selection{
		Tiles:   make([]maps.Tile, 0),
		Objects: make([]*maps.MapObject, 0),
	}
}

// FromMap copies everything standing on the given hexes.
func FromMap(m *maps.Map, hexes []hexmap.Hex) *Selection {
	wanted := make(map[hexmap.Hex]struct{}, len(hexes))
	for _, hex := range hexes {
		wanted[hex] = struct{}{}
	}

	tiles := make([]maps.Tile, 0)
	for _, tile := range m.Tiles {
		if _, ok := wanted[tile.Hex()]; ok {
			tiles = append(tiles, tile)
		}
	}

	objects := make([]*maps.MapObject, 0)
	for _, object := range m.Objects {
		if _, ok := wanted[object.Hex()]; ok {
			objects = append(objects, object)
		}
	}

	s := New()
	s.Add(tiles, objects)
	return s
}

func (s *Selection) Add(tiles []maps.Tile, objects []*maps.MapObject) {
	for _, tile := range tiles {
		s.Tiles = append(s.Tiles, tile.Clone())
	}
	for _, object := range objects {
		s.Objects = append(s.Objects, object.Clone())
	}
}

// AnchorOffset returns the delta that moves the anchor of the selection
// onto (x, y). The anchor is the first tile, or the first object if there
// are no tiles.
func (s *Selection) AnchorOffset(x, y int) (dx, dy int, err error) {
	switch {
	case len(s.Tiles) > 0:
		anchor := s.Tiles[0]
		return x - int(anchor.X), y - int(anchor.Y), nil
	case len(s.Objects) > 0:
		anchor := s.Objects[0]
		return x - int(anchor.X), y - int(anchor.Y), nil
	}
	return 0, 0, ErrEmpty
}

func shift(value uint16, delta int) (uint16, bool) {
	moved := int(value) + delta
	if moved < 0 || moved > math.MaxUint16 {
		return 0, false
	}
	return uint16(moved), true
}

func (s *Selection) check(dx, dy int) error {
	for _, tile := range s.Tiles {
		_, okX := shift(tile.X, dx)
		_, okY := shift(tile.Y, dy)
		if !okX || !okY {
			return fmt.Errorf("%w: tile at %s moved by (%d,%d)", ErrOutOfRange, tile.Hex(), dx, dy)
		}
	}

	for _, object := range s.Objects {
		_, okX := shift(object.X, dx)
		_, okY := shift(object.Y, dy)
		if !okX || !okY {
			return fmt.Errorf("%w: object %d at %s moved by (%d,%d)", ErrOutOfRange, object.ProtoID, object.Hex(), dx, dy)
		}
	}

	return nil
}

// Translate moves every tile and object by (dx, dy). If any coordinate
// would leave the uint16 range nothing is moved and ErrOutOfRange is
// returned.
func (s *Selection) Translate(dx, dy int) error {
	if err := s.check(dx, dy); err != nil {
		log.Debug().Err(err).Msg("rejected selection move")
		return err
	}

	for i := range s.Tiles {
		tile := &s.Tiles[i]
		tile.X, _ = shift(tile.X, dx)
		tile.Y, _ = shift(tile.Y, dy)
	}

	for _, object := range s.Objects {
		object.X, _ = shift(object.X, dx)
		object.Y, _ = shift(object.Y, dy)
	}

	return nil
}

// MoveTo translates the selection so that its anchor lands on (x, y).
func (s *Selection) MoveTo(x, y int) error {
	dx, dy, err := s.AnchorOffset(x, y)
	if err != nil {
		return err
	}
	return s.Translate(dx, dy)
}

func (s *Selection) Clear() {
	s.Tiles = make([]maps.Tile, 0)
	s.Objects = make([]*maps.MapObject, 0)
}

func (s *Selection) HasAny() bool {
	return len(s.Tiles) > 0 || len(s.Objects) > 0
}

func (s *Selection) Clone() *Selection {
	clone := New()
	clone.Add(s.Tiles, s.Objects)
	return clone
}

// PasteInto appends copies of the selection to the map, leaving the
// selection free to be moved and pasted again.
func (s *Selection) PasteInto(m *maps.Map) {
	for _, tile := range s.Tiles {
		m.AddTile(tile.Clone())
	}
	for _, object := range s.Objects {
		m.AddObject(object.Clone())
	}
	s.Added = true

	log.Debug().Msgf(
		"pasted %d tiles and %d objects",
		len(s.Tiles),
		len(s.Objects),
	)
}

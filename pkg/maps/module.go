package maps

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	fp "github.com/repeale/fp-go"
	"github.com/rs/zerolog/log"
)

// A Map is the full content of one map. It owns its tiles and objects;
// callers that share a Map between goroutines must serialize access.
type Map struct {
	Header  Header
	Tiles   []Tile
	Objects []*MapObject
}

func NewMap() *Map {
	return &Map{
		Tiles:   make([]Tile, 0),
		Objects: make([]*MapObject, 0),
	}
}

func (m *Map) AddTile(tile Tile) {
	m.Tiles = append(m.Tiles, tile)
}

func (m *Map) AddObject(object *MapObject) {
	if !object.Kind.Valid() {
		log.Warn().Msgf("object %d at %s has unknown kind %d", object.ProtoID, object.Hex(), int(object.Kind))
	}
	m.Objects = append(m.Objects, object)
}

// TilesAt returns copies of every tile on the hex, in insertion order.
func (m *Map) TilesAt(x, y uint16) []Tile {
	return fp.Filter(func(tile Tile) bool {
		return tile.X == x && tile.Y == y
	})(m.Tiles)
}

// TilesAtLayer is TilesAt restricted to roof or ground tiles.
func (m *Map) TilesAtLayer(x, y uint16, roof bool) []Tile {
	return fp.Filter(func(tile Tile) bool {
		return tile.X == x && tile.Y == y && tile.Roof == roof
	})(m.Tiles)
}

// ObjectsAt returns the map's own objects of a kind on the hex, so edits
// through the result land in the map.
func (m *Map) ObjectsAt(x, y uint16, kind ObjectKind) []*MapObject {
	return fp.Filter(func(object *MapObject) bool {
		return object.X == x && object.Y == y && object.Kind == kind
	})(m.Objects)
}

func (m *Map) ObjectsOfKind(kind ObjectKind) []*MapObject {
	return fp.Filter(func(object *MapObject) bool {
		return object.Kind == kind
	})(m.Objects)
}

// RemoveTiles deletes every tile matching the predicate and returns how
// many were removed.
func (m *Map) RemoveTiles(match func(Tile) bool) int {
	before := len(m.Tiles)
	m.Tiles = slices.DeleteFunc(m.Tiles, match)
	removed := before - len(m.Tiles)
	log.Debug().Msgf("removed %d tiles", removed)
	return removed
}

func (m *Map) RemoveObjects(match func(*MapObject) bool) int {
	before := len(m.Objects)
	m.Objects = slices.DeleteFunc(m.Objects, match)
	removed := before - len(m.Objects)
	log.Debug().Msgf("removed %d objects", removed)
	return removed
}

func (m *Map) SortTiles() {
	SortTiles(m.Tiles)
}

// Checksum fingerprints the header and content of the map. Two maps with
// the same header, tiles and objects in the same order share a checksum,
// regardless of map iteration order inside the metadata.
func (m *Map) Checksum() uint64 {
	digest := xxhash.New()

	fmt.Fprintf(digest, "header %+v\n", m.Header)

	for _, tile := range m.Tiles {
		fmt.Fprintf(digest, "tile %+v\n", tile)
	}

	for _, object := range m.Objects {
		fmt.Fprintf(
			digest,
			"object %d %d %d %d %d\n",
			object.Kind,
			object.ProtoID,
			object.X,
			object.Y,
			object.ColorOverlay,
		)

		for _, key := range sortedKeys(object.Properties) {
			fmt.Fprintf(digest, "property %q=%q\n", key, object.Properties[key])
		}

		for _, key := range sortedKeys(object.CritterParams) {
			fmt.Fprintf(digest, "param %q=%d\n", key, object.CritterParams[key])
		}
	}

	return digest.Sum64()
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

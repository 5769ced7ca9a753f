package layout

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/fonline-tools/fomap/pkg/hexmap"
	"github.com/fonline-tools/fomap/pkg/maps"
	"github.com/fonline-tools/fomap/pkg/protos"

	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

type SpriteKind byte

const (
	SpriteKindTile SpriteKind = iota
	SpriteKindRoof
	SpriteKindObject
)

// A Sprite is one thing for the renderer to draw at Position.
type Sprite struct {
	Kind     SpriteKind
	Hex      hexmap.Hex
	Position hexmap.Point
	// Tiles only
	Path  string
	Layer int
	// Objects only
	ObjectKind maps.ObjectKind
	ProtoID    uint16

	ColorOverlay int
}

// Object instances can carry their own pixel shift in these properties.
const (
	PROPERTY_OFFSET_X = "OffsetX"
	PROPERTY_OFFSET_Y = "OffsetY"
)

func intProperty(object *maps.MapObject, key string) int {
	raw, ok := object.Properties[key]
	if !ok {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug().Msgf("object %d at %s has non-numeric %s=%q", object.ProtoID, object.Hex(), key, raw)
		return 0
	}
	return value
}

func shiftOf(object *maps.MapObject) hexmap.Offset {
	return hexmap.Offset{
		X: intProperty(object, PROPERTY_OFFSET_X),
		Y: intProperty(object, PROPERTY_OFFSET_Y),
	}
}

func visible(transform *hexmap.Transform, hex hexmap.Hex) bool {
	if opt.IsNone(transform.Bounds()) {
		return true
	}
	return transform.Contains(hex)
}

// Build lays out a map for drawing: every tile in draw order, then every
// object ordered by row and column. The map itself is not reordered.
//
// Objects whose prototype is unknown are placed with an empty sprite size.
// Any other resolver failure aborts the build.
func Build(ctx context.Context, transform *hexmap.Transform, resolver protos.Resolver, m *maps.Map) ([]Sprite, error) {
	tiles := slices.Clone(m.Tiles)
	maps.SortTiles(tiles)

	sprites := make([]Sprite, 0, len(tiles)+len(m.Objects))

	for _, tile := range tiles {
		hex := tile.Hex()
		if !visible(transform, hex) {
			continue
		}

		position := transform.TileCoords(hex, tile.Roof).Add(hexmap.Point{
			X: float64(tile.OffsetX),
			Y: float64(tile.OffsetY),
		})

		kind := SpriteKindTile
		if tile.Roof {
			kind = SpriteKindRoof
		}

		sprites = append(sprites, Sprite{
			Kind:         kind,
			Hex:          hex,
			Position:     position,
			Path:         tile.Path,
			Layer:        tile.Layer,
			ColorOverlay: tile.ColorOverlay,
		})
	}

	objects := slices.Clone(m.Objects)
	slices.SortStableFunc(objects, func(a, b *maps.MapObject) int {
		if a.Y != b.Y {
			return int(a.Y) - int(b.Y)
		}
		return int(a.X) - int(b.X)
	})

	for _, object := range objects {
		hex := object.Hex()
		if !visible(transform, hex) {
			continue
		}

		proto, err := resolver.Lookup(ctx, object.ProtoID)
		if errors.Is(err, protos.Missing) {
			log.Warn().Msgf("no proto %d for %s at %s", object.ProtoID, object.Kind, hex)
			proto = protos.Proto{}
		} else if err != nil {
			return nil, fmt.Errorf("could not resolve proto %d: %w", object.ProtoID, err)
		}

		sprites = append(sprites, Sprite{
			Kind:         SpriteKindObject,
			Hex:          hex,
			Position:     transform.ObjectCoords(hex, proto.Sprite, shiftOf(object), proto.Anchor),
			ObjectKind:   object.Kind,
			ProtoID:      object.ProtoID,
			ColorOverlay: object.ColorOverlay,
		})
	}

	return sprites, nil
}

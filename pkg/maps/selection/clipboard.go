package selection

import (
	"fmt"

	"github.com/fonline-tools/fomap/pkg/maps"

	"github.com/fxamacker/cbor/v2"
)

// What goes on the clipboard. Added describes a selection's relationship
// to one particular map, so it is not carried.
type clipboard struct {
	Tiles   []maps.Tile
	Objects []*maps.MapObject
}

// Marshal encodes the selection for the system clipboard, so a copy can be
// pasted into another editor session.
func (s *Selection) Marshal() ([]byte, error) {
	return cbor.Marshal(clipboard{
		Tiles:   s.Tiles,
		Objects: s.Objects,
	})
}

func Unmarshal(data []byte) (*Selection, error) {
	var contents clipboard
	if err := cbor.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("could not decode selection: %w", err)
	}

	s := New()
	s.Tiles = append(s.Tiles, contents.Tiles...)

	for _, object := range contents.Objects {
		if object == nil {
			continue
		}
		if !object.Kind.Valid() {
			return nil, fmt.Errorf("%w: %d", maps.ErrInvalidKind, int(object.Kind))
		}
		if object.Properties == nil {
			object.Properties = make(map[string]string)
		}
		if object.CritterParams == nil {
			object.CritterParams = make(map[string]int)
		}
		s.Objects = append(s.Objects, object)
	}

	return s, nil
}

package maps

import (
	"fmt"
	"slices"

	"github.com/fonline-tools/fomap/pkg/hexmap"
)

type Header struct {
	Version      uint16
	MaxHexX      uint16
	MaxHexY      uint16
	WorkHexX     uint16
	WorkHexY     uint16
	ScriptModule string
	ScriptFunc   string
	NoLogOut     bool
	Time         string
	DayTime      string
	DayColor0    string
	DayColor1    string
	DayColor2    string
	DayColor3    string
}

func NewHeader(scriptFunc, scriptModule, time string, noLogOut bool) *Header {
	return &Header{
		ScriptFunc:   scriptFunc,
		ScriptModule: scriptModule,
		Time:         time,
		NoLogOut:     noLogOut,
	}
}

// A Tile is one ground or roof sprite on a hex.
type Tile struct {
	Roof         bool
	X            uint16
	Y            uint16
	Path         string
	Layer        int
	OffsetX      int
	OffsetY      int
	ColorOverlay int
}

func NewTile(roof bool, x, y uint16, path string) Tile {
	return Tile{
		Roof: roof,
		X:    x,
		Y:    y,
		Path: path,
	}
}

func (t Tile) Hex() hexmap.Hex {
	return hexmap.Hex{X: int(t.X), Y: int(t.Y)}
}

// Compare orders tiles for drawing: by row, then column, then ground
// before roof.
func (t Tile) Compare(other Tile) int {
	switch {
	case t.Y != other.Y:
		return compareUint16(t.Y, other.Y)
	case t.X != other.X:
		return compareUint16(t.X, other.X)
	case t.Roof == other.Roof:
		return 0
	case !t.Roof:
		return -1
	}
	return 1
}

func (t Tile) Less(other Tile) bool {
	return t.Compare(other) < 0
}

// Tiles have no reference fields, so a copy is already independent.
func (t Tile) Clone() Tile {
	return t
}

func compareUint16(a, b uint16) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// SortTiles puts tiles in draw order. Equal tiles keep their relative order.
func SortTiles(tiles []Tile) {
	slices.SortStableFunc(tiles, Tile.Compare)
}

type ObjectKind int

const (
	ObjectKindCritter ObjectKind = iota
	ObjectKindItem
	ObjectKindScenery
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectKindCritter:
		return "critter"
	case ObjectKindItem:
		return "item"
	case ObjectKindScenery:
		return "scenery"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k ObjectKind) Valid() bool {
	return k >= ObjectKindCritter && k <= ObjectKindScenery
}

var ErrInvalidKind = fmt.Errorf("invalid object kind")

func ParseObjectKind(value string) (ObjectKind, error) {
	for _, kind := range []ObjectKind{ObjectKindCritter, ObjectKindItem, ObjectKindScenery} {
		if kind.String() == value {
			return kind, nil
		}
	}
	return ObjectKindCritter, fmt.Errorf("%w: %q", ErrInvalidKind, value)
}

// A MapObject is a placed critter, item or scenery instance. Properties and
// CritterParams are free-form; nothing here validates their keys.
type MapObject struct {
	Kind          ObjectKind
	ProtoID       uint16
	X             uint16
	Y             uint16
	Properties    map[string]string
	CritterParams map[string]int
	ColorOverlay  int
}

func NewMapObject(kind ObjectKind, protoID, x, y uint16) *MapObject {
	return &MapObject{
		Kind:          kind,
		ProtoID:       protoID,
		X:             x,
		Y:             y,
		Properties:    make(map[string]string),
		CritterParams: make(map[string]int),
	}
}

func (o *MapObject) Hex() hexmap.Hex {
	return hexmap.Hex{X: int(o.X), Y: int(o.Y)}
}

// Clone returns a copy sharing no storage with o.
func (o *MapObject) Clone() *MapObject {
	clone := NewMapObject(o.Kind, o.ProtoID, o.X, o.Y)
	clone.ColorOverlay = o.ColorOverlay

	for key, value := range o.Properties {
		clone.Properties[key] = value
	}
	for key, value := range o.CritterParams {
		clone.CritterParams[key] = value
	}

	return clone
}

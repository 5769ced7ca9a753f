package protos

import (
	"context"
	"fmt"
	"os"

	"github.com/fonline-tools/fomap/pkg/hexmap"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Proto holds what the hex transform needs to know about a prototype's
// sprite: its size and the anchor correction baked into the prototype.
type Proto struct {
	ID     uint16        `yaml:"id"`
	Sprite hexmap.Size   `yaml:"sprite"`
	Anchor hexmap.Offset `yaml:"anchor"`
}

type Resolver interface {
	Lookup(ctx context.Context, id uint16) (Proto, error)
}

var Missing = fmt.Errorf("proto missing")

// A Table is an in-memory Resolver, usually loaded from a YAML file:
//
//	protos:
//	  - id: 2000
//	    sprite: {width: 80, height: 62}
//	    anchor: {x: 0, y: -4}
type Table map[uint16]Proto

type tableFile struct {
	Protos []Proto `yaml:"protos"`
}

func ParseTable(data []byte) (Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	table := make(Table, len(file.Protos))
	for _, proto := range file.Protos {
		if _, exists := table[proto.ID]; exists {
			log.Warn().Msgf("proto %d defined more than once, keeping the last", proto.ID)
		}
		if proto.Sprite.Width < 0 || proto.Sprite.Height < 0 {
			return nil, fmt.Errorf("proto %d has a negative sprite size", proto.ID)
		}
		table[proto.ID] = proto
	}

	return table, nil
}

func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	table, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse proto table %s: %w", path, err)
	}

	log.Debug().Msgf("loaded %d protos from %s", len(table), path)
	return table, nil
}

func (t Table) Lookup(ctx context.Context, id uint16) (Proto, error) {
	proto, ok := t[id]
	if !ok {
		return Proto{}, Missing
	}
	return proto, nil
}

var _ Resolver = (Table)(nil)

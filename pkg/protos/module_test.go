package protos

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fonline-tools/fomap/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TABLE = `
protos:
  - id: 2000
    sprite: {width: 80, height: 62}
    anchor: {x: 0, y: -4}
  - id: 300
    sprite:
      width: 40
      height: 70
`

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(TABLE), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table, 2)

	proto, err := table.Lookup(context.Background(), 2000)
	require.NoError(t, err)
	assert.Equal(t, Proto{
		ID:     2000,
		Sprite: hexmap.Size{Width: 80, Height: 62},
		Anchor: hexmap.Offset{X: 0, Y: -4},
	}, proto)

	proto, err = table.Lookup(context.Background(), 300)
	require.NoError(t, err)
	assert.Equal(t, hexmap.Offset{}, proto.Anchor)

	_, err = table.Lookup(context.Background(), 1)
	assert.ErrorIs(t, err, Missing)

	_, err = LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseTableInvalid(t *testing.T) {
	_, err := ParseTable([]byte("protos: [{id: 1, sprite: {width: -1, height: 2}}]"))
	assert.Error(t, err)

	_, err = ParseTable([]byte("protos: {"))
	assert.Error(t, err)
}

type countingResolver struct {
	Table
	calls int
}

func (c *countingResolver) Lookup(ctx context.Context, id uint16) (Proto, error) {
	c.calls++
	return c.Table.Lookup(ctx, id)
}

func TestCachedResolver(t *testing.T) {
	ctx := context.Background()
	table, err := ParseTable([]byte(TABLE))
	require.NoError(t, err)

	source := &countingResolver{Table: table}
	store := FSStore(t.TempDir())
	resolver := NewCachedResolver(source, store)

	first, err := resolver.Lookup(ctx, 2000)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	// The store now holds the entry
	_, err = store.Get(ctx, "protos-2000")
	require.NoError(t, err)

	second, err := resolver.Lookup(ctx, 2000)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls)

	_, err = resolver.Lookup(ctx, 7)
	assert.ErrorIs(t, err, Missing)
}

func TestCachedResolverBadEntry(t *testing.T) {
	ctx := context.Background()
	table, err := ParseTable([]byte(TABLE))
	require.NoError(t, err)

	store := FSStore(t.TempDir())
	require.NoError(t, store.Set(ctx, "protos-300", []byte{0xff}))

	proto, err := NewCachedResolver(table, store).Lookup(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, 40, proto.Sprite.Width)
}

func TestFSStore(t *testing.T) {
	ctx := context.Background()
	store := FSStore(t.TempDir())

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, Missing)

	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	data, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), data)
}

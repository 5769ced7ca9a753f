package protos

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// An FSStore keeps one file per key inside a directory.
type FSStore string

func (f FSStore) getPath(key string) string {
	return filepath.Join(string(f), key)
}

func (f FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	target := f.getPath(key)

	if !FileExists(target) {
		return nil, Missing
	}

	return os.ReadFile(target)
}

func (f FSStore) Set(ctx context.Context, key string, data []byte) error {
	target := f.getPath(key)
	return WriteBytes(data, target)
}

const (
	PROTO_KEY    = "protos-%d"
	PROTO_EXPIRY = time.Duration(1 * time.Hour)
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = PROTO_EXPIRY
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()

	if err == redis.Nil {
		return nil, Missing
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

var _ Store = (*FSStore)(nil)
var _ Store = (*RedisStore)(nil)

// A CachedResolver answers from its store when it can and falls back to
// the source resolver, remembering what it finds.
type CachedResolver struct {
	source Resolver
	cache  Store
}

func NewCachedResolver(source Resolver, cache Store) *CachedResolver {
	return &CachedResolver{
		source: source,
		cache:  cache,
	}
}

func (c *CachedResolver) Lookup(ctx context.Context, id uint16) (Proto, error) {
	key := fmt.Sprintf(PROTO_KEY, id)

	data, err := c.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, Missing) {
		return Proto{}, err
	}

	if err == nil {
		var proto Proto
		if err := cbor.Unmarshal(data, &proto); err == nil {
			return proto, nil
		}
		log.Warn().Msgf("dropping unreadable cache entry %s", key)
	}

	proto, err := c.source.Lookup(ctx, id)
	if err != nil {
		return Proto{}, err
	}

	data, err = cbor.Marshal(proto)
	if err != nil {
		return Proto{}, err
	}

	err = c.cache.Set(ctx, key, data)
	if err != nil {
		return Proto{}, err
	}

	return proto, nil
}

var _ Resolver = (*CachedResolver)(nil)

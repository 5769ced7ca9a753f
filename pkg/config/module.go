package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fonline-tools/fomap/pkg/hexmap"
	"github.com/fonline-tools/fomap/pkg/protos"

	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

func readFile(path string) ([]byte, error) {
	// Check if this is a valid file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("does not exist")
	}

	extension := filepath.Ext(path)
	switch extension {
	// JSON is a subset of YAML, so one decoder handles both
	case ".json", ".yaml", ".yml":
		return os.ReadFile(path)
	}

	return nil, fmt.Errorf(
		"not in a valid format",
	)
}

// Process reads the provided configuration files in order and merges each
// over the default configuration. Fields a file leaves out keep the value
// from the files before it.
func Process(configPaths []string) (*Config, error) {
	config := Config{}

	err := yaml.Unmarshal(DEFAULT, &config)
	if err != nil {
		return nil, fmt.Errorf(
			"invalid default config file: %v",
			err,
		)
	}

	for _, path := range configPaths {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}

		err = yaml.Unmarshal(data, &config)
		if err != nil {
			return nil, fmt.Errorf(
				"could not merge config file %s: %v",
				path,
				err,
			)
		}

		// Check if the config file is valid
		err = config.Validate()
		if err != nil {
			return nil, fmt.Errorf(
				"config file %s is not valid: %v",
				path,
				err,
			)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Map.Width < 0 || c.Map.Height < 0 {
		return fmt.Errorf("map size cannot be negative")
	}

	cache := c.Protos.Cache
	if cache.Dir != "" && cache.Redis.Addr != "" {
		return fmt.Errorf("proto cache can be a directory or redis, not both")
	}

	if cache.Redis.TTL < 0 {
		return fmt.Errorf("redis ttl cannot be negative")
	}

	return nil
}

// Transform builds the hex transform described by the configuration. It is
// bounded only when both map dimensions are set.
func (c *Config) Transform() *hexmap.Transform {
	origin := hexmap.Point{X: c.Origin.X, Y: c.Origin.Y}

	if c.Map.Width > 0 && c.Map.Height > 0 {
		return hexmap.NewBoundedTransform(origin, hexmap.Size{
			Width:  c.Map.Width,
			Height: c.Map.Height,
		})
	}

	return hexmap.NewTransform(origin)
}

// Resolver loads the proto table and wraps it in the configured cache.
func (c *Config) Resolver(ctx context.Context) (protos.Resolver, error) {
	table := make(protos.Table)
	if c.Protos.Table != "" {
		loaded, err := protos.LoadTable(c.Protos.Table)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	cache := c.Protos.Cache
	switch {
	case cache.Dir != "":
		if err := os.MkdirAll(cache.Dir, 0755); err != nil {
			return nil, err
		}
		return protos.NewCachedResolver(table, protos.FSStore(cache.Dir)), nil
	case cache.Redis.Addr != "":
		client := redis.NewClient(&redis.Options{
			Addr: cache.Redis.Addr,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("could not reach redis at %s: %w", cache.Redis.Addr, err)
		}

		log.Info().Msgf("caching protos in redis at %s", cache.Redis.Addr)
		return protos.NewCachedResolver(
			table,
			protos.NewRedisStore(client, cache.Redis.TTL),
		), nil
	}

	return table, nil
}

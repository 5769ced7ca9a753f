package config

import (
	"time"
)

type Origin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MapSettings binds the transform to a map size. Zero means unbounded.
type MapSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type RedisSettings struct {
	Addr string        `yaml:"addr"`
	TTL  time.Duration `yaml:"ttl"`
}

type CacheSettings struct {
	Dir   string        `yaml:"dir"`
	Redis RedisSettings `yaml:"redis"`
}

type ProtoSettings struct {
	Table string        `yaml:"table"`
	Cache CacheSettings `yaml:"cache"`
}

type Config struct {
	Origin Origin        `yaml:"origin"`
	Map    MapSettings   `yaml:"map"`
	Protos ProtoSettings `yaml:"protos"`
}

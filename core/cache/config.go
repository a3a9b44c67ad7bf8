package cache

import "time"

// Config holds the loader cache settings.
type Config struct {
	// TTL is how long a computed value stays live.
	TTL time.Duration `mapstructure:"ttl" default:"10s"`
}

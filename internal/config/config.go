// Package config provides configuration types and defaults for switchboard.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/zjrosen/switchboard/internal/tracing"
)

// Known variant names selectable from configuration.
var (
	KnownStrategies = []string{"driving", "walking", "cycling"}
	KnownChannels   = []string{"email", "sms", "bus"}
)

// RouteConfig selects the initial route-calculation variant.
type RouteConfig struct {
	// Strategy is the calculator bound at startup: "driving" (default),
	// "walking", or "cycling".
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// NotifyConfig selects the initial message-delivery variant.
type NotifyConfig struct {
	// Channel is the sender bound at startup: "email" (default), "sms",
	// or "bus".
	Channel string `mapstructure:"channel" yaml:"channel"`

	// EmailFrom is the sender address used by the email channel.
	EmailFrom string `mapstructure:"email_from" yaml:"email_from"`
}

// CacheConfig controls the caching route decorator.
type CacheConfig struct {
	// Enabled wraps the selected calculator in a TTL cache.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// TTL is how long a computed route stays cached.
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// Config holds all configuration options for switchboard.
type Config struct {
	Route   RouteConfig    `mapstructure:"route" yaml:"route"`
	Notify  NotifyConfig   `mapstructure:"notify" yaml:"notify"`
	Cache   CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Tracing tracing.Config `mapstructure:"tracing" yaml:"tracing"`
	Debug   bool           `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		Route: RouteConfig{
			Strategy: "driving",
		},
		Notify: NotifyConfig{
			Channel:   "email",
			EmailFrom: "noreply@switchboard.local",
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     10 * time.Minute,
		},
		Tracing: tracing.DefaultConfig(),
		Debug:   false,
	}
}

// Validate rejects variant names no contract knows about. Selection errors
// surface here, before any dispatcher is constructed.
func (c Config) Validate() error {
	if !slices.Contains(KnownStrategies, c.Route.Strategy) {
		return fmt.Errorf("unknown route strategy %q (known: %v)", c.Route.Strategy, KnownStrategies)
	}
	if !slices.Contains(KnownChannels, c.Notify.Channel) {
		return fmt.Errorf("unknown notify channel %q (known: %v)", c.Notify.Channel, KnownChannels)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive when the cache is enabled")
	}
	return nil
}

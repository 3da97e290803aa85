package env

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/code-payments/candy-machine/pkg/config"
	"github.com/code-payments/candy-machine/pkg/config/wrapper"
)

type conf struct {
	val string
}

// NewConfig snapshots the environment variable named by key (upper cased).
// Unset and empty variables both yield config.ErrNoValue.
func NewConfig(key string) config.Config {
	return &conf{
		val: os.Getenv(strings.ToUpper(key)),
	}
}

// Get implements Config.Get
func (c *conf) Get(ctx context.Context) (interface{}, error) {
	if len(c.val) == 0 {
		return nil, config.ErrNoValue
	}

	return []byte(c.val), nil
}

// Shutdown implements Config.Shutdown
func (c *conf) Shutdown() {
}

// NewStringConfig creates a env-based string config
func NewStringConfig(key string, defaultValue string) config.String {
	return wrapper.NewStringConfig(NewConfig(key), defaultValue)
}

// NewDurationConfig creates a env-based duration config
func NewDurationConfig(key string, defaultValue time.Duration) config.Duration {
	return wrapper.NewDurationConfig(NewConfig(key), defaultValue)
}

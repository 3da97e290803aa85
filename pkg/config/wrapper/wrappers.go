package wrapper

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/code-payments/candy-machine/pkg/config"
)

// ErrUnsuportedConversion indicates the wrapper does not implement conversion from the source type
var ErrUnsuportedConversion = errors.New("config: wrapper conversion from source type not implemented")

// typedConfig adapts an untyped config.Config into a typed one. Raw []byte
// values (env) are converted with parse; values already of type T
// (memory) pass through.
type typedConfig[T any] struct {
	override     config.Config
	defaultValue T
	parse        func(string) (T, error)

	stateMu   sync.RWMutex
	lastValue T
}

func newTypedConfig[T any](override config.Config, defaultValue T, parse func(string) (T, error)) *typedConfig[T] {
	return &typedConfig[T]{
		override:     override,
		defaultValue: defaultValue,
		parse:        parse,
		lastValue:    defaultValue,
	}
}

// GetSafe gets a config value and propagates any errors that arise. A best-effort
// attempt is made to return the last known value
func (c *typedConfig[T]) GetSafe(ctx context.Context) (T, error) {
	override, err := c.override.Get(ctx)

	c.stateMu.RLock()
	lastValue := c.lastValue
	c.stateMu.RUnlock()

	if err == config.ErrNoValue {
		c.setLast(c.defaultValue)
		return c.defaultValue, nil
	} else if err != nil {
		return lastValue, err
	}

	var newValue T
	switch override := override.(type) {
	case []byte:
		newValue, err = c.parse(string(override))
		if err != nil {
			return lastValue, err
		}
	case T:
		newValue = override
	default:
		return lastValue, ErrUnsuportedConversion
	}

	c.setLast(newValue)
	return newValue, nil
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *typedConfig[T]) Get(ctx context.Context) T {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *typedConfig[T]) Shutdown() {
	c.override.Shutdown()
}

func (c *typedConfig[T]) setLast(v T) {
	c.stateMu.Lock()
	c.lastValue = v
	c.stateMu.Unlock()
}

// NewStringConfig returns a new string config utility wrapper
func NewStringConfig(override config.Config, defaultValue string) config.String {
	return newTypedConfig(override, defaultValue, func(s string) (string, error) {
		return s, nil
	})
}

// NewDurationConfig returns a new duration config utility wrapper
func NewDurationConfig(override config.Config, defaultValue time.Duration) config.Duration {
	return newTypedConfig(override, defaultValue, time.ParseDuration)
}

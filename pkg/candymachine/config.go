package candymachine

import (
	"time"

	"github.com/code-payments/candy-machine/pkg/config"
	"github.com/code-payments/candy-machine/pkg/config/env"
	"github.com/code-payments/candy-machine/pkg/config/memory"
	"github.com/code-payments/candy-machine/pkg/config/wrapper"
)

const (
	// The env names are shared with the web front end's .env file.
	envConfigPrefix = "REACT_APP_"

	NetworkConfigEnvName = envConfigPrefix + "SOLANA_NETWORK"

	RPCHostConfigEnvName = envConfigPrefix + "SOLANA_RPC_HOST"

	CandyMachineIDConfigEnvName = envConfigPrefix + "CANDY_MACHINE_ID"

	TxTimeoutConfigEnvName = envConfigPrefix + "TX_TIMEOUT"
	defaultTxTimeout       = 60 * time.Second
)

type conf struct {
	network        config.String
	rpcHost        config.String
	candyMachineID config.String
	txTimeout      config.Duration
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			network:        env.NewStringConfig(NetworkConfigEnvName, ""),
			rpcHost:        env.NewStringConfig(RPCHostConfigEnvName, ""),
			candyMachineID: env.NewStringConfig(CandyMachineIDConfigEnvName, ""),
			txTimeout:      env.NewDurationConfig(TxTimeoutConfigEnvName, defaultTxTimeout),
		}
	}
}

// Overrides replace values from the underlying provider. Zero values leave
// the underlying value in place.
type Overrides struct {
	Network        string
	RPCHost        string
	CandyMachineID string
	TxTimeout      time.Duration
}

// WithOverrides layers explicit values, typically command line flags, on top
// of another provider.
func WithOverrides(base ConfigProvider, overrides *Overrides) ConfigProvider {
	return func() *conf {
		c := base()
		if overrides == nil {
			return c
		}

		if len(overrides.Network) > 0 {
			c.network = wrapper.NewStringConfig(memory.NewConfig(overrides.Network), "")
		}
		if len(overrides.RPCHost) > 0 {
			c.rpcHost = wrapper.NewStringConfig(memory.NewConfig(overrides.RPCHost), "")
		}
		if len(overrides.CandyMachineID) > 0 {
			c.candyMachineID = wrapper.NewStringConfig(memory.NewConfig(overrides.CandyMachineID), "")
		}
		if overrides.TxTimeout > 0 {
			c.txTimeout = wrapper.NewDurationConfig(memory.NewConfig(overrides.TxTimeout), defaultTxTimeout)
		}
		return c
	}
}

package candymachine

import (
	"context"
	"crypto/ed25519"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/candy-machine/pkg/solana"
)

const (
	NetworkMissingMessage = "Your REACT_APP_SOLANA_NETWORK value in the .env file doesn't look right! The options are devnet and mainnet-beta!"
	RPCHostMissingMessage = "Your REACT_APP_SOLANA_RPC_HOST value in the .env file doesn't look right! Make sure you enter it in as a plain-text url (i.e., https://api.devnet.solana.com/)"
)

// fallbackNetwork backs the endpoints when the configured network is
// missing or unknown.
const fallbackNetwork = solana.NetworkDevnet

// ConfigError is a configuration problem that prevents the mint flow from
// working. It is meant to be displayed, not to stop the process.
type ConfigError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return e.Message
}

// AppConfig is the resolved, read-only application configuration.
type AppConfig struct {
	Network solana.Network `json:"network"`

	// RPCHost is the endpoint used for ledger reads and transaction
	// submission. It falls back to the devnet cluster when unset.
	RPCHost string `json:"rpc_host"`

	// Endpoint is the cluster endpoint for wallet connections, derived from
	// Network.
	Endpoint string `json:"endpoint"`

	// CandyMachineID is nil when unset or unparsable.
	CandyMachineID ed25519.PublicKey `json:"-"`

	TxTimeout time.Duration `json:"tx_timeout"`

	// Error is set when the configuration is unusable. The remaining fields
	// are still populated with fallbacks.
	Error *ConfigError `json:"error,omitempty"`
}

// Err returns Error as an error, or nil.
func (c *AppConfig) Err() error {
	if c.Error == nil {
		return nil
	}
	return c.Error
}

// ResolveConfig reads and validates the application configuration. It never
// fails: problems are reported through AppConfig.Error, and an unusable
// candy machine id is logged and dropped.
func ResolveConfig(ctx context.Context, provider ConfigProvider, resolver solana.EndpointResolver) *AppConfig {
	log := logrus.StandardLogger().WithField("type", "candymachine/resolver")

	if resolver == nil {
		resolver = solana.ClusterEndpoints
	}

	conf := provider()
	rawNetwork := strings.TrimSpace(conf.network.Get(ctx))
	rawRPCHost := strings.TrimSpace(conf.rpcHost.Get(ctx))
	rawCandyMachineID := strings.TrimSpace(conf.candyMachineID.Get(ctx))

	cfg := &AppConfig{
		TxTimeout: conf.txTimeout.Get(ctx),
	}

	network, err := solana.ParseNetwork(rawNetwork)
	switch {
	case len(rawNetwork) == 0:
		cfg.Error = &ConfigError{Key: NetworkConfigEnvName, Message: NetworkMissingMessage}
		network = fallbackNetwork
	case err != nil:
		log.WithError(err).WithField("network", rawNetwork).Warn("unknown network configured")
		cfg.Error = &ConfigError{Key: NetworkConfigEnvName, Message: NetworkMissingMessage}
		network = fallbackNetwork
	case len(rawRPCHost) == 0:
		cfg.Error = &ConfigError{Key: RPCHostConfigEnvName, Message: RPCHostMissingMessage}
	}
	cfg.Network = network

	cfg.Endpoint = resolveEndpoint(log, resolver, network)

	// The RPC host fallback is always devnet, even when a different network
	// is configured.
	cfg.RPCHost = rawRPCHost
	if len(cfg.RPCHost) == 0 {
		cfg.RPCHost = resolveEndpoint(log, resolver, fallbackNetwork)
	}

	if len(rawCandyMachineID) == 0 {
		log.Debug("no candy machine id configured")
	} else {
		candyMachineID, err := solana.ParsePublicKey(rawCandyMachineID)
		if err != nil {
			log.WithError(err).WithField("candy_machine_id", rawCandyMachineID).Warn("failed to parse candy machine id")
		} else {
			cfg.CandyMachineID = candyMachineID
		}
	}

	if cfg.Error != nil {
		log.WithField("key", cfg.Error.Key).Warn("configuration is incomplete")
	}

	return cfg
}

func resolveEndpoint(log *logrus.Entry, resolver solana.EndpointResolver, network solana.Network) string {
	endpoint, err := resolver.Endpoint(network)
	if err == nil && len(endpoint) > 0 {
		return endpoint
	}

	log.WithError(err).WithField("network", network).Warn("endpoint resolver failed, using public cluster endpoint")
	endpoint, err = solana.ClusterEndpoints.Endpoint(network)
	if err != nil {
		return string(solana.EnvironmentDev)
	}
	return endpoint
}

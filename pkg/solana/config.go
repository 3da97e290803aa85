package solana

import (
	"strings"

	"github.com/pkg/errors"
)

// Network is a named Solana cluster.
type Network string

const (
	NetworkDevnet      Network = "devnet"
	NetworkTestnet     Network = "testnet"
	NetworkMainnetBeta Network = "mainnet-beta"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Environment is the public RPC endpoint of a cluster.
type Environment string

const (
	EnvironmentDev  Environment = "https://api.devnet.solana.com"
	EnvironmentTest Environment = "https://api.testnet.solana.com"
	EnvironmentProd Environment = "https://api.mainnet-beta.solana.com"
)

// ParseNetwork validates a network name against the known clusters.
func ParseNetwork(value string) (Network, error) {
	switch n := Network(strings.TrimSpace(value)); n {
	case NetworkDevnet, NetworkTestnet, NetworkMainnetBeta:
		return n, nil
	default:
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", value)
	}
}

// EndpointResolver maps a network to the URL used to reach it.
type EndpointResolver interface {
	Endpoint(network Network) (string, error)
}

// ClusterEndpoints resolves networks to the public cluster API URLs.
var ClusterEndpoints EndpointResolver = clusterEndpoints{}

type clusterEndpoints struct{}

func (clusterEndpoints) Endpoint(network Network) (string, error) {
	switch network {
	case NetworkDevnet:
		return string(EnvironmentDev), nil
	case NetworkTestnet:
		return string(EnvironmentTest), nil
	case NetworkMainnetBeta:
		return string(EnvironmentProd), nil
	default:
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", network)
	}
}

// StaticEndpoints is an EndpointResolver backed by a fixed table.
type StaticEndpoints map[Network]string

func (s StaticEndpoints) Endpoint(network Network) (string, error) {
	endpoint, ok := s[network]
	if !ok {
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", network)
	}
	return endpoint, nil
}

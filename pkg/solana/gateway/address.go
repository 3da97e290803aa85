package gateway

import (
	"crypto/ed25519"

	"github.com/code-payments/candy-machine/pkg/solana"
)

var (
	networkExpirePrefix = []byte("expire")
	gatewayTokenPrefix  = []byte("gateway")

	// gatewayTokenIndex is the 8 byte seed index for gateway tokens. The mint
	// flow only ever uses the first token, so it is always zero.
	gatewayTokenIndex = []byte{0, 0, 0, 0, 0, 0, 0, 0}
)

// GetNetworkExpireAddress returns the expiry account of a gatekeeper network.
func GetNetworkExpireAddress(network ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		network,
		networkExpirePrefix,
	)
}

type GetGatewayTokenAddressArgs struct {
	Wallet  ed25519.PublicKey
	Network ed25519.PublicKey
}

// GetGatewayTokenAddress returns the gateway token account issued to a wallet
// by a gatekeeper network.
func GetGatewayTokenAddress(args *GetGatewayTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		args.Wallet,
		gatewayTokenPrefix,
		gatewayTokenIndex,
		args.Network,
	)
}

package gateway

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/candy-machine/pkg/solana"
)

func TestGetNetworkExpireAddress(t *testing.T) {
	addr, bump, err := GetNetworkExpireAddress(DefaultNetwork)
	require.NoError(t, err)
	assert.Equal(t, "DH46SxsYWBMf3Ca1hPMUYyZzQpf9bfAw93ncUKhvZCWA", base58.Encode(addr))
	assert.EqualValues(t, 255, bump)

	again, againBump, err := GetNetworkExpireAddress(DefaultNetwork)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, againBump)
}

func TestGetGatewayTokenAddress(t *testing.T) {
	for _, tc := range []struct {
		wallet   string
		expected string
		bump     uint8
	}{
		{
			wallet:   "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM",
			expected: "EP2THH8PriRUtJxx85fk19ufqWuPC2fCnCbBdvGk5mem",
			bump:     255,
		},
		{
			wallet:   "8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh",
			expected: "8Co4Hnh4D3f3FXDXaKr6Eb1rLczvq4HPSQNrDs2i4V5e",
			bump:     252,
		},
	} {
		addr, bump, err := GetGatewayTokenAddress(&GetGatewayTokenAddressArgs{
			Wallet:  solana.MustParsePublicKey(tc.wallet),
			Network: DefaultNetwork,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.expected, base58.Encode(addr))
		assert.Equal(t, tc.bump, bump)
	}
}

func TestGetGatewayTokenAddress_Seeds(t *testing.T) {
	wallet, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	network, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	addr, bump, err := GetGatewayTokenAddress(&GetGatewayTokenAddressArgs{
		Wallet:  wallet,
		Network: network,
	})
	require.NoError(t, err)

	recreated, err := solana.CreateProgramAddress(
		ProgramKey,
		wallet,
		[]byte("gateway"),
		make([]byte, 8),
		network,
		[]byte{bump},
	)
	require.NoError(t, err)
	assert.Equal(t, addr, recreated)

	other, _, err := GetGatewayTokenAddress(&GetGatewayTokenAddressArgs{
		Wallet:  network,
		Network: wallet,
	})
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)
}

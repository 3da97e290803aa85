package candymachine

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/candy-machine/pkg/solana"
	"github.com/code-payments/candy-machine/pkg/solana/gateway"
	"github.com/code-payments/candy-machine/pkg/solana/token"
)

// GatekeeperConfig is the gatekeeper set on a candy machine.
type GatekeeperConfig struct {
	Network     ed25519.PublicKey
	ExpireOnUse bool
}

type GatewayAccounts struct {
	Token      ed25519.PublicKey
	TokenBump  uint8
	Expire     ed25519.PublicKey
	ExpireBump uint8
}

// MintAccounts are the derived accounts needed to mint a single token from a
// candy machine.
type MintAccounts struct {
	AssociatedTokenAccount       ed25519.PublicKey
	AssociatedTokenAccountBump   uint8
	CreateAssociatedTokenAccount solana.Instruction

	// Gateway is nil when the candy machine has no gatekeeper.
	Gateway *GatewayAccounts

	// RemainingAccounts are appended to the mint instruction, in order.
	RemainingAccounts []solana.AccountMeta
}

// PlanMintAccounts derives the accounts for minting mint to payer. The payer
// funds and owns the new associated token account.
func PlanMintAccounts(payer, mint ed25519.PublicKey, gatekeeper *GatekeeperConfig) (*MintAccounts, error) {
	if len(payer) != ed25519.PublicKeySize {
		return nil, errors.Wrap(solana.ErrInvalidPublicKey, "invalid payer")
	}
	if len(mint) != ed25519.PublicKeySize {
		return nil, errors.Wrap(solana.ErrInvalidPublicKey, "invalid mint")
	}

	ata, bump, err := token.GetAssociatedAccountAndBump(payer, mint)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving associated token account")
	}

	accounts := &MintAccounts{
		AssociatedTokenAccount:       ata,
		AssociatedTokenAccountBump:   bump,
		CreateAssociatedTokenAccount: token.CreateAssociatedTokenAccount(ata, payer, payer, mint),
	}

	if gatekeeper == nil {
		return accounts, nil
	}

	if len(gatekeeper.Network) != ed25519.PublicKeySize {
		return nil, errors.Wrap(solana.ErrInvalidPublicKey, "invalid gatekeeper network")
	}

	gatewayToken, gatewayTokenBump, err := gateway.GetGatewayTokenAddress(&gateway.GetGatewayTokenAddressArgs{
		Wallet:  payer,
		Network: gatekeeper.Network,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error deriving gateway token address")
	}

	accounts.Gateway = &GatewayAccounts{
		Token:     gatewayToken,
		TokenBump: gatewayTokenBump,
	}
	accounts.RemainingAccounts = append(accounts.RemainingAccounts, solana.NewAccountMeta(gatewayToken, false))

	if !gatekeeper.ExpireOnUse {
		return accounts, nil
	}

	expire, expireBump, err := gateway.GetNetworkExpireAddress(gatekeeper.Network)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving network expire address")
	}

	accounts.Gateway.Expire = expire
	accounts.Gateway.ExpireBump = expireBump
	accounts.RemainingAccounts = append(
		accounts.RemainingAccounts,
		solana.NewReadonlyAccountMeta(gateway.ProgramKey, false),
		solana.NewReadonlyAccountMeta(expire, false),
	)

	return accounts, nil
}

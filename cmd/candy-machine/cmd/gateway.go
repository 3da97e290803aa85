package cmd

import (
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/code-payments/candy-machine/pkg/solana/gateway"
)

type addressOutput struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

func newGatewayCmd(opts *options) *cobra.Command {
	var network string

	gatewayNetwork := func() (ed25519.PublicKey, error) {
		if len(network) == 0 {
			return gateway.DefaultNetwork, nil
		}
		return parseKeyArg("gatekeeper network", network)
	}

	printAddress := func(cmd *cobra.Command, address ed25519.PublicKey, bump uint8) error {
		out := addressOutput{Address: encodeKey(address), Bump: bump}
		if opts.jsonOut {
			return printJSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\nBump:    %d\n", out.Address, out.Bump)
		return nil
	}

	gatewayCmd := &cobra.Command{
		Use:   "gateway",
		Short: "Derive gateway program accounts",
		Long: `Derive the gateway program accounts used by gated candy machines.

Examples:
  candy-machine gateway expire
  candy-machine gateway token <wallet> --gatekeeper-network <network>`,
	}
	gatewayCmd.PersistentFlags().StringVar(&network, "gatekeeper-network", "", "gatekeeper network (defaults to the Civic network)")

	expireCmd := &cobra.Command{
		Use:   "expire",
		Short: "Derive the expiry account of a gatekeeper network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			networkKey, err := gatewayNetwork()
			if err != nil {
				return err
			}

			address, bump, err := gateway.GetNetworkExpireAddress(networkKey)
			if err != nil {
				return errors.Wrap(err, "error deriving network expire address")
			}
			return printAddress(cmd, address, bump)
		},
	}

	tokenCmd := &cobra.Command{
		Use:   "token <wallet>",
		Short: "Derive the gateway token of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := parseKeyArg("wallet", args[0])
			if err != nil {
				return err
			}
			networkKey, err := gatewayNetwork()
			if err != nil {
				return err
			}

			address, bump, err := gateway.GetGatewayTokenAddress(&gateway.GetGatewayTokenAddressArgs{
				Wallet:  wallet,
				Network: networkKey,
			})
			if err != nil {
				return errors.Wrap(err, "error deriving gateway token address")
			}
			return printAddress(cmd, address, bump)
		},
	}

	gatewayCmd.AddCommand(expireCmd, tokenCmd)
	return gatewayCmd
}

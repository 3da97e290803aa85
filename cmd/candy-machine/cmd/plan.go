package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-payments/candy-machine/pkg/candymachine"
	"github.com/code-payments/candy-machine/pkg/solana"
	"github.com/code-payments/candy-machine/pkg/solana/gateway"
)

type accountMetaOutput struct {
	PublicKey  string `json:"public_key"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionOutput struct {
	Program  string              `json:"program"`
	Accounts []accountMetaOutput `json:"accounts"`
}

type planOutput struct {
	AssociatedTokenAccount       addressOutput       `json:"associated_token_account"`
	CreateAssociatedTokenAccount instructionOutput   `json:"create_associated_token_account"`
	GatewayToken                 *addressOutput      `json:"gateway_token,omitempty"`
	NetworkExpire                *addressOutput      `json:"network_expire,omitempty"`
	RemainingAccounts            []accountMetaOutput `json:"remaining_accounts"`
}

func toAccountMetaOutputs(accounts []solana.AccountMeta) []accountMetaOutput {
	out := make([]accountMetaOutput, len(accounts))
	for i, account := range accounts {
		out[i] = accountMetaOutput{
			PublicKey:  encodeKey(account.PublicKey),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		}
	}
	return out
}

func newPlanCmd(opts *options) *cobra.Command {
	var (
		gated       bool
		network     string
		expireOnUse bool
	)

	cmd := &cobra.Command{
		Use:   "plan <payer> <mint>",
		Short: "Derive every account needed to mint a token",
		Long: `Derive the accounts needed to mint a token to a payer.

Examples:
  candy-machine plan <payer> <mint>
  candy-machine plan <payer> <mint> --gated --expire-on-use`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payer, err := parseKeyArg("payer", args[0])
			if err != nil {
				return err
			}
			mint, err := parseKeyArg("mint", args[1])
			if err != nil {
				return err
			}

			var gatekeeper *candymachine.GatekeeperConfig
			if gated || len(network) > 0 {
				gatekeeper = &candymachine.GatekeeperConfig{
					Network:     gateway.DefaultNetwork,
					ExpireOnUse: expireOnUse,
				}
				if len(network) > 0 {
					gatekeeper.Network, err = parseKeyArg("gatekeeper network", network)
					if err != nil {
						return err
					}
				}
			}

			accounts, err := candymachine.PlanMintAccounts(payer, mint, gatekeeper)
			if err != nil {
				return err
			}

			out := planOutput{
				AssociatedTokenAccount: addressOutput{
					Address: encodeKey(accounts.AssociatedTokenAccount),
					Bump:    accounts.AssociatedTokenAccountBump,
				},
				CreateAssociatedTokenAccount: instructionOutput{
					Program:  encodeKey(accounts.CreateAssociatedTokenAccount.Program),
					Accounts: toAccountMetaOutputs(accounts.CreateAssociatedTokenAccount.Accounts),
				},
				RemainingAccounts: toAccountMetaOutputs(accounts.RemainingAccounts),
			}
			if accounts.Gateway != nil {
				out.GatewayToken = &addressOutput{Address: encodeKey(accounts.Gateway.Token), Bump: accounts.Gateway.TokenBump}
				if len(accounts.Gateway.Expire) > 0 {
					out.NetworkExpire = &addressOutput{Address: encodeKey(accounts.Gateway.Expire), Bump: accounts.Gateway.ExpireBump}
				}
			}

			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Associated Token Account: %s (bump %d)\n", out.AssociatedTokenAccount.Address, out.AssociatedTokenAccount.Bump)
			if out.GatewayToken != nil {
				fmt.Fprintf(w, "Gateway Token:            %s (bump %d)\n", out.GatewayToken.Address, out.GatewayToken.Bump)
			}
			if out.NetworkExpire != nil {
				fmt.Fprintf(w, "Network Expire:           %s (bump %d)\n", out.NetworkExpire.Address, out.NetworkExpire.Bump)
			}
			fmt.Fprintf(w, "\nCreate associated token account (%s):\n", out.CreateAssociatedTokenAccount.Program)
			for _, account := range out.CreateAssociatedTokenAccount.Accounts {
				fmt.Fprintf(w, "  %s signer=%t writable=%t\n", account.PublicKey, account.IsSigner, account.IsWritable)
			}
			if len(out.RemainingAccounts) > 0 {
				fmt.Fprintf(w, "\nRemaining accounts:\n")
				for _, account := range out.RemainingAccounts {
					fmt.Fprintf(w, "  %s signer=%t writable=%t\n", account.PublicKey, account.IsSigner, account.IsWritable)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&gated, "gated", false, "the candy machine uses a gatekeeper")
	cmd.Flags().StringVar(&network, "gatekeeper-network", "", "gatekeeper network (defaults to the Civic network, implies --gated)")
	cmd.Flags().BoolVar(&expireOnUse, "expire-on-use", false, "the gateway token expires when used")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/code-payments/candy-machine/pkg/solana"
	"github.com/code-payments/candy-machine/pkg/solana/token"
)

type ataOutput struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
	Owner   string `json:"owner"`
	Mint    string `json:"mint"`

	// Exists is only set with --check.
	Exists *bool `json:"exists,omitempty"`
	// Amount is only set when the account exists.
	Amount *uint64 `json:"amount,omitempty"`
}

func newATACmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "ata <owner> <mint>",
		Short: "Derive an associated token account",
		Long: `Derive the associated token account of an owner for a mint.

Examples:
  candy-machine ata 4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM 8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh
  candy-machine ata <owner> <mint> --check --rpc-host https://api.devnet.solana.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseKeyArg("owner", args[0])
			if err != nil {
				return err
			}
			mint, err := parseKeyArg("mint", args[1])
			if err != nil {
				return err
			}

			address, bump, err := token.GetAssociatedAccountAndBump(owner, mint)
			if err != nil {
				return errors.Wrap(err, "error deriving associated token account")
			}

			out := ataOutput{
				Address: encodeKey(address),
				Bump:    bump,
				Owner:   encodeKey(owner),
				Mint:    encodeKey(mint),
			}

			if check {
				cfg := opts.resolveConfig(cmd.Context())
				tc := token.NewClient(newSolanaClient(cfg.RPCHost, cfg.TxTimeout, solana.WithRateLimit(opts.rpcRateLimit)), mint)

				account, err := tc.GetAccount(cmd.Context(), address, solana.CommitmentConfirmed)
				switch err {
				case nil:
					exists := true
					out.Exists = &exists
					out.Amount = &account.Amount
				case token.ErrAccountNotFound:
					exists := false
					out.Exists = &exists
				default:
					return errors.Wrap(err, "error checking associated token account")
				}
			}

			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Address: %s\n", out.Address)
			fmt.Fprintf(w, "Bump:    %d\n", out.Bump)
			if out.Exists != nil {
				fmt.Fprintf(w, "Exists:  %t\n", *out.Exists)
			}
			if out.Amount != nil {
				fmt.Fprintf(w, "Amount:  %d\n", *out.Amount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "look up the account on the configured RPC host")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-payments/candy-machine/pkg/candymachine"
)

type configOutput struct {
	Network        string                    `json:"network"`
	RPCHost        string                    `json:"rpc_host"`
	Endpoint       string                    `json:"endpoint"`
	CandyMachineID string                    `json:"candy_machine_id,omitempty"`
	TxTimeout      string                    `json:"tx_timeout"`
	Error          *candymachine.ConfigError `json:"error,omitempty"`
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved mint configuration",
		Long: `Show the resolved mint configuration.

Configuration problems are reported alongside the fallback values that
would be used, matching what the mint page displays.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.resolveConfig(cmd.Context())

			out := configOutput{
				Network:        string(cfg.Network),
				RPCHost:        cfg.RPCHost,
				Endpoint:       cfg.Endpoint,
				CandyMachineID: encodeKey(cfg.CandyMachineID),
				TxTimeout:      cfg.TxTimeout.String(),
				Error:          cfg.Error,
			}
			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Network:          %s\n", out.Network)
			fmt.Fprintf(w, "RPC Host:         %s\n", out.RPCHost)
			fmt.Fprintf(w, "Endpoint:         %s\n", out.Endpoint)
			if len(out.CandyMachineID) > 0 {
				fmt.Fprintf(w, "Candy Machine ID: %s\n", out.CandyMachineID)
			} else {
				fmt.Fprintf(w, "Candy Machine ID: (none)\n")
			}
			fmt.Fprintf(w, "TX Timeout:       %s\n", out.TxTimeout)
			if out.Error != nil {
				fmt.Fprintf(w, "\nError: %s\n", out.Error.Message)
			}
			return nil
		},
	}
}

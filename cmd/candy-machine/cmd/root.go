package cmd

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"io"
	"os"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/code-payments/candy-machine/pkg/app"
	"github.com/code-payments/candy-machine/pkg/candymachine"
	"github.com/code-payments/candy-machine/pkg/solana"
)

// newSolanaClient is swapped out in tests.
var newSolanaClient = solana.New

type options struct {
	cfgFile      string
	jsonOut      bool
	rpcRateLimit float64
	overrides    candymachine.Overrides
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "candy-machine",
		Short: "Derive candy machine mint accounts",
		Long: `candy-machine resolves the mint configuration and derives the accounts
needed to mint from a candy machine.

Configuration (in order of priority):
  1. Command-line flags (--network, --rpc-host, --candy-machine-id, --tx-timeout)
  2. Environment variables (REACT_APP_SOLANA_NETWORK, REACT_APP_SOLANA_RPC_HOST,
     REACT_APP_CANDY_MACHINE_ID, REACT_APP_TX_TIMEOUT)

Logging is configured with --log-level, LOG_LEVEL and LOG_FORMAT, or the
config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := app.LoadBaseConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			app.ConfigureLogger(config)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "config.yaml", "configuration file path")
	flags.StringVar(&opts.overrides.Network, "network", "", "cluster name (or "+candymachine.NetworkConfigEnvName+")")
	flags.StringVar(&opts.overrides.RPCHost, "rpc-host", "", "RPC endpoint (or "+candymachine.RPCHostConfigEnvName+")")
	flags.StringVar(&opts.overrides.CandyMachineID, "candy-machine-id", "", "candy machine address (or "+candymachine.CandyMachineIDConfigEnvName+")")
	flags.DurationVar(&opts.overrides.TxTimeout, "tx-timeout", 0, "transaction timeout (or "+candymachine.TxTimeoutConfigEnvName+")")
	flags.Float64Var(&opts.rpcRateLimit, "rpc-rate-limit", 0, "maximum RPC requests per second (0 is unlimited)")
	flags.BoolVar(&opts.jsonOut, "json", false, "output in JSON format")
	flags.String("log-level", "info", "log level (or LOG_LEVEL)")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newConfigCmd(opts),
		newATACmd(opts),
		newGatewayCmd(opts),
		newPlanCmd(opts),
	)

	return rootCmd
}

func (o *options) resolveConfig(ctx context.Context) *candymachine.AppConfig {
	provider := candymachine.WithOverrides(candymachine.WithEnvConfigs(), &o.overrides)
	return candymachine.ResolveConfig(ctx, provider, solana.ClusterEndpoints)
}

func parseKeyArg(name, value string) (ed25519.PublicKey, error) {
	key, err := solana.ParsePublicKey(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}
	return key, nil
}

func encodeKey(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	return base58.Encode(key)
}

// printJSON outputs data as formatted JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

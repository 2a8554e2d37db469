package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpchttp "github.com/tendermint/tendermint/rpc/client/http"

	"github.com/GPTx-global/pricefeed/relayer/config"
	"github.com/GPTx-global/pricefeed/relayer/daemon"
	"github.com/GPTx-global/pricefeed/relayer/log"
	"github.com/GPTx-global/pricefeed/relayer/submitter"
	pricefeedcli "github.com/GPTx-global/pricefeed/x/pricefeed/client/cli"
	pricequerycli "github.com/GPTx-global/pricefeed/x/pricequery/client/cli"
)

const (
	envPrefix     = "RELAYERD"
	flagLogLevel  = "log-level"
	flagLogToFile = "log-to-file"
)

func main() {
	if err := Execute(NewRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs rootCmd with an empty client context in place, which the
// persistent pre-run fills in from flags.
func Execute(rootCmd *cobra.Command) error {
	ctx := context.WithValue(context.Background(), client.ClientContextKey, &client.Context{})
	return rootCmd.ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relayerd",
		Short: "Price feed relayer daemon",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix(envPrefix)
			viper.AutomaticEnv()
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			initClientCtx := client.Context{}.
				WithLegacyAmino(submitter.NewCodec()).
				WithOutput(cmd.OutOrStdout())
			return client.SetCmdClientContextHandler(initClientCtx, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flags.FlagHome, defaultHome(), "relayer home directory")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (debug|info|error|none)")

	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(pricefeedcli.GetQueryCmd(), pricequerycli.GetQueryCmd())

	rootCmd.AddCommand(InitCmd(), StartCmd(), queryCmd)
	return rootCmd
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".relayerd"
	}
	return filepath.Join(home, ".relayerd")
}

// InitCmd writes the default config into the home directory.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteDefault(viper.GetString(flags.FlagHome))
			if err != nil {
				return err
			}
			cmd.Printf("config written to %s\n", path)
			return nil
		},
	}
}

// StartCmd runs the relayer until interrupted.
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start relaying prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := viper.GetString(flags.FlagHome)
			level := viper.GetString(flagLogLevel)

			if err := log.InitLogger(level); err != nil {
				return err
			}
			if viper.GetBool(flagLogToFile) {
				if _, err := log.ResetLogger(home, level); err != nil {
					return err
				}
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}
			cfg.Print()

			return start(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Bool(flagLogToFile, false, "write logs into <home>/logs")
	return cmd
}

func start(parent context.Context, cfg config.Config) error {
	rpcClient, err := rpchttp.New(cfg.Chain.Endpoint, "/websocket")
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	if err := rpcClient.Start(); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}
	defer func() {
		if err := rpcClient.Stop(); err != nil {
			log.Errorf("failed to stop client: %v", err)
		}
	}()

	output, closeOutput, err := openOutput(cfg.Relayer.Output)
	if err != nil {
		return err
	}
	defer closeOutput()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	d := daemon.New(cfg, rpcClient, daemon.NewFetcher(cfg), submitter.NewGenerateOnly(output, cfg.Chain.ID))
	if err := d.Start(ctx); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer stopCancel()
	d.Stop(stopCtx)
	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output %s: %w", path, err)
	}
	return file, func() { _ = file.Close() }, nil
}

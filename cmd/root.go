package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/cmd/apicmd"
	"github/chapool/cngn-go/cmd/env"
	"github/chapool/cngn-go/cmd/mnemonic"
	"github/chapool/cngn-go/cmd/networks"
	"github/chapool/cngn-go/cmd/server"
	"github/chapool/cngn-go/cmd/wallet"
	"github/chapool/cngn-go/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "cngn",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Multi-network wallet generator and cNGN merchant API client.
Requires configuration through ENV.`, config.ModuleName),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		apicmd.New(),
		env.New(),
		mnemonic.New(),
		networks.New(),
		server.New(),
		wallet.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

package mnemonic

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/util/command"
	"github/chapool/cngn-go/internal/wallet/seed"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("mnemonic",
		newNew(),
		newValidate(),
	)
}

func newNew() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Prints a fresh 12 word BIP-39 mnemonic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mnemonic, err := seed.GenerateMnemonic()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)

			return nil
		},
	}
}

func newValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <mnemonic>",
		Short: "Checks a BIP-39 mnemonic's words and checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !seed.ValidateMnemonic(args[0]) {
				return seed.ErrInvalidMnemonic
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Mnemonic is valid.")

			return nil
		},
	}
}

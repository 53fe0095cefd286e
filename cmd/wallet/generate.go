package wallet

import (
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/wallet/network"
)

func newGenerate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a new wallet",
		Long: `Generates a fresh 12 word mnemonic and derives a validated wallet for the given network.

The mnemonic and private key are printed to stdout, keep the output safe.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := network.Parse(cmd.Flag(networkFlag).Value.String())
			if err != nil {
				return err
			}

			asJSON, err := cmd.Flags().GetBool(jsonFlag)
			if err != nil {
				return err
			}

			record, err := newService().GenerateWalletAddress(cmd.Context(), n)
			if err != nil {
				return err
			}
			defer record.Clear()

			return printRecord(cmd.OutOrStdout(), record, nil, asJSON)
		},
	}

	cmd.Flags().StringP(networkFlag, "n", network.ETH.String(), "Network to generate the wallet for")
	cmd.Flags().Bool(jsonFlag, false, "Print the wallet as JSON")

	return cmd
}

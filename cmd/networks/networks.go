package networks

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/util/command"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/network"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("networks",
		newList(),
	)
}

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the supported networks and their derivation paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCURVE\tPATH\tVALIDATED")

			for _, n := range network.All() {
				params, err := network.Lookup(n)
				if err != nil {
					return err
				}

				_, validated := address.ValidatorFor(n)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", n, params.Name, params.Curve, params.Path, validated)
			}

			return w.Flush()
		},
	}
}

package apicmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/util/command"
)

const (
	pageFlag  = "page"
	limitFlag = "limit"
)

func New() *cobra.Command {
	cmd := command.NewSubcommandGroup("api",
		newBalance(),
		newTransactions(),
		newBanks(),
		newVerifyWithdrawal(),
	)
	cmd.Short = "Calls the cNGN merchant API with the configured credentials"

	return cmd
}

// run executes call against the configured client and prints its result as JSON.
func run(cmd *cobra.Command, call func(ctx context.Context, s *api.Server) (any, error)) error {
	return command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		res, err := call(ctx, s)
		if err != nil {
			return err
		}

		raw, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal response")
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(raw))

		return nil
	})
}

func newBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Prints the merchant balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *api.Server) (any, error) {
				return s.CNGN.GetBalance(ctx)
			})
		},
	}
}

func newTransactions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Prints a page of the transaction history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := cmd.Flags().GetInt(pageFlag)
			if err != nil {
				return err
			}

			limit, err := cmd.Flags().GetInt(limitFlag)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, s *api.Server) (any, error) {
				return s.CNGN.GetTransactionHistory(ctx, page, limit)
			})
		},
	}

	cmd.Flags().Int(pageFlag, 1, "Page to fetch")
	cmd.Flags().Int(limitFlag, 10, "Transactions per page")

	return cmd
}

func newBanks() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "Lists the banks supported for redemption",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *api.Server) (any, error) {
				return s.CNGN.GetBanks(ctx)
			})
		},
	}
}

func newVerifyWithdrawal() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-withdrawal <trxRef>",
		Short: "Prints the state of a withdrawal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *api.Server) (any, error) {
				return s.CNGN.VerifyWithdrawal(ctx, args[0])
			})
		},
	}
}

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/util"
)

const (
	LogKeyCmd = "cmd"

	shutdownTimeout = 10 * time.Second
)

// NewSubcommandGroup returns a command that only groups subcommands and prints its help when run directly.
func NewSubcommandGroup(name string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("%s related subcommands", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes the logger and a server (without starting echo) and hands it to f.
// The server is shut down once f returns.
func WithServer(ctx context.Context, config config.Server, f func(ctx context.Context, s *api.Server) error) error {
	util.InitLogger(config.Logger)

	s, err := api.InitNewServer(config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return f(log.Logger.WithContext(ctx), s)
}

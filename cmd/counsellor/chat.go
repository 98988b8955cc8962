package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	logpkg "github.com/kailas-cloud/counsellor/internal/logger"
	"github.com/kailas-cloud/counsellor/internal/transport/cli"
)

func newChatCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx = logpkg.WithLogger(ctx, a.logger)
			repl := cli.NewREPL(a.ask, cmd.InOrStdin(), cmd.OutOrStdout(), a.ask.Organization())
			return repl.Run(ctx)
		},
	}
}

func newAskCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx = logpkg.WithLogger(ctx, a.logger)
			return cli.AskOnce(ctx, a.ask, cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

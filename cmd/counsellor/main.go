package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	env        string
	configPath string
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "counsellor",
		Short:         "Routed RAG assistant over a vector knowledge base",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.env, "env", "",
		"environment name selecting config/<env>.yaml (default: $ENV or local)")
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"explicit config file path (overrides --env)")

	root.AddCommand(
		newServeCmd(flags),
		newChatCmd(flags),
		newAskCmd(flags),
		newVersionCmd(),
	)
	return root
}

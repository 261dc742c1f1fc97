package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "translatechat",
		Short:         "Chat across languages with live translation and an offline fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./config.yml or $HOME/.config/translatechat/config.yml)")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCommand.AddCommand(newChatCommand())
	rootCommand.AddCommand(newTranslateCommand())
	rootCommand.AddCommand(newResolveCommand())
	rootCommand.AddCommand(newLanguagesCommand())
	rootCommand.AddCommand(newServeCommand())
	return rootCommand
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(logger)
}

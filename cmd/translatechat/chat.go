package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/translatechat/internal/assets"
	"github.com/at-ishikawa/translatechat/internal/chat"
	"github.com/at-ishikawa/translatechat/internal/cli"
	"github.com/at-ishikawa/translatechat/internal/clipboard"
	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/speech"
)

func newChatCommand() *cobra.Command {
	var source, target language.Code

	command := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive translation chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, target := languagesOrDefault(cfg.Translation, source, target)
			if source == language.Auto {
				return fmt.Errorf("the chat needs a source language, got %s", source)
			}
			if target == language.Auto {
				return fmt.Errorf("the chat needs a target language, got %s", target)
			}
			if source == target {
				return fmt.Errorf("the chat cannot translate %s into itself", language.Name(source))
			}

			tmpl, err := assets.ParseExchangeTemplate(cfg.Templates.ExchangeTemplate)
			if err != nil {
				return fmt.Errorf("assets.ParseExchangeTemplate > %w", err)
			}

			translationClient := newTranslationClient(cfg.Translation)
			defer func() {
				_ = translationClient.Close()
			}()

			console := cli.NewConsole(os.Stdout)
			notifier := cli.NewNotifier(console)
			controller := chat.NewController(chat.NewSession(), translationClient, notifier, source, target)
			chatCLI := cli.NewChatCLI(
				controller,
				notifier,
				speech.New(cfg.Speech.RecognizeCommand, cfg.Speech.SynthesizeCommand),
				clipboard.NewSystem(),
				tmpl,
				console,
			)

			fmt.Println("Translation chat started! Type /help to see the commands.")
			fmt.Println()
			return chatCLI.Run(cmd.Context())
		},
	}

	flags := command.Flags()
	flags.Var(&source, "from", "language you type in (default from the configuration)")
	flags.Var(&target, "to", "language to translate into (default from the configuration)")
	return command
}

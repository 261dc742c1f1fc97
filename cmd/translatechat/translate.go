package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/translatechat/internal/language"
)

func newTranslateCommand() *cobra.Command {
	var source, target language.Code

	command := &cobra.Command{
		Use:   "translate <text>...",
		Short: "Translate text once and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, target := languagesOrDefault(cfg.Translation, source, target)
			if target == language.Auto {
				return fmt.Errorf("the target language must not be %s", target)
			}

			translationClient := newTranslationClient(cfg.Translation)
			defer func() {
				_ = translationClient.Close()
			}()

			translated := translationClient.Translate(cmd.Context(), strings.Join(args, " "), source, target)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), translated)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&source, "from", "language of the text, or auto to detect it")
	flags.Var(&target, "to", "language to translate into")
	return command
}

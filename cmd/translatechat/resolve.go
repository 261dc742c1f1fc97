package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/translatechat/internal/dictionary"
	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/resolver"
)

// newResolveCommand translates with the offline dictionary only, which is what the
// chat shows when the translation endpoint cannot be reached.
func newResolveCommand() *cobra.Command {
	source := language.Code("en")
	target := language.Code("es")
	var showStep, list bool

	command := &cobra.Command{
		Use:   "resolve <text>...",
		Short: "Translate text with the offline dictionary",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store := dictionary.Default()
			if list {
				entries := store.Entries(source, target)
				if len(entries) == 0 {
					return fmt.Errorf("no dictionary entries from %s to %s", source, target)
				}
				for _, entry := range entries {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Phrase, entry.Translation)
				}
				return nil
			}

			result := resolver.New(store).ResolveWithStep(strings.Join(args, " "), source, target)
			if showStep {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.Step, result.Text)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&source, "from", "language of the text")
	flags.Var(&target, "to", "language to translate into")
	flags.BoolVar(&showStep, "show-step", false, "print the rule that produced the translation")
	flags.BoolVar(&list, "list", false, "list the dictionary entries of the language pair instead of translating")
	return command
}

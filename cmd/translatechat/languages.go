package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/translatechat/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range language.All() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\t%s\n", lang.Code, lang.Flag, lang.Name, language.Locale(lang.Code))
			}
			return nil
		},
	}
}

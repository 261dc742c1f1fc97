package main

import (
	"fmt"

	"github.com/at-ishikawa/translatechat/internal/config"
	"github.com/at-ishikawa/translatechat/internal/dictionary"
	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/resolver"
	"github.com/at-ishikawa/translatechat/internal/translation"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newTranslationClient(cfg config.TranslationConfig) *translation.Client {
	return translation.NewClient(translation.Config{
		Endpoint:       cfg.Endpoint,
		FallbackDelay:  cfg.FallbackDelay,
		FallbackJitter: cfg.FallbackJitter,
	}, resolver.New(dictionary.Default()))
}

// languagesOrDefault fills languages that were not given on the command line from the configuration.
func languagesOrDefault(cfg config.TranslationConfig, source, target language.Code) (language.Code, language.Code) {
	if source == "" {
		source = language.Code(cfg.SourceLanguage)
	}
	if target == "" {
		target = language.Code(cfg.TargetLanguage)
	}
	return source, target
}

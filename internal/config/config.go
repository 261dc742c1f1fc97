package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/translatechat/internal/translation"
)

type Config struct {
	Translation TranslationConfig `mapstructure:"translation"`
	Server      ServerConfig      `mapstructure:"server"`
	Provider    ProviderConfig    `mapstructure:"provider"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	Templates   TemplatesConfig   `mapstructure:"templates"`
}

// TranslationConfig configures the chat side: where translations are requested
// and how long to wait before falling back to the dictionary.
type TranslationConfig struct {
	Endpoint       string        `mapstructure:"endpoint" validate:"required,url"`
	FallbackDelay  time.Duration `mapstructure:"fallback_delay" validate:"gte=0"`
	FallbackJitter time.Duration `mapstructure:"fallback_jitter" validate:"gte=0"`
	SourceLanguage string        `mapstructure:"source_language" validate:"required,source_language"`
	TargetLanguage string        `mapstructure:"target_language" validate:"required,language"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	Path string `mapstructure:"path" validate:"required,startswith=/"`
}

type ProviderConfig struct {
	Name   string       `mapstructure:"name" validate:"oneof=google openai"`
	Google GoogleConfig `mapstructure:"google"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

type GoogleConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type CacheConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=none file mysql"`
	Directory string `mapstructure:"directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	// ReadyAttempts is how many times the server pings the database before giving up.
	ReadyAttempts uint `mapstructure:"ready_attempts" validate:"min=1"`
}

// SpeechConfig holds the commands used for voice input and playback.
// {locale} is replaced with a locale such as es-ES. An empty command disables the feature.
type SpeechConfig struct {
	RecognizeCommand  []string `mapstructure:"recognize_command"`
	SynthesizeCommand []string `mapstructure:"synthesize_command"`
}

type TemplatesConfig struct {
	ExchangeTemplate string `mapstructure:"exchange_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/translatechat")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("translation.endpoint", "http://localhost:8080/functions/v1/translate")
	v.SetDefault("translation.fallback_delay", translation.DefaultFallbackDelay)
	v.SetDefault("translation.fallback_jitter", translation.DefaultFallbackJitter)
	v.SetDefault("translation.source_language", "en")
	v.SetDefault("translation.target_language", "es")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.path", "/functions/v1/translate")
	v.SetDefault("provider.name", "google")
	v.SetDefault("provider.google.base_url", "https://translation.googleapis.com")
	v.SetDefault("provider.openai.model", "gpt-4o-mini")
	v.SetDefault("provider.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("cache.backend", "none")
	v.SetDefault("cache.directory", filepath.Join("cache", "translations"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.ready_attempts", 5)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.exchange_template", "")

	// Provider credentials are read from environment variables
	if err := v.BindEnv("provider.google.api_key", "GOOGLE_TRANSLATE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GOOGLE_TRANSLATE_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("provider.openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("provider.openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, fieldMessage(e, loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

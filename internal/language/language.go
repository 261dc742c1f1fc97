// Package language holds the fixed catalog of languages offered by the chat.
package language

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Code is a short language identifier such as "en" or "es".
type Code string

// Auto lets the translation backend detect the source language.
const Auto Code = "auto"

// Language is one entry of the catalog.
type Language struct {
	Code Code
	Name string
	Flag string
}

var catalog = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
}

var _ pflag.Value = (*Code)(nil)

// All returns a copy of the catalog in display order.
func All() []Language {
	languages := make([]Language, len(catalog))
	copy(languages, catalog)
	return languages
}

// Lookup finds a language by code.
func Lookup(code Code) (Language, bool) {
	for _, l := range catalog {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupported reports whether code is in the catalog.
func IsSupported(code Code) bool {
	_, ok := Lookup(code)
	return ok
}

// Name returns the English name of code, or the code itself when it is unknown.
func Name(code Code) string {
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	return string(code)
}

// Label returns "flag name" for display in pickers.
func Label(code Code) string {
	if l, ok := Lookup(code); ok {
		return l.Flag + " " + l.Name
	}
	return string(code)
}

// TargetOptions lists the languages a user can translate into from source.
func TargetOptions(source Code) []Language {
	options := make([]Language, 0, len(catalog))
	for _, l := range catalog {
		if l.Code == source {
			continue
		}
		options = append(options, l)
	}
	return options
}

// Swap exchanges the source and target languages.
func Swap(source, target Code) (Code, Code) {
	return target, source
}

func (c *Code) Set(val string) error {
	code := Code(strings.ToLower(strings.TrimSpace(val)))
	if code == Auto || IsSupported(code) {
		*c = code
		return nil
	}
	return fmt.Errorf("invalid language: %s", val)
}

func (c Code) String() string {
	return string(c)
}

func (c *Code) Type() string {
	return "language"
}

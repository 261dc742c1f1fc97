package assets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

const exchangeTemplateName = "exchange.txt.go.tmpl"

//go:embed templates/exchange.txt.go.tmpl
var fallbackExchangeTemplate string

// ExchangeView is the data an exchange template renders.
type ExchangeView struct {
	Position       int
	Time           string
	OriginalText   string
	TranslatedText string
	Pending        bool
	SourceLanguage string
	TargetLanguage string
}

func NewExchangeView(
	position int,
	createdAt time.Time,
	originalText, translatedText string,
	translated bool,
	sourceLanguage, targetLanguage string,
) ExchangeView {
	return ExchangeView{
		Position:       position,
		Time:           createdAt.Format(time.Kitchen),
		OriginalText:   originalText,
		TranslatedText: translatedText,
		Pending:        !translated,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}
}

// ParseExchangeTemplate parses the template at templatePath, or the embedded one when the path is empty.
func ParseExchangeTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, exchangeTemplateName, fallbackExchangeTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
	}

	if templatePath == "" {
		tmpl, err := template.New(fallbackName).
			Funcs(funcMap).
			Parse(fallbackTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded template: %w", err)
		}
		return tmpl, nil
	}

	// If template path is provided, it must be valid.
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template file not found or accessible: %w", err)
	}

	fileName := filepath.Base(templatePath)
	tmpl, err := template.New(fileName).
		Funcs(funcMap).
		ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", templatePath, err)
	}
	return tmpl, nil
}

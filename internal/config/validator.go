package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/translatechat/internal/language"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := validate.RegisterTranslation("file", trans, func(ut ut.Translator) error {
		return ut.Add("file", "{0} must be an existing and readable file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("file", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register file translation: %w", err)
	}

	if err := validate.RegisterValidation("language", isSupportedLanguage); err != nil {
		return nil, nil, fmt.Errorf("failed to register language validation: %w", err)
	}
	if err := validate.RegisterValidation("source_language", isSourceLanguage); err != nil {
		return nil, nil, fmt.Errorf("failed to register source_language validation: %w", err)
	}
	for _, tag := range []string{"language", "source_language"} {
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, "{0} must be a supported language code, got {1}", true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."), fmt.Sprint(fe.Value()))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}

// fieldMessage translates a validation error and names the field by its full config path,
// e.g. "provider.name" instead of "name".
func fieldMessage(fe validator.FieldError, trans ut.Translator) string {
	message := fe.Translate(trans)
	path := strings.TrimPrefix(fe.Namespace(), "Config.")
	if strings.HasPrefix(message, path) {
		return message
	}
	if rest, ok := strings.CutPrefix(message, fe.Field()); ok {
		return path + rest
	}
	return path + ": " + message
}

func isSupportedLanguage(fl validator.FieldLevel) bool {
	return language.IsSupported(language.Code(fl.Field().String()))
}

// isSourceLanguage also accepts auto, since the provider can detect the source.
func isSourceLanguage(fl validator.FieldLevel) bool {
	code := language.Code(fl.Field().String())
	return code == language.Auto || language.IsSupported(code)
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}

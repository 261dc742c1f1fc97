// Package resolver translates text offline with the phrase dictionary.
//
// Resolution never fails. It tries, in order: an exact phrase match, the longest
// contained phrase, word by word substitution, and finally a templated placeholder
// in the target language.
package resolver

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/translatechat/internal/dictionary"
	"github.com/at-ishikawa/translatechat/internal/language"
)

const (
	// minPhraseLength excludes short keys like "no" or "hi" from containment matching.
	minPhraseLength = 3

	trimmedPunctuation = ".,!?;:"
	genericTemplate    = "Translation"
)

// Step names the rule that produced a translation.
type Step string

const (
	StepExact    Step = "exact"
	StepPhrase   Step = "phrase"
	StepWord     Step = "word"
	StepTemplate Step = "template"
)

// Chooser returns an index in [0, n).
type Chooser func(n int) int

// Result is a translation along with the step that produced it.
type Result struct {
	Text string
	Step Step
}

type Resolver struct {
	store  *dictionary.Store
	choose Chooser
}

type Option func(*Resolver)

// WithChooser replaces the random template choice.
func WithChooser(choose Chooser) Option {
	return func(r *Resolver) {
		r.choose = choose
	}
}

func New(store *dictionary.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		choose: rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the best dictionary translation of text.
func (r *Resolver) Resolve(text string, source, target language.Code) string {
	return r.ResolveWithStep(text, source, target).Text
}

func (r *Resolver) ResolveWithStep(text string, source, target language.Code) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if pair, ok := r.store.Lookup(source, target); ok {
		if translation, ok := pair.Translate(normalized); ok {
			return r.found(StepExact, normalized, translation)
		}

		for _, phrase := range pair.Phrases() {
			if utf8.RuneCountInString(phrase) <= minPhraseLength {
				// Phrases are sorted longest first.
				break
			}
			if strings.Contains(normalized, phrase) {
				translation, _ := pair.Translate(phrase)
				return r.found(StepPhrase, phrase, translation)
			}
		}

		if translation, ok := translateWords(pair, normalized); ok {
			return r.found(StepWord, normalized, translation)
		}
	}

	return Result{
		Text: r.template(text, target),
		Step: StepTemplate,
	}
}

func (r *Resolver) found(step Step, phrase, translation string) Result {
	slog.Default().Debug("dictionary translation found",
		"step", step,
		"phrase", phrase,
		"translation", translation,
	)
	return Result{Text: translation, Step: step}
}

func translateWords(pair dictionary.Pair, normalized string) (string, bool) {
	words := strings.Split(normalized, " ")
	translated := make([]string, 0, len(words))
	hasTranslation := false
	for _, word := range words {
		if translation, ok := pair.Translate(cleanWord(word)); ok {
			translated = append(translated, translation)
			hasTranslation = true
			continue
		}
		translated = append(translated, word)
	}
	if !hasTranslation {
		return "", false
	}
	return strings.Join(translated, " "), true
}

// cleanWord drops the first punctuation mark in word, so "hello," becomes "hello".
func cleanWord(word string) string {
	if i := strings.IndexAny(word, trimmedPunctuation); i >= 0 {
		return word[:i] + word[i+1:]
	}
	return word
}

func (r *Resolver) template(text string, target language.Code) string {
	templates := r.store.Templates(target)
	prefix := genericTemplate
	if len(templates) > 0 {
		prefix = templates[r.choose(len(templates))]
	}
	return fmt.Sprintf("%s: \"%s\"", prefix, text)
}

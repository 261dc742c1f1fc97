// Package dictionary provides the static phrase dictionary compiled into the binary.
package dictionary

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/translatechat/internal/language"
)

//go:embed data/dictionary.yml
var embeddedDictionary []byte

// Entry is a single phrase and its fixed translation for a language pair.
type Entry struct {
	SourceLanguage language.Code
	TargetLanguage language.Code
	Phrase         string
	Translation    string
}

type document struct {
	Pairs     map[language.Code]map[language.Code]map[string]string `yaml:"pairs"`
	Templates map[language.Code][]string                            `yaml:"templates"`
}

// Pair is the read-only phrase table for one source and target language.
type Pair struct {
	translations map[string]string
	phrases      []string
}

// Translate returns the translation of an exact phrase.
func (p Pair) Translate(phrase string) (string, bool) {
	translation, ok := p.translations[phrase]
	return translation, ok
}

// Phrases returns every phrase, longest first. Phrases of equal length are in lexical order.
func (p Pair) Phrases() []string {
	return p.phrases
}

// Len is the number of phrases in the pair.
func (p Pair) Len() int {
	return len(p.translations)
}

// Store is immutable once loaded and safe for concurrent reads.
type Store struct {
	pairs     map[language.Code]map[language.Code]Pair
	templates map[language.Code][]string
}

var loadDefault = sync.OnceValues(func() (*Store, error) {
	return Load(bytes.NewReader(embeddedDictionary))
})

// Default returns the store built from the embedded dictionary.
func Default() *Store {
	store, err := loadDefault()
	if err != nil {
		// The embedded document is part of the build, so this only fails on a broken build.
		panic(fmt.Errorf("dictionary.Load(embedded) > %w", err))
	}
	return store
}

// Load parses a dictionary document.
func Load(r io.Reader) (*Store, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml.Decode > %w", err)
	}

	store := &Store{
		pairs:     make(map[language.Code]map[language.Code]Pair, len(doc.Pairs)),
		templates: make(map[language.Code][]string, len(doc.Templates)),
	}
	for source, targets := range doc.Pairs {
		store.pairs[source] = make(map[language.Code]Pair, len(targets))
		for target, translations := range targets {
			for phrase := range translations {
				if phrase != strings.ToLower(strings.TrimSpace(phrase)) {
					return nil, fmt.Errorf("phrase %q in %s-%s must be lower case and trimmed", phrase, source, target)
				}
			}
			store.pairs[source][target] = newPair(translations)
		}
	}
	for target, templates := range doc.Templates {
		store.templates[target] = append([]string(nil), templates...)
	}
	return store, nil
}

func newPair(translations map[string]string) Pair {
	phrases := make([]string, 0, len(translations))
	for phrase := range translations {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(phrases[i]), utf8.RuneCountInString(phrases[j])
		if li != lj {
			return li > lj
		}
		return phrases[i] < phrases[j]
	})
	return Pair{
		translations: translations,
		phrases:      phrases,
	}
}

// Lookup returns the phrase table for a language pair.
func (s *Store) Lookup(source, target language.Code) (Pair, bool) {
	pair, ok := s.pairs[source][target]
	return pair, ok
}

// Templates returns the fallback phrase templates for a target language.
func (s *Store) Templates(target language.Code) []string {
	return s.templates[target]
}

// Entries lists every entry of a language pair in phrase order.
func (s *Store) Entries(source, target language.Code) []Entry {
	pair, ok := s.Lookup(source, target)
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, pair.Len())
	for _, phrase := range pair.Phrases() {
		translation, _ := pair.Translate(phrase)
		entries = append(entries, Entry{
			SourceLanguage: source,
			TargetLanguage: target,
			Phrase:         phrase,
			Translation:    translation,
		})
	}
	return entries
}

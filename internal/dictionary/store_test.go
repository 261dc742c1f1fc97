package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/translatechat/internal/language"
)

func TestDefault(t *testing.T) {
	store := Default()
	require.NotNil(t, store)

	tests := []struct {
		name   string
		source language.Code
		target language.Code
		phrase string
		want   string
	}{
		{name: "en to es word", source: "en", target: "es", phrase: "hello", want: "hola"},
		{name: "en to es phrase", source: "en", target: "es", phrase: "hi guys how are you doing", want: "hola chicos, ¿cómo les va?"},
		{name: "en to fr", source: "en", target: "fr", phrase: "thank you", want: "merci"},
		{name: "en to de", source: "en", target: "de", phrase: "good night", want: "gute nacht"},
		{name: "es to en", source: "es", target: "en", phrase: "¿cómo estás?", want: "how are you"},
		{name: "fr to en", source: "fr", target: "en", phrase: "s'il vous plaît", want: "please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := store.Lookup(tt.source, tt.target)
			require.True(t, ok)
			got, ok := pair.Translate(tt.phrase)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := store.Lookup("de", "en")
	assert.False(t, ok)
	assert.Len(t, store.Templates("es"), 5)
	assert.Empty(t, store.Templates("ja"))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		document      string
		wantErr       string
		wantPhrases   []string
		wantTemplates []string
	}{
		{
			name: "phrases ordered longest first",
			document: `pairs:
  en:
    es:
      "no": "no"
      "how are you": "¿cómo estás?"
      "hello": "hola"
      "thanks": "gracias"
templates:
  es:
    - "Se dice"
`,
			wantPhrases:   []string{"how are you", "thanks", "hello", "no"},
			wantTemplates: []string{"Se dice"},
		},
		{
			name: "equal lengths sorted lexically",
			document: `pairs:
  en:
    es:
      "bbb": "b"
      "aaa": "a"
`,
			wantPhrases: []string{"aaa", "bbb"},
		},
		{
			name: "upper case phrase is rejected",
			document: `pairs:
  en:
    es:
      "Hello": "hola"
`,
			wantErr: "must be lower case and trimmed",
		},
		{
			name:     "invalid yaml",
			document: "pairs: [",
			wantErr:  "yaml.Decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Load(strings.NewReader(tt.document))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			pair, ok := store.Lookup("en", "es")
			require.True(t, ok)
			assert.Equal(t, tt.wantPhrases, pair.Phrases())
			assert.Equal(t, tt.wantTemplates, store.Templates("es"))
		})
	}
}

func TestStore_Entries(t *testing.T) {
	store, err := Load(strings.NewReader(`pairs:
  en:
    es:
      "hi": "hola"
      "thank you": "gracias"
`))
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{SourceLanguage: "en", TargetLanguage: "es", Phrase: "thank you", Translation: "gracias"},
		{SourceLanguage: "en", TargetLanguage: "es", Phrase: "hi", Translation: "hola"},
	}, store.Entries("en", "es"))
	assert.Nil(t, store.Entries("es", "en"))
}

// Package speech captures and plays back spoken text through external commands.
package speech

import (
	"context"

	"golang.org/x/text/language"
)

//go:generate mockgen -source=speech.go -destination=../mocks/speech/mock_speech.go -package=mock_speech

// Recognizer captures one utterance and returns its transcript.
type Recognizer interface {
	Recognize(ctx context.Context, locale language.Tag) (string, error)
}

// Synthesizer reads text aloud. Speak returns once playback has started.
type Synthesizer interface {
	Speak(text string, locale language.Tag) error
}

// Capability tells whether voice input is usable in this environment.
// Synthesizer is nil when playback is not configured.
type Capability struct {
	Available   bool
	Recognizer  Recognizer
	Synthesizer Synthesizer
}

func Available(recognizer Recognizer, synthesizer Synthesizer) Capability {
	return Capability{
		Available:   recognizer != nil,
		Recognizer:  recognizer,
		Synthesizer: synthesizer,
	}
}

func Unavailable() Capability {
	return Capability{}
}

func (c Capability) CanSpeak() bool {
	return c.Synthesizer != nil
}

// New builds a capability from command lines. An empty command disables that side.
func New(recognizeCommand, synthesizeCommand []string) Capability {
	var recognizer Recognizer
	if len(recognizeCommand) > 0 {
		recognizer = NewCommandRecognizer(recognizeCommand)
	}
	var synthesizer Synthesizer
	if len(synthesizeCommand) > 0 {
		synthesizer = NewCommandSynthesizer(synthesizeCommand)
	}
	if recognizer == nil && synthesizer == nil {
		return Unavailable()
	}
	return Available(recognizer, synthesizer)
}

package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/text/language"
)

const (
	localePlaceholder = "{locale}"
	textPlaceholder   = "{text}"
)

var ErrNoTranscript = errors.New("no speech was recognized")

// CommandRecognizer runs a command that records one utterance and prints its transcript.
type CommandRecognizer struct {
	command []string
}

func NewCommandRecognizer(command []string) *CommandRecognizer {
	return &CommandRecognizer{
		command: command,
	}
}

func (r *CommandRecognizer) Recognize(ctx context.Context, locale language.Tag) (string, error) {
	args := expand(r.command, locale, "")
	output, err := exec.CommandContext(ctx, args[0], args[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("exec %s > %w", args[0], err)
	}

	transcript := strings.TrimSpace(string(output))
	if transcript == "" {
		return "", ErrNoTranscript
	}
	return transcript, nil
}

// CommandSynthesizer starts a text-to-speech command without waiting for it.
// The text replaces {text} in the arguments, or is appended when no argument has it.
type CommandSynthesizer struct {
	command []string
}

func NewCommandSynthesizer(command []string) *CommandSynthesizer {
	return &CommandSynthesizer{
		command: command,
	}
}

func (s *CommandSynthesizer) Speak(text string, locale language.Tag) error {
	args := expand(s.command, locale, text)
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("exec %s > %w", args[0], err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Default().Debug("speech synthesis exited",
				"command", args[0],
				"error", err,
			)
		}
	}()
	return nil
}

func expand(command []string, locale language.Tag, text string) []string {
	args := make([]string, 0, len(command)+1)
	hasText := false
	for _, arg := range command {
		arg = strings.ReplaceAll(arg, localePlaceholder, locale.String())
		if strings.Contains(arg, textPlaceholder) {
			hasText = true
			arg = strings.ReplaceAll(arg, textPlaceholder, text)
		}
		args = append(args, arg)
	}
	if text != "" && !hasText {
		args = append(args, text)
	}
	return args
}

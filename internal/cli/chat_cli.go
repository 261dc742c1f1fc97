// Package cli runs the interactive translation chat in a terminal.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/at-ishikawa/translatechat/internal/assets"
	"github.com/at-ishikawa/translatechat/internal/chat"
	"github.com/at-ishikawa/translatechat/internal/clipboard"
	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/speech"
)

var errEnd = errors.New("end")

const emptyConversation = "Start a conversation by typing or speaking..."

const helpText = `Type a message and press Enter to translate it.

Commands:
  /from <code>                         change the language you type in
  /to <code>                           change the language to translate into
  /swap                                swap the two languages
  /voice                               speak a message instead of typing it
  /speak <n> [original|translation]    read message n aloud
  /copy <n> [original|translation]     copy message n to the clipboard
  /history                             show the conversation
  /languages                           list the supported languages
  /help                                show this help
  /quit                                leave the chat
`

// ChatCLI reads messages and commands from stdin and renders the conversation.
type ChatCLI struct {
	controller   *chat.Controller
	notifier     chat.Notifier
	speech       speech.Capability
	clipboard    clipboard.Writer
	template     *template.Template
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color

	// draft is a voice transcript waiting to be sent with an empty line.
	draft string
}

func NewChatCLI(
	controller *chat.Controller,
	notifier chat.Notifier,
	capability speech.Capability,
	clipboardWriter clipboard.Writer,
	tmpl *template.Template,
	stdout io.Writer,
) *ChatCLI {
	cli := &ChatCLI{
		controller:   controller,
		notifier:     notifier,
		speech:       capability,
		clipboard:    clipboardWriter,
		template:     tmpl,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
	controller.OnChange(cli.render)
	return cli
}

func (cli *ChatCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	cli.printLanguages()
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s\n", cli.italic.Sprint(emptyConversation))

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "\nReceived interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}

	// Show translations that are still on their way.
	cli.controller.Wait()
	return nil
}

// Session handles one line of input.
func (cli *ChatCLI) Session(ctx context.Context) error {
	_, _ = fmt.Fprint(cli.stdoutWriter, cli.prompt())
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	eof := errors.Is(err, io.EOF)

	input := strings.TrimSpace(line)
	if eof && input == "" {
		return errEnd
	}
	if err := cli.handle(ctx, input); err != nil {
		return err
	}
	if eof {
		return errEnd
	}
	return nil
}

func (cli *ChatCLI) handle(ctx context.Context, input string) error {
	if !strings.HasPrefix(input, "/") {
		text := input
		if text == "" {
			text, cli.draft = cli.draft, ""
		} else {
			cli.draft = ""
		}
		return cli.submit(ctx, text)
	}

	fields := strings.Fields(input)
	command, args := fields[0], fields[1:]
	switch command {
	case "/quit", "/exit":
		return errEnd
	case "/help":
		_, _ = fmt.Fprint(cli.stdoutWriter, helpText)
	case "/languages":
		cli.printCatalog()
	case "/history":
		cli.printHistory()
	case "/from":
		cli.changeLanguage(command, args, cli.controller.SetSource)
	case "/to":
		cli.changeLanguage(command, args, cli.controller.SetTarget)
	case "/swap":
		cli.controller.Swap()
		cli.printLanguages()
	case "/voice":
		cli.recordVoice(ctx)
	case "/speak":
		cli.speak(args)
	case "/copy":
		cli.copy(args)
	default:
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Unknown command %s. Type /help to see the commands.\n", command)
	}
	return nil
}

func (cli *ChatCLI) submit(ctx context.Context, text string) error {
	if _, err := cli.controller.Submit(ctx, text); err != nil {
		if errors.Is(err, chat.ErrEmptyText) {
			return nil
		}
		return fmt.Errorf("controller.Submit > %w", err)
	}
	return nil
}

func (cli *ChatCLI) prompt() string {
	source, target := cli.controller.Languages()
	return cli.bold.Sprintf("%s → %s > ", language.Label(source), language.Label(target))
}

func (cli *ChatCLI) printLanguages() {
	source, target := cli.controller.Languages()
	_, _ = fmt.Fprintf(cli.stdoutWriter, "From %s to %s\n", cli.bold.Sprint(language.Label(source)), cli.bold.Sprint(language.Label(target)))
}

func (cli *ChatCLI) printCatalog() {
	_, _ = fmt.Fprintln(cli.stdoutWriter, "Type in (/from):")
	for _, lang := range language.All() {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s  %s %s\n", lang.Code, lang.Flag, lang.Name)
	}
	cli.printTargetOptions()
}

// printTargetOptions lists the languages the current source can be translated into.
func (cli *ChatCLI) printTargetOptions() {
	source, _ := cli.controller.Languages()
	_, _ = fmt.Fprintf(cli.stdoutWriter, "Translate %s into (/to):\n", language.Name(source))
	for _, lang := range language.TargetOptions(source) {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s  %s %s\n", lang.Code, lang.Flag, lang.Name)
	}
}

func (cli *ChatCLI) printHistory() {
	exchanges := cli.controller.Session().Exchanges()
	if len(exchanges) == 0 {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "%s\n", cli.italic.Sprint(emptyConversation))
		return
	}
	for i, exchange := range exchanges {
		cli.renderAt(i+1, exchange)
	}
}

// changeLanguage applies a language picked with /from or /to. The chat always
// speaks a concrete language, so auto is rejected here.
func (cli *ChatCLI) changeLanguage(command string, args []string, set func(language.Code)) {
	if len(args) != 1 {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Usage: %s <code>\n", command)
		if command == "/to" {
			cli.printTargetOptions()
		}
		return
	}
	var code language.Code
	if err := code.Set(args[0]); err != nil || code == language.Auto {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Unsupported language %q. Type /languages to see the codes.\n", args[0])
		return
	}
	set(code)
	cli.printLanguages()
}

func (cli *ChatCLI) recordVoice(ctx context.Context) {
	if !cli.speech.Available {
		cli.notifier.Notify(chat.Notification{
			Title:       "Voice not supported",
			Description: "Voice recognition is not configured",
			Destructive: true,
		})
		return
	}

	source, _ := cli.controller.Languages()
	cli.notifier.Notify(chat.Notification{
		Title:       "Listening...",
		Description: "Speak now to convert speech to text",
	})
	transcript, err := cli.speech.Recognizer.Recognize(ctx, language.Locale(source))
	if err != nil {
		slog.Default().Warn("speech recognition failed", "error", err)
		cli.notifier.Notify(chat.Notification{
			Title:       "Voice recognition failed",
			Description: "Please try again or type your message",
			Destructive: true,
		})
		return
	}

	cli.draft = transcript
	cli.notifier.Notify(chat.Notification{
		Title:       "Voice captured",
		Description: "Speech converted to text successfully",
	})
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s %s\n", cli.bold.Sprint("Heard:"), transcript)
	_, _ = fmt.Fprintln(cli.stdoutWriter, "Press Enter to send it, or type another message.")
}

// pick returns the text and language of one side of the exchange named by args.
func (cli *ChatCLI) pick(command string, args []string) (string, language.Code, bool) {
	if len(args) < 1 || len(args) > 2 {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Usage: %s <n> [original|translation]\n", command)
		return "", "", false
	}
	position, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Usage: %s <n> [original|translation]\n", command)
		return "", "", false
	}
	exchange, ok := cli.controller.Session().At(position)
	if !ok {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "There is no message %d.\n", position)
		return "", "", false
	}

	side := "translation"
	if len(args) == 2 {
		side = args[1]
	}
	switch side {
	case "original":
		return exchange.OriginalText, exchange.SourceLanguage, true
	case "translation":
		translated, ok := exchange.Translation()
		if !ok {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "Message %d is still being translated.\n", position)
			return "", "", false
		}
		return translated, exchange.TargetLanguage, true
	default:
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Usage: %s <n> [original|translation]\n", command)
		return "", "", false
	}
}

func (cli *ChatCLI) speak(args []string) {
	text, code, ok := cli.pick("/speak", args)
	if !ok {
		return
	}
	if !cli.speech.CanSpeak() {
		cli.notifier.Notify(chat.Notification{
			Title:       "Speech not supported",
			Description: "Speech playback is not configured",
			Destructive: true,
		})
		return
	}
	if err := cli.speech.Synthesizer.Speak(text, language.Locale(code)); err != nil {
		slog.Default().Warn("speech synthesis failed", "error", err)
	}
}

func (cli *ChatCLI) copy(args []string) {
	text, _, ok := cli.pick("/copy", args)
	if !ok {
		return
	}
	if err := cli.clipboard.WriteText(text); err != nil {
		slog.Default().Warn("failed to copy to the clipboard", "error", err)
		cli.notifier.Notify(chat.Notification{
			Title:       "Copy failed",
			Description: "Please try again",
			Destructive: true,
		})
		return
	}
	cli.notifier.Notify(chat.Notification{
		Title:       "Copied to clipboard",
		Description: "Text copied successfully",
	})
}

// render is called by the controller whenever an exchange is added or translated.
func (cli *ChatCLI) render(exchange chat.Exchange) {
	position, ok := cli.controller.Session().Position(exchange.ID)
	if !ok {
		return
	}
	cli.renderAt(position, exchange)
}

func (cli *ChatCLI) renderAt(position int, exchange chat.Exchange) {
	translated, ok := exchange.Translation()
	view := assets.NewExchangeView(
		position,
		exchange.CreatedAt,
		exchange.OriginalText,
		translated,
		ok,
		string(exchange.SourceLanguage),
		string(exchange.TargetLanguage),
	)

	var buf bytes.Buffer
	if err := cli.template.Execute(&buf, view); err != nil {
		slog.Default().Error("failed to render an exchange",
			"id", exchange.ID,
			"error", err,
		)
		return
	}
	_, _ = cli.stdoutWriter.Write(buf.Bytes())
}

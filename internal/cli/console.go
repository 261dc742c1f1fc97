package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/at-ishikawa/translatechat/internal/chat"
)

// Console serializes writes from the prompt loop and from translations finishing in the background.
type Console struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewConsole(writer io.Writer) *Console {
	return &Console{writer: writer}
}

func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writer.Write(p)
}

// Notifier prints notifications as single colored lines.
type Notifier struct {
	writer  io.Writer
	success *color.Color
	failure *color.Color
	italic  *color.Color
}

func NewNotifier(writer io.Writer) *Notifier {
	return &Notifier{
		writer:  writer,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		italic:  color.New(color.Italic),
	}
}

func (n *Notifier) Notify(notification chat.Notification) {
	title := n.success.Sprintf("✓ %s", notification.Title)
	if notification.Destructive {
		title = n.failure.Sprintf("✗ %s", notification.Title)
	}
	if notification.Description == "" {
		_, _ = fmt.Fprintln(n.writer, title)
		return
	}
	_, _ = fmt.Fprintf(n.writer, "%s %s\n", title, n.italic.Sprint(notification.Description))
}

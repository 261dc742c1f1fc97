// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not supported on this system")

//go:generate mockgen -source=clipboard.go -destination=../mocks/clipboard/mock_writer.go -package=mock_clipboard Writer

type Writer interface {
	WriteText(text string) error
}

// System writes through xclip, xsel, wl-copy, pbcopy or the Windows API,
// whichever is present.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard.WriteAll > %w", err)
	}
	return nil
}

package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestSystem_WriteTextUnsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("a clipboard tool is installed")
	}
	err := NewSystem().WriteText("hola")
	assert.ErrorIs(t, err, ErrUnsupported)
}

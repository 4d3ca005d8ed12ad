package export

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// NewClipboard initializes the system clipboard. It fails on hosts without
// clipboard support (e.g. Linux without X11 or cgo).
func NewClipboard() (*Clipboard, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("export: clipboard init: %w", initErr)
	}
	return &Clipboard{}, nil
}

func (c *Clipboard) Copy(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

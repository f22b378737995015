// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/caesar/internal/errors"
	"github.com/zhubert/caesar/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; the first result is cached.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: Failed to initialize: %v", err)
			initErr = errors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: Initialized successfully")
	})
	return initErr
}

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteText(text string) error
}

// System is the Writer backed by the OS clipboard.
type System struct{}

// WriteText writes text to the clipboard.
func (System) WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

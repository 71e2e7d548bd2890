package service

import (
	"sync"

	"golang.design/x/clipboard"
)

// ClipboardService writes text to the system clipboard, replacing whatever
// was there before.
type ClipboardService interface {
	Write(text string) error
}

type clipboardService struct {
	initOnce sync.Once
	initErr  error
}

func newClipboardService() ClipboardService {
	return &clipboardService{}
}

func (c *clipboardService) Write(text string) error {
	c.initOnce.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return &PermanentError{Message: "clipboard unavailable", Err: c.initErr}
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// selectClipboard picks the clipboard backend: the system clipboard by
// default, a discarding one when copying was switched off.
func selectClipboard(opts Options) ClipboardService {
	if opts.NoCopy {
		return discardClipboard{}
	}
	return newClipboardService()
}

// discardClipboard backs the --no-copy flag.
type discardClipboard struct{}

func (discardClipboard) Write(string) error {
	return nil
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscardClipboard(t *testing.T) {
	t.Parallel()

	t.Run("should accept any text without touching the system clipboard", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, discardClipboard{}.Write("https://example/l/abc"))
	})
}

func TestSelectClipboard(t *testing.T) {
	t.Parallel()

	t.Run("should pick the discarding backend when copying is switched off", func(t *testing.T) {
		t.Parallel()

		assert.IsType(t, discardClipboard{}, selectClipboard(Options{NoCopy: true}))
	})

	t.Run("should pick the system clipboard by default", func(t *testing.T) {
		t.Parallel()

		assert.IsType(t, &clipboardService{}, selectClipboard(Options{}))
	})
}

package ui

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errClipboardUnsupported = errors.New("clipboard not available")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard tools.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// copySource tells the result handler which control asked for the copy.
type copySource int

const (
	copyFromPlayground copySource = iota
	copyFromContactCard
)

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	source copySource
	text   string
	err    error
}

// copyCmd writes text off the update loop, like an async clipboard call.
func copyCmd(c Clipboard, source copySource, text string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return copyResultMsg{source: source, text: text, err: errClipboardUnsupported}
		}
		return copyResultMsg{source: source, text: text, err: c.WriteAll(text)}
	}
}
